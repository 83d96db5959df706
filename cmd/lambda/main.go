package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/napolitain/solver-squadron/internal/config"
	"github.com/napolitain/solver-squadron/internal/converter"
	"github.com/napolitain/solver-squadron/internal/loader"
	"github.com/napolitain/solver-squadron/internal/solver/squadron"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type handler struct {
	data    *loader.GameData
	timeout time.Duration
}

func (h *handler) handle(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	if event.RequestContext.HTTP.Method != "" && event.RequestContext.HTTP.Method != http.MethodPost {
		return errResp(http.StatusMethodNotAllowed, "use POST")
	}

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}

	req, err := converter.DecodeSolveRequest([]byte(body))
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	state, err := req.State()
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	mission, err := loader.FindMission(h.data.Missions, req.MissionID)
	if err != nil {
		return errResp(http.StatusNotFound, err.Error())
	}
	thresholds, err := req.MissionThresholds(mission)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	cache := squadron.NewCache(*state, h.data.Trainings)
	results, err := cache.Calculate(ctx, mission, thresholds)
	if err != nil {
		return errResp(http.StatusGatewayTimeout, err.Error())
	}

	respJSON, err := json.Marshal(converter.ResultsToResponse(mission, thresholds, results))
	if err != nil {
		return errResp(http.StatusInternalServerError, err.Error())
	}
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	data, err := loader.Load(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	h := &handler{data: data, timeout: cfg.SolveTimeout}
	lambda.Start(h.handle)
}
