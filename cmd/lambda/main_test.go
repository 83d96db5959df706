package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/solver-squadron/internal/converter"
	"github.com/napolitain/solver-squadron/internal/loader"
)

func testHandler() *handler {
	return &handler{
		data:    &loader.GameData{Trainings: loader.DefaultTrainings(), Missions: loader.DefaultMissions()},
		timeout: 5 * time.Second,
	}
}

const squadronBody = `{
	"missionId": 2,
	"squadron": {
		"members": [
			{"name": "Alys", "level": 25, "physical": 30, "mental": 25, "tactical": 25},
			{"name": "Bert", "level": 25, "physical": 30, "mental": 25, "tactical": 25},
			{"name": "Cid", "level": 25, "physical": 30, "mental": 25, "tactical": 25},
			{"name": "Dara", "level": 25, "physical": 30, "mental": 25, "tactical": 25}
		],
		"bonus": {"physical": 40, "mental": 40, "tactical": 40, "cap": 120}
	}
}`

func post(body string) events.LambdaFunctionURLRequest {
	event := events.LambdaFunctionURLRequest{Body: body}
	event.RequestContext.HTTP.Method = http.MethodPost
	return event
}

func TestHandle(t *testing.T) {
	resp, err := testHandler().handle(context.Background(), post(squadronBody))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)
	require.Equal(t, "application/json", resp.Headers["Content-Type"])

	var out converter.SolveResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &out))
	require.Equal(t, 2, out.MissionID)
	require.Len(t, out.Results, 1)
	require.Equal(t, []string{"Alys", "Bert", "Cid", "Dara"}, out.Results[0].Members)
	require.NotNil(t, out.Best)
}

func TestHandleBase64(t *testing.T) {
	event := post(base64.StdEncoding.EncodeToString([]byte(squadronBody)))
	event.IsBase64Encoded = true

	resp, err := testHandler().handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name  string
		event events.LambdaFunctionURLRequest
		code  int
	}{
		{"invalid json", post(`{`), http.StatusBadRequest},
		{"missing mission", post(`{"squadron": {}}`), http.StatusBadRequest},
		{"unknown mission", post(`{"missionId": 999, "squadron": {"members": [
			{"name": "A"}, {"name": "B"}, {"name": "C"}, {"name": "D"}]}}`), http.StatusNotFound},
		{"too few members", post(`{"missionId": 2, "squadron": {"members": [{"name": "A"}]}}`), http.StatusBadRequest},
		{"bad base64", events.LambdaFunctionURLRequest{Body: "%%%", IsBase64Encoded: true}, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := testHandler().handle(context.Background(), tc.event)
			require.NoError(t, err)
			require.Equal(t, tc.code, resp.StatusCode, resp.Body)

			var body map[string]string
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			require.NotEmpty(t, body["error"])
		})
	}

	get := post(squadronBody)
	get.RequestContext.HTTP.Method = http.MethodGet
	resp, err := testHandler().handle(context.Background(), get)
	require.NoError(t, err)
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
