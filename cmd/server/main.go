package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/napolitain/solver-squadron/internal/config"
	"github.com/napolitain/solver-squadron/internal/converter"
	"github.com/napolitain/solver-squadron/internal/loader"
	"github.com/napolitain/solver-squadron/internal/models"
	"github.com/napolitain/solver-squadron/internal/solver/squadron"
)

// maxCaches bounds how many squadron snapshots keep their calculations
const maxCaches = 64

// server is used to implement the SquadronSolver service
type server struct {
	data    *loader.GameData
	timeout time.Duration
	logger  squadron.Logger

	mu     sync.Mutex
	caches map[string]*squadron.Cache
}

func newServer(data *loader.GameData, timeout time.Duration, logger squadron.Logger) *server {
	return &server{
		data:    data,
		timeout: timeout,
		logger:  logger,
		caches:  make(map[string]*squadron.Cache),
	}
}

// cacheFor returns the calculation cache of a squadron snapshot
func (s *server) cacheFor(cfg models.SquadronConfig, state *models.SquadronState) *squadron.Cache {
	raw, _ := json.Marshal(cfg)
	key := string(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.caches[key]; ok {
		return c
	}
	if len(s.caches) >= maxCaches {
		s.caches = make(map[string]*squadron.Cache)
	}
	c := squadron.NewCache(*state, s.data.Trainings, squadron.WithLogger(s.logger))
	s.caches[key] = c
	return c
}

// Solve implements the Solve RPC
func (s *server) Solve(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	log.Printf("Received Solve request")

	req, err := converter.StructToSolveRequest(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	state, err := req.State()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	mission, err := loader.FindMission(s.data.Missions, req.MissionID)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	thresholds, err := req.MissionThresholds(mission)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results, err := s.cacheFor(req.Squadron, state).Calculate(ctx, mission, thresholds)
	if err != nil {
		return nil, status.FromContextError(err).Err()
	}

	resp := converter.ResultsToResponse(mission, thresholds, results)
	out, err := converter.SolveResponseToStruct(resp)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	log.Printf("Returning %d results for mission %d (%s)", len(resp.Results), mission.ID, mission.Name)
	return out, nil
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
	log.Printf("Loaded %d trainings, %d missions", len(data.Trainings), len(data.Missions))

	var logger squadron.Logger = log.New(os.Stderr, "solver: ", log.LstdFlags)
	if !cfg.Verbose {
		logger = log.New(io.Discard, "", 0)
	}

	lis, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	s := grpc.NewServer()
	RegisterSquadronSolverServer(s, newServer(data, cfg.SolveTimeout, logger))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Printf("Shutting down")
		healthServer.Shutdown()
		s.GracefulStop()
	}()

	log.Printf("gRPC server listening on port %d", cfg.Port)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
