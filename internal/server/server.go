package server

import (
	"context"
	"fmt"
	"net/http"

	"breathewatch/internal/charts"
	"breathewatch/internal/config"
	"breathewatch/internal/dashboard"
	"breathewatch/internal/favorites"
	"breathewatch/internal/fetchers"
	"breathewatch/internal/logger"
	"breathewatch/internal/storage"
)

// Server wires the fetcher, dashboard builder, favorites store and
// storage backend behind the HTTP API
type Server struct {
	Config    *config.Config
	Fetcher   *fetchers.DataFetcher
	Builder   *dashboard.Builder
	Storage   storage.Client
	Favorites *favorites.Store

	log *logger.Logger
}

// NewServer creates a new server instance
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	storageClient, err := storage.NewClient(ctx, storage.DeploymentMode(cfg.Deployment), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	builder, err := dashboard.NewBuilder(charts.NewGenerator(""))
	if err != nil {
		storageClient.Close()
		return nil, fmt.Errorf("failed to initialize dashboard builder: %w", err)
	}

	return &Server{
		Config:    cfg,
		Fetcher:   fetchers.NewDataFetcher(cfg.AQIFeedURL, cfg.AQIAPIToken),
		Builder:   builder,
		Storage:   storageClient,
		Favorites: favorites.NewStore(ctx, storageClient),
		log:       logger.WithComponent("server"),
	}, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/api/quality", s.HandleQuality)
	mux.HandleFunc("/api/favorites", s.HandleFavorites)
	mux.HandleFunc("/snapshot", s.HandleSnapshot)
	mux.HandleFunc("/snapshots", s.HandleListSnapshots)
	mux.HandleFunc("/files/", s.HandleFileProxy)

	// Root is the dashboard (catch-all, registered last)
	mux.HandleFunc("/", s.HandleDashboard)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}
