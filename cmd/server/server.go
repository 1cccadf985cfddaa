package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/skillsprint/webfront/internal/auth"
	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/config"
	"codeberg.org/skillsprint/webfront/internal/session"
	"codeberg.org/skillsprint/webfront/internal/snapshot"
	"codeberg.org/skillsprint/webfront/skillsprint/leads"
	"codeberg.org/skillsprint/webfront/skillsprint/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small; the edge database only holds provisioned users
	// and captured leads
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// use simple protocol for transaction-mode pooler (PgBouncer)
	// compatibility; prepared statements hang connections there
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	leadRepo := leads.NewRepository(db)

	// session snapshots persist in Redis so a reloaded tab rehydrates
	// its last known state
	snapshots, err := snapshot.NewRedisStoreFromURL(cfg.RedisURL, cfg.SessionTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	backendClient := backend.NewClient(cfg.BackendGraphQLURL)

	sessionMgr := session.NewManager(backendClient, snapshots, cfg.AdminEmail, cfg.SessionTTL)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		db:         db,
		config:     cfg,
		backend:    backendClient,
		snapshots:  snapshots,
		sessionMgr: sessionMgr,
		cookies:    auth.NewCookieStore(cfg.SessionSecret),
		userRepo:   userRepo,
		leadRepo:   leadRepo,
		router:     gin.New(),
	}

	server.router.Use(gin.Recovery())

	RegisterRoutes(server.router, server)

	return server, nil
}

// releases all held connections
func (s *Server) Close() {
	s.snapshots.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	s.db.Close()
}
