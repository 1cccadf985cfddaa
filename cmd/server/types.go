package main

import (
	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/config"
	"codeberg.org/skillsprint/webfront/internal/session"
	"codeberg.org/skillsprint/webfront/internal/snapshot"
	"codeberg.org/skillsprint/webfront/skillsprint/leads"
	"codeberg.org/skillsprint/webfront/skillsprint/users"
	"github.com/gin-gonic/gin"
	gorillasessions "github.com/gorilla/sessions"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db         *pgxpool.Pool
	config     *config.Config
	backend    *backend.Client
	snapshots  *snapshot.RedisStore
	sessionMgr *session.Manager
	cookies    *gorillasessions.CookieStore
	userRepo   *users.Repository
	leadRepo   *leads.Repository
	router     *gin.Engine
}
