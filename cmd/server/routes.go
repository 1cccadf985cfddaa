package main

import (
	"os"
	"strings"
	"time"

	"codeberg.org/skillsprint/webfront/api/rest/admin"
	"codeberg.org/skillsprint/webfront/api/rest/auth"
	"codeberg.org/skillsprint/webfront/api/rest/courses"
	"codeberg.org/skillsprint/webfront/api/rest/health"
	"codeberg.org/skillsprint/webfront/api/rest/leads"
	"codeberg.org/skillsprint/webfront/api/rest/lessons"
	"codeberg.org/skillsprint/webfront/api/rest/promotions"
	"codeberg.org/skillsprint/webfront/api/rest/quizzes"
	"codeberg.org/skillsprint/webfront/api/rest/users"
	internalauth "codeberg.org/skillsprint/webfront/internal/auth"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(corsMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	// every request resolves its browser session; the top-level gate is a
	// pass-through for public browsing but still blocks until the session
	// settles
	v1.Use(internalauth.SessionMiddleware(server.sessionMgr, server.cookies))
	v1.Use(gate.Require(gate.Public))

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.backend, server.userRepo)
		courses.RegisterRoutes(v1, server.backend)
		lessons.RegisterRoutes(v1, server.backend)
		quizzes.RegisterRoutes(v1, server.backend)
		promotions.RegisterRoutes(v1, server.backend)
		leads.RegisterRoutes(v1, server.leadRepo)
		users.RegisterRoutes(v1, server.userRepo)
		admin.RegisterRoutes(v1, server.backend, server.leadRepo, server.userRepo)
	}
}

// configures CORS for the storefront origin
func corsMiddleware() gin.HandlerFunc {
	origins := []string{"http://localhost:3000"}

	if raw := os.Getenv("FRONTEND_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
