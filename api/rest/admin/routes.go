package admin

import (
	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"codeberg.org/skillsprint/webfront/skillsprint/leads"
	"codeberg.org/skillsprint/webfront/skillsprint/users"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, client *backend.Client, leadRepo *leads.Repository, userRepo *users.Repository) {
	adminGroup := router.Group("/admin")
	adminGroup.Use(gate.Require(gate.AdminOnly))

	adminGroup.GET("/stats", StatsHandler(client, leadRepo, userRepo))
}
