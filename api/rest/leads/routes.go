package leads

import (
	"codeberg.org/skillsprint/webfront/internal/auth"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"codeberg.org/skillsprint/webfront/internal/ratelimit"
	"codeberg.org/skillsprint/webfront/skillsprint/leads"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, leadRepo *leads.Repository) {
	leadGroup := router.Group("/leads")

	// capture stays public; a bearer token just pre-fills the caller's email
	leadGroup.POST("", ratelimit.Middleware("20-M"), auth.OptionalAuthMiddleware(), CreateHandler(leadRepo))
	leadGroup.GET("", gate.Require(gate.AdminOnly), ListHandler(leadRepo))
}
