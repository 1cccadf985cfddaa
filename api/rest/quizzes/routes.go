package quizzes

import (
	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, client *backend.Client) {
	quizGroup := router.Group("/quizzes")
	quizGroup.Use(gate.Require(gate.AdminOnly))

	quizGroup.POST("", CreateHandler(client))
	quizGroup.PUT("/reorder", ReorderHandler(client))
}
