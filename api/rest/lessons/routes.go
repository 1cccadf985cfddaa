package lessons

import (
	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, client *backend.Client) {
	lessonGroup := router.Group("/lessons")
	lessonGroup.Use(gate.Require(gate.AdminOnly))

	lessonGroup.POST("", CreateHandler(client))
	lessonGroup.PUT("/reorder", ReorderHandler(client))
	lessonGroup.PATCH("/:id", UpdateHandler(client))
}
