package courses

import (
	"codeberg.org/skillsprint/webfront/internal/backend"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, client *backend.Client) {
	courseGroup := router.Group("/courses")

	courseGroup.GET("", ListHandler(client))
	courseGroup.GET("/:slug", GetHandler(client))
}
