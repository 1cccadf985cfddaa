package promotions

import (
	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, client *backend.Client) {
	promoGroup := router.Group("/promotions")

	// the list is public so the storefront can show active codes
	promoGroup.GET("", ListHandler(client))

	adminGroup := promoGroup.Group("")
	adminGroup.Use(gate.Require(gate.AdminOnly))

	adminGroup.POST("", CreateHandler(client))
	adminGroup.PUT("/:id", UpdateHandler(client))
	adminGroup.DELETE("/:id", DeleteHandler(client))
}
