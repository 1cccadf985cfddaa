package users

import (
	"codeberg.org/skillsprint/webfront/internal/gate"
	"codeberg.org/skillsprint/webfront/skillsprint/users"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository) {
	userGroup := router.Group("/users")
	userGroup.Use(gate.Require(gate.AdminOnly)) // user management is admin-only

	userGroup.GET("", ListHandler(userRepo))
	userGroup.GET("/:id", GetHandler(userRepo))
	userGroup.PUT("/:id/role", UpdateRoleHandler(userRepo))
}
