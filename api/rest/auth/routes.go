package auth

import (
	"codeberg.org/skillsprint/webfront/internal/auth"
	"codeberg.org/skillsprint/webfront/internal/backend"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"codeberg.org/skillsprint/webfront/internal/ratelimit"
	"codeberg.org/skillsprint/webfront/skillsprint/users"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, client *backend.Client, userRepo *users.Repository) {
	authGroup := router.Group("/auth")
	{
		// credential submissions are throttled per IP
		credentialLimit := ratelimit.Middleware("10-M")

		authGroup.POST("/login", credentialLimit, LoginHandler(client, userRepo))
		authGroup.POST("/register", credentialLimit, RegisterHandler(client, userRepo))
		authGroup.POST("/check", CheckHandler())
		authGroup.POST("/logout", LogoutHandler())
		authGroup.GET("/me", gate.Require(gate.Authenticated), GetCurrentUserHandler())
		authGroup.PUT("/profile", auth.AuthMiddleware(), UpdateProfileHandler(userRepo))
		authGroup.GET("/:provider", BeginAuthHandler())
		authGroup.GET("/:provider/callback", CallbackHandler(userRepo))
	}
}
