// internal/api/routes.go
// Central route registration for all API endpoints

package api

import (
	"drawbracket/internal/middleware"
	"drawbracket/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication-related routes
func RegisterAuthRoutes(router *gin.RouterGroup, services *services.Container) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", HandleRegister(services.Auth))
		auth.POST("/login", HandleLogin(services.Auth))
		auth.POST("/logout", middleware.RequireAuth(services.Auth), HandleLogout(services.Auth))
		auth.POST("/refresh", HandleRefreshToken(services.Auth))
	}
}

// RegisterUserRoutes registers organizer account routes
func RegisterUserRoutes(router *gin.RouterGroup, services *services.Container) {
	users := router.Group("/users")
	users.Use(middleware.RequireAuth(services.Auth))
	{
		users.GET("/me", HandleGetCurrentUser(services.User))
		users.PUT("/me", HandleUpdateProfile(services.User))
		users.PUT("/me/password", HandleChangePassword(services.Auth))
	}
}

// RegisterDrawRoutes registers draw generation routes
func RegisterDrawRoutes(router *gin.RouterGroup, services *services.Container) {
	draws := router.Group("/draws")
	{
		draws.GET("/:seed", HandleGetDraw(services.Draw))

		draws.Use(middleware.RequireAuth(services.Auth))
		draws.Use(middleware.RequireOrganizer())
		draws.POST("", HandleGenerateDraw(services.Draw))
	}
}
