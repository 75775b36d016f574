package routes

import (
	"civicsync-reporter/controllers"
	"civicsync-reporter/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, ac *controllers.AuthController, jwtSecret string) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ac.RegisterUser)
		auth.POST("/login", ac.LoginUser)
		auth.GET("/me", middlewares.AuthMiddleware(jwtSecret), ac.GetMe)
		auth.POST("/logout", ac.LogoutUser)
	}
}
