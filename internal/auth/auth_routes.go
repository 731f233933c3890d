package auth

import (
	"github.com/sundayvolley/volleyrank/config"
	mw "github.com/sundayvolley/volleyrank/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {

	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig)

	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authenticated.GET("/me", authController.Me)
	}
}
