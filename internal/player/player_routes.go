package player

import (
	"github.com/sundayvolley/volleyrank/config"
	mw "github.com/sundayvolley/volleyrank/internal/middleware"
	"github.com/sundayvolley/volleyrank/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {

	playerRepo := NewPlayerRepository(db)
	playerController := NewPlayerController(playerRepo, appConfig)

	publicPlayers := router.Group("/players")
	{
		publicPlayers.GET("", playerController.GetAllPlayers)
		publicPlayers.GET("/:player_id", playerController.GetPlayerByID)
	}

	// Roster management requires an authenticated manager. Rating submission
	// stays anonymous on purpose and lives in the rating package.
	managedPlayers := router.Group("/players")
	managedPlayers.Use(mw.AuthMiddleware(jwtSecret, db), rmiddleware.ManagerMiddleware())
	{
		managedPlayers.POST("", playerController.CreatePlayer)
		managedPlayers.DELETE("/:player_id", playerController.DeletePlayer)
		managedPlayers.POST("/:player_id/photo", playerController.UploadPlayerPhoto)
	}
}
