package rating

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRatingRoutes(router *gin.RouterGroup, db *gorm.DB) {

	ratingRepo := NewRatingRepository(db)
	ratingController := NewRatingController(ratingRepo)

	// Both routes are public: raters are anonymous and the leaderboard is
	// the club's front page.
	router.POST("/players/:player_id/ratings", ratingController.SubmitRating)
	router.GET("/leaderboard", ratingController.GetLeaderboard)
}
