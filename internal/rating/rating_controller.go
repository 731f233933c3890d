package rating

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sundayvolley/volleyrank/internal/player"
	"github.com/sundayvolley/volleyrank/pkg/responses"
	"github.com/sundayvolley/volleyrank/pkg/validator"
	"github.com/gin-gonic/gin"
)

// RatingController handles rating submissions and the leaderboard.
type RatingController struct {
	repo RatingRepository
}

// NewRatingController creates a new RatingController.
func NewRatingController(repo RatingRepository) *RatingController {
	return &RatingController{repo: repo}
}

// --- DTOs ---

type SubmitRatingRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

// SubmitRating godoc
// @Summary Rate a player
// @Description Anyone may rate any player any number of times; every submission counts once toward the running average
// @Tags Ratings
// @Accept json
// @Produce json
// @Param player_id path int true "Player ID"
// @Param rating body SubmitRatingRequest true "Score between 1 and 5"
// @Success 200 {object} responses.SuccessResponse{data=player.Player} "Updated player aggregate"
// @Failure 400 {object} responses.ErrorResponse "Invalid player ID or score out of range"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{player_id}/ratings [post]
func (rc *RatingController) SubmitRating(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID format", nil)
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	updated, err := rc.repo.SubmitRating(uint(playerID), req.Score)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidScore):
			responses.SendError(c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, player.ErrPlayerNotFound):
			responses.SendError(c, http.StatusNotFound, "Player not found", nil)
		default:
			responses.SendError(c, http.StatusInternalServerError, "Failed to submit rating", err.Error())
		}
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Rating submitted successfully", updated)
}

// GetLeaderboard godoc
// @Summary Get the leaderboard
// @Description All players sorted by average rating descending; equal averages order by ascending id
// @Tags Ratings
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]player.Player}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func (rc *RatingController) GetLeaderboard(c *gin.Context) {
	players, err := rc.repo.ListRanked()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve leaderboard", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Leaderboard retrieved successfully", players)
}
