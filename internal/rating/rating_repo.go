package rating

import (
	"errors"

	"github.com/sundayvolley/volleyrank/internal/player"
	"gorm.io/gorm"
)

// Accepted score range for a single rating submission.
const (
	MinScore = 1
	MaxScore = 5
)

type RatingRepository interface {
	SubmitRating(playerID uint, score int) (*player.Player, error)
	ListRanked() ([]player.Player, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new instance of RatingRepository.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// SubmitRating adds one score to the player's aggregate and returns the
// updated row. Submissions are not idempotent: every call counts once.
//
// The whole aggregate moves in a single UPDATE with the arithmetic done at
// the storage layer, so the database serializes concurrent submissions for
// the same player and no update is ever lost or half applied. Submissions
// for different players touch different rows and do not contend.
//
// The average is recomputed from total and count on every write, never
// compounded from the previously rounded value. round(x, 2) here is
// half-away-from-zero, the behavior of both Postgres numeric rounding and
// SQLite's round().
func (r *ratingRepository) SubmitRating(playerID uint, score int) (*player.Player, error) {
	if score < MinScore || score > MaxScore {
		return nil, ErrInvalidScore
	}

	res := r.db.Model(&player.Player{}).
		Where("id = ?", playerID).
		Updates(map[string]interface{}{
			"total_score":    gorm.Expr("total_score + ?", score),
			"rating_count":   gorm.Expr("rating_count + 1"),
			"average_rating": gorm.Expr("round((total_score + ?) * 1.0 / (rating_count + 1), 2)", score),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Unknown id, or the player was deleted while the rating was in
		// flight. Delete wins.
		return nil, player.ErrPlayerNotFound
	}

	var p player.Player
	if err := r.db.First(&p, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, player.ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListRanked returns every player ordered by average rating, best first.
// Ties resolve by ascending id so the leaderboard order is total and stable.
func (r *ratingRepository) ListRanked() ([]player.Player, error) {
	var players []player.Player
	err := r.db.Order("average_rating DESC, id ASC").Find(&players).Error
	return players, err
}
