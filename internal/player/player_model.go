package player

import (
	"time"
)

// Position is the closed set of court positions a player can hold.
type Position string

const (
	PositionSpiker        Position = "Spiker"
	PositionSetter        Position = "Setter"
	PositionLibero        Position = "Libero"
	PositionOpposite      Position = "Opposite"
	PositionMiddleBlocker Position = "MiddleBlocker"
)

// AllPositions lists every valid position in display order.
func AllPositions() []Position {
	return []Position{
		PositionSpiker,
		PositionSetter,
		PositionLibero,
		PositionOpposite,
		PositionMiddleBlocker,
	}
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	switch p {
	case PositionSpiker, PositionSetter, PositionLibero, PositionOpposite, PositionMiddleBlocker:
		return true
	}
	return false
}

// Player is a roster member together with its rating aggregate.
//
// The aggregate triple (TotalScore, RatingCount, AverageRating) is only ever
// written as a unit. AverageRating always equals TotalScore/RatingCount
// rounded to two decimals (half away from zero) and is stored redundantly so
// the leaderboard can sort on it directly; TotalScore and RatingCount remain
// the source of truth for any further arithmetic.
//
// No gorm.DeletedAt here: removing a player is a hard delete and its rating
// history is discarded irreversibly. Ids come from the database sequence and
// are never reused.
type Player struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string   `json:"name" gorm:"not null"`
	Position Position `json:"position" gorm:"type:varchar(20);not null"`

	// PhotoRef is an opaque reference to a stored photo, passed through
	// unchanged. Empty means the client falls back to its default avatar.
	PhotoRef string `json:"photo_ref,omitempty"`

	TotalScore    float64 `json:"total_score" gorm:"type:numeric(10,2);not null;default:0"`
	RatingCount   int64   `json:"rating_count" gorm:"not null;default:0"`
	AverageRating float64 `json:"average_rating" gorm:"type:numeric(10,2);not null;default:0"`
}
