package player

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type PlayerRepository interface {
	CreatePlayer(p *Player) error
	GetPlayerByID(id uint) (*Player, error)
	FindPlayerByName(name string) (*Player, error)
	GetAllPlayers() ([]Player, error)
	DeletePlayer(id uint) error
	UpdatePhotoRef(id uint, ref string) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// CreatePlayer validates and persists a new player with a zeroed aggregate.
func (r *playerRepository) CreatePlayer(p *Player) error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !p.Position.Valid() {
		return &ValidationError{Field: "position", Reason: fmt.Sprintf("must be one of %v", AllPositions())}
	}

	// A new player always starts with an empty rating history, whatever the
	// caller put in the struct.
	p.TotalScore = 0
	p.RatingCount = 0
	p.AverageRating = 0

	return r.db.Create(p).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	err := r.db.First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindPlayerByName resolves a name to a player. Names are not unique; the
// lowest id wins so repeated lookups resolve to the same row.
func (r *playerRepository) FindPlayerByName(name string) (*Player, error) {
	var p Player
	err := r.db.Where("name = ?", name).Order("id ASC").First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetAllPlayers returns the roster in no particular order.
func (r *playerRepository) GetAllPlayers() ([]Player, error) {
	var players []Player
	err := r.db.Find(&players).Error
	return players, err
}

// DeletePlayer removes the player and its aggregate permanently. The freed id
// is never handed out again.
func (r *playerRepository) DeletePlayer(id uint) error {
	res := r.db.Delete(&Player{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (r *playerRepository) UpdatePhotoRef(id uint, ref string) error {
	res := r.db.Model(&Player{}).Where("id = ?", id).Update("photo_ref", ref)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
