package player

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sundayvolley/volleyrank/config"
	"github.com/sundayvolley/volleyrank/pkg/responses"
	"github.com/sundayvolley/volleyrank/pkg/validator"
	"github.com/gin-gonic/gin"
)

// PlayerController handles API requests related to the roster.
type PlayerController struct {
	repo   PlayerRepository
	config *config.Config
}

// NewPlayerController creates a new PlayerController.
func NewPlayerController(repo PlayerRepository, cfg *config.Config) *PlayerController {
	return &PlayerController{
		repo:   repo,
		config: cfg,
	}
}

// --- DTOs ---

type CreatePlayerRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Position string `json:"position" binding:"required,max=20"`
	PhotoRef string `json:"photo_ref" binding:"omitempty,max=255"`
}

// CreatePlayer godoc
// @Summary Add a player to the roster
// @Description Manager can register a new player with a zeroed rating aggregate
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player creation request"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse "Validation error or bad request"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players [post]
// @Security BearerAuth
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	p := Player{
		Name:     strings.TrimSpace(req.Name),
		Position: Position(req.Position),
		PhotoRef: req.PhotoRef,
	}

	if err := pc.repo.CreatePlayer(&p); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			responses.SendError(c, http.StatusBadRequest, ve.Error(), nil)
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to create player", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", p)
}

// GetAllPlayers godoc
// @Summary List all players
// @Description Get the full roster in no particular order
// @Tags Players
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Player}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	players, err := pc.repo.GetAllPlayers()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve players", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Players retrieved successfully", players)
}

// GetPlayerByID godoc
// @Summary Get a player by ID
// @Description Get a single player including its rating aggregate
// @Tags Players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse "Invalid player ID"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID format", nil)
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			responses.SendError(c, http.StatusNotFound, "Player not found", nil)
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve player", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Player retrieved successfully", p)
}

// DeletePlayer godoc
// @Summary Remove a player
// @Description Manager can remove a player permanently by id, or by name when the path segment is not numeric. Deleting by name resolves to the lowest matching id. The rating history is discarded irreversibly.
// @Tags Players
// @Produce json
// @Param player_id path string true "Player ID or exact name"
// @Success 200 {object} responses.SuccessResponse "Player deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{player_id} [delete]
// @Security BearerAuth
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	param := c.Param("player_id")

	var playerID uint
	if id, err := strconv.ParseUint(param, 10, 32); err == nil {
		playerID = uint(id)
	} else {
		p, err := pc.repo.FindPlayerByName(param)
		if err != nil {
			if errors.Is(err, ErrPlayerNotFound) {
				responses.SendError(c, http.StatusNotFound, "Player not found", nil)
				return
			}
			responses.SendError(c, http.StatusInternalServerError, "Failed to resolve player name", err.Error())
			return
		}
		playerID = p.ID
	}

	if err := pc.repo.DeletePlayer(playerID); err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			responses.SendError(c, http.StatusNotFound, "Player not found", nil)
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete player", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}

// UploadPlayerPhoto godoc
// @Summary Upload a player photo
// @Description Manager can attach a photo to a player. The file is stored under a name derived from the player's name, so re-uploading overwrites the previous photo. The stored reference is opaque to the rest of the system.
// @Tags Players
// @Accept mpfd
// @Produce json
// @Param player_id path int true "Player ID"
// @Param photo formData file true "Player photo (jpg, jpeg or png)"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse "Invalid player ID or unsupported file type"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Failed to store the photo"
// @Router /players/{player_id}/photo [post]
// @Security BearerAuth
func (pc *PlayerController) UploadPlayerPhoto(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID format", nil)
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			responses.SendError(c, http.StatusNotFound, "Player not found", nil)
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve player", err.Error())
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Photo file is required", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		responses.SendError(c, http.StatusBadRequest, "Unsupported file type, expected jpg, jpeg or png", nil)
		return
	}

	filename := normalizePhotoName(p.Name) + ext
	uploadPath := filepath.Join(pc.config.App.UploadDir, "players", filename)

	if err := os.MkdirAll(filepath.Dir(uploadPath), 0o755); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Could not create upload directory", err.Error())
		return
	}

	if err := c.SaveUploadedFile(file, uploadPath); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to save uploaded photo", err.Error())
		return
	}

	ref := "/uploads/players/" + filename
	if err := pc.repo.UpdatePhotoRef(p.ID, ref); err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			// Deleted between the lookup and the update; delete wins.
			responses.SendError(c, http.StatusNotFound, "Player not found", nil)
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to update photo reference", err.Error())
		return
	}

	p.PhotoRef = ref
	responses.SendSuccess(c, http.StatusOK, "Photo uploaded successfully", p)
}

// normalizePhotoName derives a stable file name from a player name, matching
// what the roster has always used on disk ("Ana Putri" -> "ana_putri").
func normalizePhotoName(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}
