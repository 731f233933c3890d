package rating

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sundayvolley/volleyrank/internal/player"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	r := gin.New()
	RegisterRatingRoutes(r.Group("/api"), db)
	return r, db
}

func postJSON(r *gin.Engine, url string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitRatingEndpoint(t *testing.T) {
	r, db := setupRouter(t)
	p := addPlayer(t, db, "Ana", player.PositionSetter)

	w := postJSON(r, "/api/players/1/ratings", gin.H{"score": 4})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string        `json:"status"`
		Data   player.Player `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, p.ID, body.Data.ID)
	assert.Equal(t, int64(1), body.Data.RatingCount)
	assert.InDelta(t, 4.0, body.Data.AverageRating, 0.001)
}

func TestSubmitRatingEndpointRejectsBadInput(t *testing.T) {
	r, db := setupRouter(t)
	addPlayer(t, db, "Budi", player.PositionSpiker)

	// Score out of range.
	w := postJSON(r, "/api/players/1/ratings", gin.H{"score": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Fractional score is not an integer.
	w = postJSON(r, "/api/players/1/ratings", gin.H{"score": 4.5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown player.
	w = postJSON(r, "/api/players/99/ratings", gin.H{"score": 3})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Malformed id.
	w = postJSON(r, "/api/players/abc/ratings", gin.H{"score": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Failed submissions must not touch the aggregate.
	stored, err := player.NewPlayerRepository(db).GetPlayerByID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.RatingCount)
}

func TestLeaderboardEndpoint(t *testing.T) {
	r, db := setupRouter(t)
	repo := NewRatingRepository(db)

	ana := addPlayer(t, db, "Ana", player.PositionSetter)
	budi := addPlayer(t, db, "Budi", player.PositionSpiker)

	_, err := repo.SubmitRating(budi.ID, 5)
	require.NoError(t, err)
	_, err = repo.SubmitRating(ana.ID, 3)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string          `json:"status"`
		Data   []player.Player `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, budi.ID, body.Data[0].ID)
	assert.Equal(t, ana.ID, body.Data[1].ID)
}
