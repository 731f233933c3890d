package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive and serializes
	// writers, which SQLite requires anyway.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Player{}))
	return db
}

func TestCreatePlayerStartsWithZeroAggregate(t *testing.T) {
	repo := NewPlayerRepository(newTestDB(t))

	p := Player{Name: "Ana", Position: PositionSetter}
	require.NoError(t, repo.CreatePlayer(&p))

	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, float64(0), p.TotalScore)
	assert.Equal(t, int64(0), p.RatingCount)
	assert.Equal(t, float64(0), p.AverageRating)
}

func TestCreatePlayerIgnoresCallerAggregate(t *testing.T) {
	repo := NewPlayerRepository(newTestDB(t))

	p := Player{Name: "Budi", Position: PositionSpiker, TotalScore: 99, RatingCount: 7, AverageRating: 4.2}
	require.NoError(t, repo.CreatePlayer(&p))

	stored, err := repo.GetPlayerByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), stored.TotalScore)
	assert.Equal(t, int64(0), stored.RatingCount)
	assert.Equal(t, float64(0), stored.AverageRating)
}

func TestCreatePlayerValidation(t *testing.T) {
	repo := NewPlayerRepository(newTestDB(t))

	var ve *ValidationError

	err := repo.CreatePlayer(&Player{Name: "", Position: PositionSetter})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	err = repo.CreatePlayer(&Player{Name: "   ", Position: PositionSetter})
	require.ErrorAs(t, err, &ve, "whitespace-only name is empty")

	err = repo.CreatePlayer(&Player{Name: "Ana", Position: "Goalkeeper"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "position", ve.Field)
}

func TestGetPlayerByIDNotFound(t *testing.T) {
	repo := NewPlayerRepository(newTestDB(t))

	_, err := repo.GetPlayerByID(99)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestFindPlayerByName(t *testing.T) {
	repo := NewPlayerRepository(newTestDB(t))

	first := Player{Name: "Citra", Position: PositionLibero}
	require.NoError(t, repo.CreatePlayer(&first))
	second := Player{Name: "Citra", Position: PositionOpposite}
	require.NoError(t, repo.CreatePlayer(&second))

	// Names are not unique; the lowest id wins.
	found, err := repo.FindPlayerByName("Citra")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.FindPlayerByName("Nobody")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestDeletePlayer(t *testing.T) {
	repo := NewPlayerRepository(newTestDB(t))

	p := Player{Name: "Dewi", Position: PositionMiddleBlocker}
	require.NoError(t, repo.CreatePlayer(&p))

	require.NoError(t, repo.DeletePlayer(p.ID))

	_, err := repo.GetPlayerByID(p.ID)
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	assert.ErrorIs(t, repo.DeletePlayer(p.ID), ErrPlayerNotFound)
}

func TestDeletedIDIsNotReused(t *testing.T) {
	repo := NewPlayerRepository(newTestDB(t))

	a := Player{Name: "Eka", Position: PositionSetter}
	require.NoError(t, repo.CreatePlayer(&a))
	b := Player{Name: "Fajar", Position: PositionSpiker}
	require.NoError(t, repo.CreatePlayer(&b))

	require.NoError(t, repo.DeletePlayer(a.ID))

	c := Player{Name: "Gita", Position: PositionLibero}
	require.NoError(t, repo.CreatePlayer(&c))

	// A stale reference to the deleted player must never resolve to the
	// newcomer.
	assert.NotEqual(t, a.ID, c.ID)
	assert.Greater(t, c.ID, b.ID)
}

func TestGetAllPlayers(t *testing.T) {
	repo := NewPlayerRepository(newTestDB(t))

	for _, name := range []string{"Ana", "Budi", "Citra"} {
		require.NoError(t, repo.CreatePlayer(&Player{Name: name, Position: PositionSpiker}))
	}

	players, err := repo.GetAllPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 3)
}

func TestUpdatePhotoRef(t *testing.T) {
	repo := NewPlayerRepository(newTestDB(t))

	p := Player{Name: "Hana", Position: PositionOpposite}
	require.NoError(t, repo.CreatePlayer(&p))

	require.NoError(t, repo.UpdatePhotoRef(p.ID, "/uploads/players/hana.png"))

	stored, err := repo.GetPlayerByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/players/hana.png", stored.PhotoRef)

	assert.ErrorIs(t, repo.UpdatePhotoRef(999, "/uploads/players/x.png"), ErrPlayerNotFound)
}
