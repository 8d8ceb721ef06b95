package repository

import (
	"testing"
	"time"

	"sauvetage/internal/domain"
	"sauvetage/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupFormationRepo(t *testing.T) *FormationRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Formation{}, &models.Inscription{}))
	return NewFormationRepository(db)
}

func seed(t *testing.T, repo *FormationRepository, places int) *models.Formation {
	t.Helper()
	f := &models.Formation{
		Titre:             "BNSSA hiver",
		Type:              domain.FormationBNSSA,
		DateDebut:         time.Date(2026, 11, 2, 18, 0, 0, 0, time.UTC),
		DureeHeures:       40,
		PlacesTotal:       places,
		PlacesDisponibles: places,
		Prix:              decimal.NewFromFloat(250.50),
		Lieu:              "Piscine municipale",
		Statut:            domain.FormationPlanifiee,
	}
	require.NoError(t, repo.Create(f))
	return f
}

func TestReserveSeatUntilEmpty(t *testing.T) {
	repo := setupFormationRepo(t)
	f := seed(t, repo, 2)

	require.NoError(t, repo.ReserveSeat(f.ID))
	require.NoError(t, repo.ReserveSeat(f.ID))
	assert.ErrorIs(t, repo.ReserveSeat(f.ID), ErrNoSeats)

	reloaded, err := repo.GetByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.PlacesDisponibles)
}

func TestReserveSeatUnknownFormation(t *testing.T) {
	repo := setupFormationRepo(t)
	assert.ErrorIs(t, repo.ReserveSeat(999), ErrNoSeats)
}

func TestResizeSeatsKeepsConcurrentReservations(t *testing.T) {
	repo := setupFormationRepo(t)
	f := seed(t, repo, 5)

	// A registration lands after the admin read the row but before the
	// capacity change is written; the resize must apply to the current count.
	require.NoError(t, repo.ReserveSeat(f.ID))
	require.NoError(t, repo.ResizeSeats(f.ID, 2, 7))

	reloaded, err := repo.GetByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, reloaded.PlacesTotal)
	assert.Equal(t, 6, reloaded.PlacesDisponibles, "the reserved seat stays reserved")
}

func TestResizeSeatsClamped(t *testing.T) {
	repo := setupFormationRepo(t)
	f := seed(t, repo, 5)
	require.NoError(t, repo.ReserveSeat(f.ID))

	// shrinking below the reserved count floors at zero
	require.NoError(t, repo.ResizeSeats(f.ID, -4, 1))
	reloaded, err := repo.GetByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.PlacesTotal)
	assert.Equal(t, 0, reloaded.PlacesDisponibles)

	// growing again never overshoots the new total
	require.NoError(t, repo.ResizeSeats(f.ID, 5, 6))
	reloaded, err = repo.GetByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, reloaded.PlacesTotal)
	assert.Equal(t, 5, reloaded.PlacesDisponibles)
}

func TestUpdateLeavesSeatCountersAlone(t *testing.T) {
	repo := setupFormationRepo(t)
	f := seed(t, repo, 5)
	require.NoError(t, repo.ReserveSeat(f.ID))

	// the struct carries stale counters; Update must not write them back
	f.Lieu = "Plage du Lido"
	require.NoError(t, repo.Update(f))

	reloaded, err := repo.GetByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plage du Lido", reloaded.Lieu)
	assert.Equal(t, 4, reloaded.PlacesDisponibles)
}

func TestReleaseSeatCappedAtTotal(t *testing.T) {
	repo := setupFormationRepo(t)
	f := seed(t, repo, 3)

	require.NoError(t, repo.ReserveSeat(f.ID))
	require.NoError(t, repo.ReleaseSeat(f.ID))
	// Already back at the cap; a stray release must not overflow.
	require.NoError(t, repo.ReleaseSeat(f.ID))

	reloaded, err := repo.GetByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.PlacesDisponibles)
}
