package repository

import (
	"errors"

	"sauvetage/internal/models"

	"gorm.io/gorm"
)

var ErrNoSeats = errors.New("no seats available")

type FormationRepository struct {
	db *gorm.DB
}

func NewFormationRepository(db *gorm.DB) *FormationRepository {
	return &FormationRepository{db: db}
}

func (r *FormationRepository) Create(f *models.Formation) error {
	return r.db.Create(f).Error
}

// List returns formations soonest first, optionally filtered by type and
// status.
func (r *FormationRepository) List(typ, statut string) ([]models.Formation, error) {
	q := r.db.Order("date_debut ASC")
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	if statut != "" {
		q = q.Where("statut = ?", statut)
	}
	var list []models.Formation
	err := q.Find(&list).Error
	return list, err
}

func (r *FormationRepository) GetByID(id uint) (*models.Formation, error) {
	var f models.Formation
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// Update writes every column except the seat counters, which only move
// through ReserveSeat, ReleaseSeat and ResizeSeats.
func (r *FormationRepository) Update(f *models.Formation) error {
	return r.db.Omit("places_total", "places_disponibles").Save(f).Error
}

// ResizeSeats applies a capacity change to the free-seat count in a single
// statement, clamped to [0, newTotal], so a registration landing between the
// caller's read and this write is not overwritten.
func (r *FormationRepository) ResizeSeats(id uint, delta, newTotal int) error {
	return r.db.Model(&models.Formation{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"places_total": newTotal,
			"places_disponibles": gorm.Expr(
				"CASE WHEN places_disponibles + ? < 0 THEN 0 WHEN places_disponibles + ? > ? THEN ? ELSE places_disponibles + ? END",
				delta, delta, newTotal, newTotal, delta),
		}).Error
}

func (r *FormationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Formation{}, id).Error
}

// ReserveSeat takes one seat with a conditional single-statement update, so
// two registrations racing for the last seat cannot both win. Returns
// ErrNoSeats when the count is already zero.
func (r *FormationRepository) ReserveSeat(id uint) error {
	res := r.db.Model(&models.Formation{}).
		Where("id = ? AND places_disponibles > 0", id).
		UpdateColumn("places_disponibles", gorm.Expr("places_disponibles - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoSeats
	}
	return nil
}

// ReleaseSeat gives a seat back, capped at places_total.
func (r *FormationRepository) ReleaseSeat(id uint) error {
	return r.db.Model(&models.Formation{}).
		Where("id = ? AND places_disponibles < places_total", id).
		UpdateColumn("places_disponibles", gorm.Expr("places_disponibles + 1")).Error
}

func (r *FormationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Formation{}).Count(&count).Error
	return count, err
}
