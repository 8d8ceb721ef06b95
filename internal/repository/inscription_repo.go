package repository

import (
	"sauvetage/internal/models"

	"gorm.io/gorm"
)

type InscriptionRepository struct {
	db *gorm.DB
}

func NewInscriptionRepository(db *gorm.DB) *InscriptionRepository {
	return &InscriptionRepository{db: db}
}

func (r *InscriptionRepository) Create(ins *models.Inscription) error {
	return r.db.Create(ins).Error
}

func (r *InscriptionRepository) List(formationID uint, statut string) ([]models.Inscription, error) {
	q := r.db.Preload("Formation").Order("created_at DESC")
	if formationID != 0 {
		q = q.Where("formation_id = ?", formationID)
	}
	if statut != "" {
		q = q.Where("statut = ?", statut)
	}
	var list []models.Inscription
	err := q.Find(&list).Error
	return list, err
}

func (r *InscriptionRepository) GetByID(id uint) (*models.Inscription, error) {
	var ins models.Inscription
	if err := r.db.Preload("Formation").First(&ins, id).Error; err != nil {
		return nil, err
	}
	return &ins, nil
}

func (r *InscriptionRepository) UpdateStatus(id uint, statut string) error {
	return r.db.Model(&models.Inscription{}).Where("id = ?", id).Update("statut", statut).Error
}

func (r *InscriptionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Inscription{}, id).Error
}

func (r *InscriptionRepository) CountByStatus(statut string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Inscription{}).Where("statut = ?", statut).Count(&count).Error
	return count, err
}
