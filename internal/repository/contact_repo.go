package repository

import (
	"sauvetage/internal/models"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(m *models.ContactMessage) error {
	return r.db.Create(m).Error
}

func (r *ContactRepository) List(typ string) ([]models.ContactMessage, error) {
	q := r.db.Order("created_at DESC")
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	var list []models.ContactMessage
	err := q.Find(&list).Error
	return list, err
}

func (r *ContactRepository) MarkRead(id uint) error {
	return r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("lu", true).Error
}

func (r *ContactRepository) Delete(id uint) error {
	return r.db.Delete(&models.ContactMessage{}, id).Error
}
