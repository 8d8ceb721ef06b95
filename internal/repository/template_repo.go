package repository

import (
	"sauvetage/internal/models"

	"gorm.io/gorm"
)

type EmailTemplateRepository struct {
	db *gorm.DB
}

func NewEmailTemplateRepository(db *gorm.DB) *EmailTemplateRepository {
	return &EmailTemplateRepository{db: db}
}

func (r *EmailTemplateRepository) List() ([]models.EmailTemplate, error) {
	var list []models.EmailTemplate
	err := r.db.Order("type ASC").Find(&list).Error
	return list, err
}

func (r *EmailTemplateRepository) GetByID(id uint) (*models.EmailTemplate, error) {
	var t models.EmailTemplate
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetActiveByType returns the active template used for a given mail type.
func (r *EmailTemplateRepository) GetActiveByType(typ string) (*models.EmailTemplate, error) {
	var t models.EmailTemplate
	if err := r.db.Where("type = ? AND actif = ?", typ, true).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *EmailTemplateRepository) Create(t *models.EmailTemplate) error {
	return r.db.Create(t).Error
}

func (r *EmailTemplateRepository) Update(t *models.EmailTemplate) error {
	return r.db.Save(t).Error
}

func (r *EmailTemplateRepository) Delete(id uint) error {
	return r.db.Delete(&models.EmailTemplate{}, id).Error
}
