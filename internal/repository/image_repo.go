package repository

import (
	"sauvetage/internal/models"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(img *models.Image) error {
	return r.db.Create(img).Error
}

// List returns gallery images newest first, optionally filtered by category.
func (r *ImageRepository) List(categorie string) ([]models.Image, error) {
	q := r.db.Order("created_at DESC")
	if categorie != "" {
		q = q.Where("categorie = ?", categorie)
	}
	var list []models.Image
	err := q.Find(&list).Error
	return list, err
}

func (r *ImageRepository) GetByID(id uint) (*models.Image, error) {
	var img models.Image
	if err := r.db.First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) Update(img *models.Image) error {
	return r.db.Save(img).Error
}

func (r *ImageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Image{}, id).Error
}

func (r *ImageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Image{}).Count(&count).Error
	return count, err
}
