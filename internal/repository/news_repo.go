package repository

import (
	"sauvetage/internal/models"

	"gorm.io/gorm"
)

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(n *models.News) error {
	return r.db.Create(n).Error
}

// List returns news newest first; publishedOnly restricts to published items
// for the public site.
func (r *NewsRepository) List(publishedOnly bool) ([]models.News, error) {
	q := r.db.Order("created_at DESC")
	if publishedOnly {
		q = q.Where("publiee = ?", true)
	}
	var list []models.News
	err := q.Find(&list).Error
	return list, err
}

func (r *NewsRepository) GetByID(id uint) (*models.News, error) {
	var n models.News
	if err := r.db.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NewsRepository) Update(n *models.News) error {
	return r.db.Save(n).Error
}

func (r *NewsRepository) Delete(id uint) error {
	return r.db.Delete(&models.News{}, id).Error
}
