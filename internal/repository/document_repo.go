package repository

import (
	"sauvetage/internal/models"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

func (r *DocumentRepository) List(categorie string) ([]models.Document, error) {
	q := r.db.Order("created_at DESC")
	if categorie != "" {
		q = q.Where("categorie = ?", categorie)
	}
	var list []models.Document
	err := q.Find(&list).Error
	return list, err
}

func (r *DocumentRepository) GetByID(id uint) (*models.Document, error) {
	var doc models.Document
	if err := r.db.First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepository) Update(doc *models.Document) error {
	return r.db.Save(doc).Error
}

func (r *DocumentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Document{}, id).Error
}

// IncrementDownloads bumps the counter in a single statement. Concurrent
// downloads all count; a retried request may count twice.
func (r *DocumentRepository) IncrementDownloads(id uint) error {
	return r.db.Model(&models.Document{}).Where("id = ?", id).
		UpdateColumn("telechargements", gorm.Expr("telechargements + 1")).Error
}

func (r *DocumentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).Count(&count).Error
	return count, err
}

func (r *DocumentRepository) TotalDownloads() (int64, error) {
	var total struct{ Total int64 }
	err := r.db.Model(&models.Document{}).Select("COALESCE(SUM(telechargements), 0) as total").Scan(&total).Error
	return total.Total, err
}
