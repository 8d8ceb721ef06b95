package repository

import (
	"sauvetage/internal/models"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByEmail(email string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByID(id uint) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) List() ([]models.Admin, error) {
	var list []models.Admin
	err := r.db.Order("created_at ASC").Find(&list).Error
	return list, err
}

func (r *AdminRepository) Create(a *models.Admin) error {
	return r.db.Create(a).Error
}

func (r *AdminRepository) Update(a *models.Admin) error {
	return r.db.Save(a).Error
}

func (r *AdminRepository) UpdatePassword(id uint, hash string) error {
	return r.db.Model(&models.Admin{}).Where("id = ?", id).Update("password_hash", hash).Error
}

func (r *AdminRepository) Delete(id uint) error {
	return r.db.Delete(&models.Admin{}, id).Error
}

func (r *AdminRepository) CountSuperAdmins() (int64, error) {
	var count int64
	err := r.db.Model(&models.Admin{}).Where("role = ?", "SUPER_ADMIN").Count(&count).Error
	return count, err
}
