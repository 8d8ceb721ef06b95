package repository

import (
	"sauvetage/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(key string) (string, error) {
	var s models.Setting
	if err := r.db.Where("`key` = ?", key).First(&s).Error; err != nil {
		return "", err
	}
	return s.Value, nil
}

// Enabled reads a boolean toggle. A missing key counts as enabled so a fresh
// or partially seeded database never silently turns a feature off.
func (r *SettingRepository) Enabled(key string) bool {
	v, err := r.Get(key)
	if err != nil {
		return true
	}
	return v != "false"
}

func (r *SettingRepository) Set(key, value string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}

func (r *SettingRepository) GetAll() ([]models.Setting, error) {
	var list []models.Setting
	err := r.db.Order("`key` ASC").Find(&list).Error
	return list, err
}
