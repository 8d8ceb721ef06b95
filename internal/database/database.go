package database

import (
	"os"

	"sauvetage/config"
	"sauvetage/internal/domain"
	"sauvetage/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Image{},
		&models.Document{},
		&models.Formation{},
		&models.Inscription{},
		&models.News{},
		&models.EmailTemplate{},
		&models.Setting{},
		&models.ContactMessage{},
	)
}

// SeedAdmin creates the initial super-admin when the table is empty.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Prenom:       "Admin",
		Nom:          "Principal",
		Role:         domain.RoleSuperAdmin,
	}).Error
}

// SeedDefaults inserts default settings and email templates if missing.
func SeedDefaults(db *gorm.DB) error {
	for k, v := range DefaultSettings {
		var count int64
		db.Model(&models.Setting{}).Where("`key` = ?", k).Count(&count)
		if count == 0 {
			if err := db.Create(&models.Setting{Key: k, Value: v}).Error; err != nil {
				return err
			}
		}
	}
	for _, tpl := range DefaultTemplates {
		var count int64
		db.Model(&models.EmailTemplate{}).Where("type = ?", tpl.Type).Count(&count)
		if count == 0 {
			t := tpl
			if err := db.Create(&t).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// Reset empties every content table and re-seeds defaults. Admin accounts are
// never touched. SUPER_ADMIN only, behind the corresponding endpoint.
func Reset(db *gorm.DB) error {
	tables := []interface{}{
		&models.Inscription{},
		&models.Formation{},
		&models.Image{},
		&models.Document{},
		&models.News{},
		&models.ContactMessage{},
		&models.EmailTemplate{},
		&models.Setting{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table).Error; err != nil {
			return err
		}
	}
	return SeedDefaults(db)
}
