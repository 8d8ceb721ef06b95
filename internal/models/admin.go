package models

import (
	"time"

	"gorm.io/gorm"
)

type Admin struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Prenom       string         `gorm:"size:100;not null" json:"prenom"`
	Nom          string         `gorm:"size:100;not null" json:"nom"`
	Role         string         `gorm:"size:20;not null;index" json:"role"` // ADMIN | SUPER_ADMIN
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Admin) TableName() string { return "admins" }
