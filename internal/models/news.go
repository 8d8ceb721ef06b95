package models

import (
	"time"

	"gorm.io/gorm"
)

type News struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Titre     string         `gorm:"size:255;not null" json:"titre"`
	Contenu   string         `gorm:"type:text;not null" json:"contenu"`
	Image     string         `gorm:"size:255" json:"image,omitempty"` // optional gallery filename
	Publiee   bool           `gorm:"not null;default:false;index" json:"publiee"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (News) TableName() string { return "news" }
