package models

import "time"

// Image is a gallery photo. The file lives in the uploads directory; only the
// generated filename is stored here.
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Filename  string    `gorm:"size:255;not null;uniqueIndex" json:"filename"`
	Alt       string    `gorm:"size:255;not null" json:"alt"`
	Categorie string    `gorm:"size:30;not null;index" json:"categorie"` // FORMATION | SAUVETAGE_SPORTIF | EVENEMENT
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Image) TableName() string { return "images" }
