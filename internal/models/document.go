package models

import "time"

type Document struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Titre       string    `gorm:"size:255;not null" json:"titre"`
	Filename    string    `gorm:"size:255;not null;uniqueIndex" json:"filename"`
	Categorie   string    `gorm:"size:30;not null;index" json:"categorie"`
	TailleBytes int64     `gorm:"not null" json:"tailleBytes"`
	// Incremented on each download; a popularity metric, not exactly-once.
	Telechargements int64     `gorm:"not null;default:0" json:"telechargements"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Document) TableName() string { return "documents" }
