package models

import (
	"time"

	"gorm.io/gorm"
)

// Inscription registers a person to a Formation. Creating one consumes a
// seat; deleting an accepted one gives it back.
type Inscription struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Prenom        string         `gorm:"size:100;not null" json:"prenom"`
	Nom           string         `gorm:"size:100;not null" json:"nom"`
	Email         string         `gorm:"size:255;not null;index" json:"email"`
	Telephone     string         `gorm:"size:30;not null" json:"telephone"`
	DateNaissance time.Time      `gorm:"not null" json:"dateNaissance"`
	Message       string         `gorm:"type:text" json:"message,omitempty"`
	Statut        string         `gorm:"size:20;not null;index;default:'EN_ATTENTE'" json:"statut"`
	FormationID   uint           `gorm:"not null;index" json:"formationId"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Formation *Formation `gorm:"foreignKey:FormationID" json:"formation,omitempty"`
}

func (Inscription) TableName() string { return "inscriptions" }
