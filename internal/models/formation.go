package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Formation is a scheduled training session (PSC1, BNSSA, ...).
type Formation struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	Titre             string          `gorm:"size:255;not null" json:"titre"`
	Type              string          `gorm:"size:20;not null;index" json:"type"`
	DateDebut         time.Time       `gorm:"not null;index" json:"dateDebut"`
	DateFin           *time.Time      `json:"dateFin,omitempty"`
	DureeHeures       int             `gorm:"not null" json:"dureeHeures"`
	PlacesTotal       int             `gorm:"not null" json:"placesTotal"`
	PlacesDisponibles int             `gorm:"not null" json:"placesDisponibles"`
	Prix              decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"prix"`
	Lieu              string          `gorm:"size:255;not null" json:"lieu"`
	Formateur         string          `gorm:"size:100" json:"formateur"`
	Statut            string          `gorm:"size:20;not null;index;default:'PLANIFIEE'" json:"statut"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`

	Inscriptions []Inscription `gorm:"foreignKey:FormationID" json:"inscriptions,omitempty"`
}

func (Formation) TableName() string { return "formations" }
