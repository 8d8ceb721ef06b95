package models

import "time"

// EmailTemplate holds an admin-editable mail body. Placeholders use the
// {{nom}} form and are substituted at send time.
type EmailTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nom       string    `gorm:"size:100;not null" json:"nom"`
	Sujet     string    `gorm:"size:255;not null" json:"sujet"`
	Corps     string    `gorm:"type:text;not null" json:"corps"`
	Type      string    `gorm:"size:40;not null;index" json:"type"`
	Actif     bool      `gorm:"not null;default:true" json:"actif"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (EmailTemplate) TableName() string { return "email_templates" }
