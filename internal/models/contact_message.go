package models

import "time"

// ContactMessage keeps a copy of contact and incident form submissions so the
// dashboard can list them even if the notification mail is lost.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"size:20;not null;index" json:"type"` // CONTACT | SIGNALEMENT
	Prenom    string    `gorm:"size:100;not null" json:"prenom"`
	Nom       string    `gorm:"size:100;not null" json:"nom"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Telephone string    `gorm:"size:30" json:"telephone,omitempty"`
	Sujet     string    `gorm:"size:255" json:"sujet,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Lu        bool      `gorm:"not null;default:false;index" json:"lu"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
