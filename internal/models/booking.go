package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint          `gorm:"index" json:"client_id"`
	Client   *ClientProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	// Null until the selection transaction locks the booking.
	PhotographerID *uint                `gorm:"index" json:"photographer_id"`
	Photographer   *PhotographerProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"photographer,omitempty"`

	EventDate time.Time `gorm:"not null" json:"event_date"`
	Location  string    `gorm:"size:255" json:"location"`
	EventType string    `gorm:"size:100" json:"event_type"`
	Notes     string    `gorm:"size:1000" json:"notes"`

	Status string `gorm:"size:20;default:'OPEN'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
