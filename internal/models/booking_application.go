package models

import "time"

// BookingApplication is append-only: rows are settled to ACCEPTED or
// REJECTED by the selection transaction, never deleted.
type BookingApplication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `gorm:"not null;uniqueIndex:idx_booking_photographer" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PhotographerID uint                `gorm:"not null;uniqueIndex:idx_booking_photographer" json:"photographer_id"`
	Photographer   PhotographerProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	CreatedAt time.Time `json:"application_date"`
	UpdatedAt time.Time `json:"updated_at"`
}
