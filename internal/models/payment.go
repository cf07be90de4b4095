package models

import "time"

// Payment is 1:1 with Booking, created UNPAID alongside it.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `gorm:"uniqueIndex;not null" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Amount float64 `gorm:"default:0" json:"amount"`
	Status string  `gorm:"size:20;default:'UNPAID'" json:"status"`

	PaidAt *time.Time `json:"payment_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
