package models

import "time"

type PortfolioImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PhotographerID uint                `gorm:"index;not null" json:"photographer_id"`
	Photographer   PhotographerProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ObjectKey string `gorm:"size:255;not null" json:"-"`
	URL       string `gorm:"size:500;not null" json:"url"`
	Caption   string `gorm:"size:300" json:"caption"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
