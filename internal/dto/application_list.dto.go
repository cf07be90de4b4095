package dto

import "time"

type ApplicationListDTO struct {
	ApplicationID    uint      `json:"application_id"`
	Status           string    `json:"status"`
	ApplicationDate  time.Time `json:"application_date"`
	PhotographerID   uint      `json:"photographer_id"`
	PhotographerName string    `json:"photographer_name"`
	PortfolioCount   int64     `json:"portfolio_count"`
}
