package dto

// AvgRating is nil when the photographer has no reviews yet.
type ReviewSummaryDTO struct {
	PhotographerID uint     `json:"photographer_id"`
	AvgRating      *float64 `json:"avg_rating"`
	ReviewsCount   int64    `json:"reviews_count"`
}
