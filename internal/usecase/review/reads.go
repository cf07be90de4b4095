package review

import (
	"context"

	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/dto"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
)

// ======================================================
// LIST BY PHOTOGRAPHER
// ======================================================

type ListByPhotographer struct {
	repo domain.Repository
}

func NewListByPhotographer(repo domain.Repository) *ListByPhotographer {
	return &ListByPhotographer{repo: repo}
}

func (uc *ListByPhotographer) Execute(
	ctx context.Context,
	photographerID uint,
	limit int,
	offset int,
) ([]models.Review, error) {

	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return uc.repo.ListReviewsByPhotographer(ctx, photographerID, limit, offset)
}

// ======================================================
// SUMMARY
// ======================================================

type GetSummary struct {
	repo  domain.Repository
	cache *SummaryCache
}

func NewGetSummary(repo domain.Repository, cache *SummaryCache) *GetSummary {
	return &GetSummary{repo: repo, cache: cache}
}

func (uc *GetSummary) Execute(
	ctx context.Context,
	photographerID uint,
) (*dto.ReviewSummaryDTO, error) {

	if summary, ok := uc.cache.Get(ctx, photographerID); ok {
		return summary, nil
	}

	summary, err := uc.repo.GetReviewSummary(ctx, photographerID)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, summary)
	return summary, nil
}

// ======================================================
// BY BOOKING
// ======================================================

type BookingReviewResult struct {
	Exists bool           `json:"exists"`
	Review *models.Review `json:"review,omitempty"`
}

type GetByBooking struct {
	repo domain.Repository
}

func NewGetByBooking(repo domain.Repository) *GetByBooking {
	return &GetByBooking{repo: repo}
}

func (uc *GetByBooking) Execute(
	ctx context.Context,
	callerUserID uint,
	callerRole string,
	bookingID uint,
) (*BookingReviewResult, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "Booking not found")
	}

	var clientID *uint
	if client, err := uc.repo.GetClientByUserID(ctx, callerUserID); err == nil {
		clientID = &client.ID
	}

	var photographerID *uint
	if photographer, err := uc.repo.GetPhotographerByUserID(ctx, callerUserID); err == nil {
		photographerID = &photographer.ID
	}

	if err := domain.VisibleTo(b, clientID, photographerID, callerRole); err != nil {
		return nil, err
	}

	rv, err := uc.repo.GetReviewByBooking(ctx, bookingID)
	if err != nil {
		return &BookingReviewResult{Exists: false}, nil
	}

	return &BookingReviewResult{Exists: true, Review: rv}, nil
}
