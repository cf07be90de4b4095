package review

import (
	"context"
	"strings"

	"github.com/lenslink/photo-marketplace/internal/audit"
	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
)

const maxCommentLength = 1000

// ======================================================
// INPUT
// ======================================================

type PostReviewInput struct {
	CallerUserID uint
	CallerRole   string

	BookingID uint
	Rating    int
	Comment   string
}

// ======================================================
// USE CASE
// ======================================================

// PostReview writes the booking's single, permanent review. Gated on an
// assigned photographer and a PAID payment; the unique index on
// booking_id backstops the one-review invariant under races.
type PostReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *SummaryCache
}

func NewPostReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *SummaryCache,
) *PostReview {
	return &PostReview{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *PostReview) Execute(
	ctx context.Context,
	in PostReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrValidation("invalid_rating", "Rating must be an integer between 1 and 5")
	}

	comment := strings.TrimSpace(in.Comment)
	if len(comment) > maxCommentLength {
		comment = comment[:maxCommentLength]
	}

	var rv *models.Review

	err := uc.repo.Transact(ctx, func(r domain.Repository) error {

		b, err := r.GetBookingForUpdate(ctx, in.BookingID)
		if err != nil {
			return httperr.ErrNotFound("booking_not_found", "Booking not found")
		}

		var clientID *uint
		if in.CallerRole != "admin" {
			client, err := r.GetClientByUserID(ctx, in.CallerUserID)
			if err != nil {
				return httperr.ErrForbidden("client_profile_not_found", "Client profile not found")
			}
			clientID = &client.ID
		}

		if err := domain.OwnedBy(b, clientID, in.CallerRole); err != nil {
			return err
		}

		if b.PhotographerID == nil {
			return httperr.ErrInvalidState("no_photographer_selected", "Booking has no selected photographer")
		}

		p, err := r.GetPaymentByBooking(ctx, in.BookingID)
		if err != nil || domain.PaymentStatus(p.Status) != domain.PaymentPaid {
			return httperr.ErrInvalidState("payment_required", "Payment required before reviewing")
		}

		if _, err := r.GetReviewByBooking(ctx, in.BookingID); err == nil {
			return httperr.ErrConflict("review_already_exists", "Review already submitted for this booking")
		}

		rv = &models.Review{
			BookingID:      b.ID,
			ClientID:       b.ClientID,
			PhotographerID: *b.PhotographerID,
			Rating:         in.Rating,
			Comment:        comment,
		}

		return r.CreateReview(ctx, rv)
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, rv.PhotographerID)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CallerUserID,
		Action:   "review_posted",
		Entity:   "review",
		EntityID: &rv.ID,
		Metadata: map[string]any{"rating": rv.Rating},
	})

	return rv, nil
}
