package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/httpresp"
	"github.com/lenslink/photo-marketplace/internal/middleware"
	ucReview "github.com/lenslink/photo-marketplace/internal/usecase/review"
)

type ReviewHandler struct {
	postUC    *ucReview.PostReview
	listUC    *ucReview.ListByPhotographer
	summaryUC *ucReview.GetSummary
	bookingUC *ucReview.GetByBooking
}

func NewReviewHandler(
	postUC *ucReview.PostReview,
	listUC *ucReview.ListByPhotographer,
	summaryUC *ucReview.GetSummary,
	bookingUC *ucReview.GetByBooking,
) *ReviewHandler {
	return &ReviewHandler{
		postUC:    postUC,
		listUC:    listUC,
		summaryUC: summaryUC,
		bookingUC: bookingUC,
	}
}

// --------- Requests ---------

type PostReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Post(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req PostReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Rating must be an integer between 1 and 5")
		return
	}

	rv, err := h.postUC.Execute(c.Request.Context(), ucReview.PostReviewInput{
		CallerUserID: userID,
		CallerRole:   role,
		BookingID:    uint(bookingID),
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(201, rv)
}

func (h *ReviewHandler) ListByPhotographer(c *gin.Context) {
	photographerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_photographer_id", "Invalid photographer id.")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.listUC.Execute(c.Request.Context(), uint(photographerID), limit, offset)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Failed to list reviews.")
		return
	}

	httpresp.List(c, reviews)
}

func (h *ReviewHandler) Summary(c *gin.Context) {
	photographerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_photographer_id", "Invalid photographer id.")
		return
	}

	summary, err := h.summaryUC.Execute(c.Request.Context(), uint(photographerID))
	if err != nil {
		httperr.Internal(c, "failed_to_get_summary", "Failed to get review summary.")
		return
	}

	httpresp.OK(c, summary)
}

func (h *ReviewHandler) GetByBooking(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	result, err := h.bookingUC.Execute(c.Request.Context(), userID, role, uint(bookingID))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, result)
}
