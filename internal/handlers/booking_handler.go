package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/httpresp"
	"github.com/lenslink/photo-marketplace/internal/middleware"
	ucBooking "github.com/lenslink/photo-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListBookings
	getUC    *ucBooking.GetBooking
	selectUC *ucBooking.SelectApplication
	cancelUC *ucBooking.CancelBooking
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookings,
	getUC *ucBooking.GetBooking,
	selectUC *ucBooking.SelectApplication,
	cancelUC *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		selectUC: selectUC,
		cancelUC: cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	EventDate string `json:"event_date" binding:"required"`
	Location  string `json:"location"`
	EventType string `json:"event_type"`
	Notes     string `json:"notes"`
}

type SelectApplicationRequest struct {
	ApplicationID uint `json:"application_id" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "event_date required")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CallerUserID: userID,
		CallerRole:   role,
		EventDate:    req.EventDate,
		Location:     req.Location,
		EventType:    req.EventType,
		Notes:        req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(201, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	filter := domain.ListFilter{
		Status:    c.DefaultQuery("status", string(domain.StatusOpen)),
		Location:  c.Query("location"),
		EventType: c.Query("event_type"),
		Query:     c.Query("q"),
		Page:      page,
		PageSize:  pageSize,
	}

	bookings, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.Page(c, bookings, total, filter.Page, filter.PageSize)
}

// ======================================================
// GET
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// SELECT
// ======================================================

func (h *BookingHandler) Select(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req SelectApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "application_id_required", "application_id required")
		return
	}

	result, err := h.selectUC.Execute(c.Request.Context(), ucBooking.SelectApplicationInput{
		CallerUserID:  userID,
		CallerRole:    role,
		BookingID:     uint(id),
		ApplicationID: req.ApplicationID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), userID, role, uint(id))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}
