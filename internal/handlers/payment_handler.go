package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/httpresp"
	"github.com/lenslink/photo-marketplace/internal/middleware"
	ucPayment "github.com/lenslink/photo-marketplace/internal/usecase/payment"
)

type PaymentHandler struct {
	payUC *ucPayment.Pay
	getUC *ucPayment.GetPayment
}

func NewPaymentHandler(
	payUC *ucPayment.Pay,
	getUC *ucPayment.GetPayment,
) *PaymentHandler {
	return &PaymentHandler{
		payUC: payUC,
		getUC: getUC,
	}
}

// --------- Requests ---------

type PayRequest struct {
	Amount float64 `json:"amount"`
}

// --------- Handlers ---------

func (h *PaymentHandler) Pay(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req PayRequest
	_ = c.ShouldBindJSON(&req)

	if req.Amount < 0 {
		httperr.BadRequest(c, "invalid_amount", "Amount cannot be negative.")
		return
	}

	p, err := h.payUC.Execute(c.Request.Context(), ucPayment.PayInput{
		CallerUserID: userID,
		CallerRole:   role,
		BookingID:    uint(bookingID),
		Amount:       req.Amount,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	p, err := h.getUC.Execute(c.Request.Context(), userID, role, uint(bookingID))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, p)
}
