package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/httpresp"
	"github.com/lenslink/photo-marketplace/internal/middleware"
	ucApplication "github.com/lenslink/photo-marketplace/internal/usecase/application"
)

type ApplicationHandler struct {
	applyUC *ucApplication.Apply
	listUC  *ucApplication.ListApplications
}

func NewApplicationHandler(
	applyUC *ucApplication.Apply,
	listUC *ucApplication.ListApplications,
) *ApplicationHandler {
	return &ApplicationHandler{
		applyUC: applyUC,
		listUC:  listUC,
	}
}

// --------- Requests ---------

type ApplyRequest struct {
	// Only honored for admin callers applying on behalf of a
	// photographer.
	PhotographerID uint `json:"photographer_id"`
}

// --------- Handlers ---------

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req ApplyRequest
	_ = c.ShouldBindJSON(&req)

	app, err := h.applyUC.Execute(
		c.Request.Context(),
		userID,
		role,
		uint(bookingID),
		req.PhotographerID,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(201, app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	apps, err := h.listUC.Execute(c.Request.Context(), userID, role, uint(bookingID))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, apps)
}
