package handlers

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lenslink/photo-marketplace/internal/audit"
	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/httpresp"
	"github.com/lenslink/photo-marketplace/internal/middleware"
	"github.com/lenslink/photo-marketplace/internal/models"
	"github.com/lenslink/photo-marketplace/internal/storage"
)

const (
	maxUploadBytes   = 5 * 1024 * 1024
	maxPortfolioSize = 10
	maxCaptionLength = 300
)

// ======================================================
// HANDLER
// ======================================================

type PortfolioHandler struct {
	repo  domain.Repository
	store *storage.S3Storage
	audit *audit.Dispatcher
}

func NewPortfolioHandler(
	repo domain.Repository,
	store *storage.S3Storage,
	audit *audit.Dispatcher,
) *PortfolioHandler {
	return &PortfolioHandler{
		repo:  repo,
		store: store,
		audit: audit,
	}
}

// ======================================================
// UPLOAD
// ======================================================

func (h *PortfolioHandler) Upload(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if !h.store.Enabled() {
		httperr.Write(c, 503, "storage_not_configured", "Portfolio storage is not configured.")
		return
	}

	ctx := c.Request.Context()

	var photographerID uint
	if photographer, err := h.repo.GetPhotographerByUserID(ctx, userID); err == nil {
		photographerID = photographer.ID
	} else if role == "admin" {
		id, err := strconv.ParseUint(c.PostForm("photographer_id"), 10, 64)
		if err != nil || id == 0 {
			httperr.BadRequest(c, "photographer_id_required", "photographer_id required for admin uploads")
			return
		}
		photographerID = uint(id)
	} else {
		httperr.Write(c, 403, "photographer_profile_not_found", "Photographer profile not found")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "No image file provided")
		return
	}

	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the 5MB limit")
		return
	}

	contentType := file.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/webp":
	default:
		httperr.BadRequest(c, "unsupported_image_type", "Only JPEG, PNG, and WebP images are allowed")
		return
	}

	count, err := h.repo.CountPortfolioImages(ctx, photographerID)
	if err != nil {
		httperr.Internal(c, "portfolio_count_failed", "Failed to check portfolio size.")
		return
	}
	if count >= maxPortfolioSize {
		httperr.BadRequest(c, "portfolio_full", "Maximum 10 images allowed per photographer")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Upload failed.")
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Upload failed.")
		return
	}

	encoded, err := storage.EncodeWebP(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not decode the image.")
		return
	}

	key := fmt.Sprintf("portfolio/%d/%s.webp", photographerID, uuid.NewString())

	url, err := h.store.PutImage(ctx, key, encoded)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Upload failed.")
		return
	}

	caption := strings.TrimSpace(c.PostForm("caption"))
	if len(caption) > maxCaptionLength {
		caption = caption[:maxCaptionLength]
	}

	img := &models.PortfolioImage{
		PhotographerID: photographerID,
		ObjectKey:      key,
		URL:            url,
		Caption:        caption,
	}

	if err := h.repo.CreatePortfolioImage(ctx, img); err != nil {
		// keep the bucket consistent with the table
		if delErr := h.store.Delete(ctx, key); delErr != nil {
			log.Println("orphaned portfolio object:", key, delErr)
		}
		httperr.Internal(c, "upload_failed", "Upload failed.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "portfolio_uploaded",
		Entity:   "portfolio_image",
		EntityID: &img.ID,
	})

	c.JSON(201, img)
}

// ======================================================
// LIST
// ======================================================

func (h *PortfolioHandler) List(c *gin.Context) {
	photographerID, err := strconv.ParseUint(c.Param("photographerId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_photographer_id", "Invalid photographer id.")
		return
	}

	imgs, err := h.repo.ListPortfolioImages(c.Request.Context(), uint(photographerID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_portfolio", "Failed to list portfolio.")
		return
	}

	httpresp.List(c, imgs)
}

// ======================================================
// DELETE
// ======================================================

func (h *PortfolioHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_image_id", "Invalid image id.")
		return
	}

	ctx := c.Request.Context()

	img, err := h.repo.GetPortfolioImage(ctx, uint(id))
	if err != nil {
		httperr.NotFound(c, "image_not_found", "Image not found")
		return
	}

	if role != "admin" {
		photographer, err := h.repo.GetPhotographerByUserID(ctx, userID)
		if err != nil || photographer.ID != img.PhotographerID {
			httperr.Write(c, 403, "not_image_owner", "You can only delete your own images")
			return
		}
	}

	if h.store.Enabled() {
		if err := h.store.Delete(ctx, img.ObjectKey); err != nil {
			log.Println("failed to delete portfolio object:", img.ObjectKey, err)
		}
	}

	if err := h.repo.DeletePortfolioImage(ctx, img.ID); err != nil {
		httperr.Internal(c, "delete_failed", "Delete failed.")
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}
