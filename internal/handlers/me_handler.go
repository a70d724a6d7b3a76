package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/storage"
)

type MeHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
}

// NewMeHandler accepts a nil uploader; avatar uploads then answer 503.
func NewMeHandler(db *gorm.DB, uploader storage.Uploader) *MeHandler {
	return &MeHandler{db: db, uploader: uploader}
}

func (h *MeHandler) loadUser(c *gin.Context) (*models.User, bool) {
	userID := middleware.CurrentIdentity(c).UserID

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return nil, false
		}
		respondError(c, err, "user_lookup_failed", "Failed to load profile")
		return nil, false
	}
	return &user, true
}

// GET /api/me
func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	httpresp.OK(c, toUserView(user))
}

// POST /api/me/avatar
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	if h.uploader == nil {
		httperr.Unavailable(c, "storage_disabled", "Avatar uploads are not configured.")
		return
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Multipart field 'avatar' is required.")
		return
	}
	if fh.Size > storage.MaxAvatarBytes {
		httperr.BadRequest(c, "file_too_large", "Avatar must be at most 5 MiB.")
		return
	}

	user, ok := h.loadUser(c)
	if !ok {
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "unreadable_file", "Could not read the uploaded file.")
		return
	}
	defer f.Close()

	img, err := storage.TranscodeAvatar(f)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImage) {
			httperr.BadRequest(c, "unsupported_image", "Avatar must be a JPEG, PNG or WebP image.")
			return
		}
		respondError(c, err, "avatar_failed", "Failed to process avatar")
		return
	}

	ref, err := h.uploader.Put(c.Request.Context(), storage.AvatarKey(user.ID), "image/webp", img)
	if err != nil {
		respondError(c, err, "avatar_upload_failed", "Failed to upload avatar")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(user).
		Update("avatar", ref).Error; err != nil {
		respondError(c, err, "avatar_save_failed", "Failed to save avatar")
		return
	}
	user.Avatar = &ref

	httpresp.OK(c, toUserView(user))
}
