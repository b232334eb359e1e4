package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ecommerce-api/internal/application"
	"github.com/oksasatya/go-ecommerce-api/internal/interface/middleware"
	"github.com/oksasatya/go-ecommerce-api/pkg/response"
	"github.com/oksasatya/go-ecommerce-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" binding:"omitempty,pwd"`
}

// GetProfile GET /api/users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("get profile failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":           u.ID,
		"email":        u.Email,
		"name":         u.Name,
		"mobile":       u.Mobile,
		"avatar":       u.AvatarURL,
		"verify_email": u.VerifyEmail,
		"created_at":   u.CreatedAt,
		"updated_at":   u.UpdatedAt,
	}, "profile", nil)
}

// UpdateProfile PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrDuplicateEmail):
			response.Error[any](c, http.StatusBadRequest, "email already in use", nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("update profile failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":     u.ID,
		"email":  u.Email,
		"name":   u.Name,
		"mobile": u.Mobile,
	}, "profile updated", nil)
}

// UploadAvatar PUT /api/users/avatar (multipart field "avatar")
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "no file uploaded", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("avatar upload failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar": url}, "avatar updated successfully", nil)
}
