package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ecommerce-api/internal/application"
	"github.com/oksasatya/go-ecommerce-api/pkg/helpers"
	"github.com/oksasatya/go-ecommerce-api/pkg/response"
	"github.com/oksasatya/go-ecommerce-api/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookies *helpers.CookieManager) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type verifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,otp"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	ResetTicket string `json:"reset_ticket" binding:"required"`
	NewPassword string `json:"newpassword" binding:"required,pwd"`
}

// fail maps service errors onto the taxonomy. Unclassified errors are server
// faults: logged with detail, returned as a generic message.
func (h *AuthHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrDuplicateEmail):
		response.Error[any](c, http.StatusBadRequest, "user already exists", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid email or password", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrInvalidOrExpiredOTP):
		response.Error[any](c, http.StatusBadRequest, "invalid or expired OTP", nil)
	case errors.Is(err, application.ErrInvalidResetTicket):
		response.Error[any](c, http.StatusBadRequest, "invalid or expired reset ticket", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("path", c.FullPath()).Error("auth request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
	}
}

// Register POST /api/users/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, pair, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Cookies.SetRefresh(c, pair.RefreshToken)
	response.Success(c, http.StatusCreated, gin.H{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"accessToken": pair.AccessToken,
	}, "user registered, OTP sent to your email", nil)
}

// Login POST /api/users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Cookies.SetRefresh(c, pair.RefreshToken)
	response.Success(c, http.StatusOK, gin.H{
		"id":           u.ID,
		"name":         u.Name,
		"email":        u.Email,
		"mobile":       u.Mobile,
		"avatar":       u.AvatarURL,
		"verify_email": u.VerifyEmail,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "login successful", nil)
}

// VerifyEmail POST /api/users/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, pair, err := h.Svc.VerifyEmail(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Cookies.SetRefresh(c, pair.RefreshToken)
	response.Success(c, http.StatusOK, gin.H{
		"id":           u.ID,
		"verify_email": u.VerifyEmail,
		"accessToken":  pair.AccessToken,
	}, "OTP verified successfully", nil)
}

// ForgotPassword POST /api/users/forgot-password
// Responds before email delivery is confirmed; the OTP write is committed
// first and a failed send never rolls it back.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusAccepted, nil, "OTP sent to your email", nil)
}

// VerifyForgotPasswordOTP POST /api/users/verify-forgot-password-otp
func (h *AuthHandler) VerifyForgotPasswordOTP(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	ticket, err := h.Svc.VerifyForgotPasswordOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reset_ticket": ticket}, "OTP verified", nil)
}

// ResetPassword POST /api/users/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ResetPassword(c.Request.Context(), req.Email, req.ResetTicket, req.NewPassword); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password reset successfully", nil)
}

// Refresh POST /api/users/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := h.Cookies.GetRefresh(c)
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	u, pair, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	h.Cookies.SetRefresh(c, pair.RefreshToken)
	response.Success(c, http.StatusOK, gin.H{
		"id":          u.ID,
		"accessToken": pair.AccessToken,
	}, "token refreshed", nil)
}

// Logout POST /api/users/logout. Clearing an already-cleared cookie is fine;
// calling this twice yields the same response.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "logged out successfully", nil)
}
