package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ecommerce-api/internal/interface/http"
	"github.com/oksasatya/go-ecommerce-api/internal/interface/middleware"
	"github.com/oksasatya/go-ecommerce-api/pkg/helpers"
)

// UserModule wires the credential lifecycle and profile routes.
// Public: register, login, verify-email, forgot-password,
// verify-forgot-password-otp, reset-password, refresh, logout.
// Protected: profile get/update, avatar upload.
type UserModule struct {
	Auth *handlers.AuthHandler
	User *handlers.UserHandler
	JWT  *helpers.JWTManager
}

func NewUserModule(auth *handlers.AuthHandler, user *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Auth: auth, User: user, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/register", m.Auth.Register)
		users.POST("/login", m.Auth.Login)
		users.POST("/verify-email", m.Auth.VerifyEmail)
		users.POST("/forgot-password", m.Auth.ForgotPassword)
		users.POST("/verify-forgot-password-otp", m.Auth.VerifyForgotPasswordOTP)
		users.POST("/reset-password", m.Auth.ResetPassword)
		users.POST("/refresh", m.Auth.Refresh)
		// Logout only clears the cookie, so it needs no valid token.
		users.POST("/logout", m.Auth.Logout)
	}

	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/profile", m.User.GetProfile)
		auth.PUT("/profile", m.User.UpdateProfile)
		auth.PUT("/avatar", m.User.UploadAvatar)
	}
}
