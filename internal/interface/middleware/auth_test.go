package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ecommerce-api/pkg/helpers"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *helpers.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt, err := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	require.NoError(t, err)

	e := gin.New()
	e.GET("/protected", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(CtxUserIDKey)})
	})
	return e, jwt
}

func TestAuthAllowsValidToken(t *testing.T) {
	e, jwt := newAuthRouter(t)

	token, _, err := jwt.GenerateAccessToken("user-123")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	e, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	e, jwt := newAuthRouter(t)
	token, _, err := jwt.GenerateAccessToken("user-123")
	require.NoError(t, err)

	for _, h := range []string{token, "Basic " + token, "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", h)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", h)
	}
}

func TestAuthRejectsRefreshTokenAsAccess(t *testing.T) {
	e, jwt := newAuthRouter(t)

	refresh, _, err := jwt.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
