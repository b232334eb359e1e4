package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refreshToken"

// CookieManager writes and clears the refresh-token cookie. The cookie is
// HttpOnly, Secure and SameSite=Strict, and lives shorter than the refresh
// token itself; it is re-issued on every login/verification to extend the
// effective session.
type CookieManager struct {
	Domain string
	Secure bool
	TTL    time.Duration
}

func NewCookieManager(domain string, secure bool, ttl time.Duration) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure, TTL: ttl}
}

func (m *CookieManager) SetRefresh(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookieName, token, int(m.TTL.Seconds()), "/", m.Domain, m.Secure, true)
}

func (m *CookieManager) GetRefresh(c *gin.Context) (string, error) {
	return c.Cookie(refreshCookieName)
}

func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookieName, "", -1, "/", m.Domain, m.Secure, true)
}
