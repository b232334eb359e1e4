package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ecommerce-api/internal/interface/http"
	"github.com/oksasatya/go-ecommerce-api/internal/interface/middleware"
	"github.com/oksasatya/go-ecommerce-api/pkg/helpers"
)

// ReviewModule wires review routes: listing is public, adding requires auth.
type ReviewModule struct {
	Handler *handlers.ReviewHandler
	JWT     *helpers.JWTManager
}

func NewReviewModule(h *handlers.ReviewHandler, jwt *helpers.JWTManager) *ReviewModule {
	return &ReviewModule{Handler: h, JWT: jwt}
}

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	rg.GET("/reviews", m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/reviews", m.Handler.Add)
	}
}
