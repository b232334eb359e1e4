package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ecommerce-api/internal/interface/http"
	"github.com/oksasatya/go-ecommerce-api/internal/interface/middleware"
	"github.com/oksasatya/go-ecommerce-api/pkg/helpers"
)

// CartModule wires cart routes; every cart operation belongs to the caller,
// so the whole group requires a valid access token.
type CartModule struct {
	Handler *handlers.CartHandler
	JWT     *helpers.JWTManager
}

func NewCartModule(h *handlers.CartHandler, jwt *helpers.JWTManager) *CartModule {
	return &CartModule{Handler: h, JWT: jwt}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.Use(middleware.Auth(m.JWT))
	{
		cart.POST("", m.Handler.Add)
		cart.GET("", m.Handler.List)
		cart.PUT("", m.Handler.UpdateQuantity)
		cart.DELETE("/:product_id", m.Handler.Remove)
	}
}
