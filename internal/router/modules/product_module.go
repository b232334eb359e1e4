package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ecommerce-api/internal/interface/http"
	"github.com/oksasatya/go-ecommerce-api/internal/interface/middleware"
	"github.com/oksasatya/go-ecommerce-api/pkg/helpers"
)

// ProductModule wires catalog routes.
// Public: list, search, get by id. Protected: create, image upload.
type ProductModule struct {
	Handler *handlers.ProductHandler
	JWT     *helpers.JWTManager
}

func NewProductModule(h *handlers.ProductHandler, jwt *helpers.JWTManager) *ProductModule {
	return &ProductModule{Handler: h, JWT: jwt}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", m.Handler.List)
		products.GET("/search", m.Handler.Search)
		products.GET("/:id", m.Handler.Get)
	}

	auth := rg.Group("/products")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/create", m.Handler.Create)
		auth.POST("/upload", m.Handler.UploadImage)
	}
}
