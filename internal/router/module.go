package router

import "github.com/gin-gonic/gin"

// Module is one feature area (users, products, reviews, cart) that knows how
// to mount its own routes under the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
