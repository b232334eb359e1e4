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

type CartHandler struct {
	Svc    *application.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *application.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,gte=1"`
}

type updateCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"gte=0"`
}

func (h *CartHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrProductNotFound):
		response.Error[any](c, http.StatusNotFound, "product not found", nil)
	case errors.Is(err, application.ErrCartItemNotFound):
		response.Error[any](c, http.StatusNotFound, "cart item not found", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("path", c.FullPath()).Error("cart request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
	}
}

// Add POST /api/cart
func (h *CartHandler) Add(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	item, err := h.Svc.Add(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.ProductID, req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item, "added to cart", nil)
}

// List GET /api/cart
func (h *CartHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, "cart", gin.H{"count": len(items)})
}

// UpdateQuantity PUT /api/cart
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Svc.UpdateQuantity(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.ProductID, req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "cart updated", nil)
}

// Remove DELETE /api/cart/:product_id
func (h *CartHandler) Remove(c *gin.Context) {
	err := h.Svc.Remove(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("product_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "removed from cart", nil)
}
