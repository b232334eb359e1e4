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

type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type addReviewRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
	ImageURL  string `json:"image" binding:"omitempty,url"`
}

// Add POST /api/reviews
func (h *ReviewHandler) Add(c *gin.Context) {
	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rv, err := h.Svc.Add(c.Request.Context(), application.AddReviewInput{
		ProductID: req.ProductID,
		UserID:    c.GetString(middleware.CtxUserIDKey),
		Username:  req.Username,
		Rating:    req.Rating,
		Comment:   req.Comment,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("add review failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, rv, "review added successfully", nil)
}

// List GET /api/reviews?product_id=
func (h *ReviewHandler) List(c *gin.Context) {
	productID := c.Query("product_id")
	if productID == "" {
		response.Error[any](c, http.StatusBadRequest, "product_id is required", nil)
		return
	}
	reviews, err := h.Svc.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list reviews failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, reviews, "reviews", gin.H{"count": len(reviews)})
}
