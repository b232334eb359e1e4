package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ecommerce-api/internal/application"
	"github.com/oksasatya/go-ecommerce-api/pkg/response"
	"github.com/oksasatya/go-ecommerce-api/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type createProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock" binding:"gte=0"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url"`
}

func (h *ProductHandler) serverError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error(msg)
	}
	response.Error[any](c, http.StatusInternalServerError, "server error", nil)
}

// Create POST /api/products/create
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), application.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.serverError(c, err, "create product failed")
		return
	}
	response.Success(c, http.StatusCreated, p, "product created", nil)
}

// List GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	products, err := h.Svc.List(limit, offset)
	if err != nil {
		h.serverError(c, err, "list products failed")
		return
	}
	response.Success(c, http.StatusOK, products, "products", gin.H{"count": len(products)})
}

// Get GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
			return
		}
		h.serverError(c, err, "get product failed")
		return
	}
	response.Success(c, http.StatusOK, p, "product", nil)
}

// UploadImage POST /api/products/upload (multipart fields "product_id", "image")
func (h *ProductHandler) UploadImage(c *gin.Context) {
	productID := c.PostForm("product_id")
	if productID == "" {
		response.Error[any](c, http.StatusBadRequest, "product_id is required", nil)
		return
	}
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "no file uploaded", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadImage(c.Request.Context(), productID, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
			return
		}
		h.serverError(c, err, "product image upload failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"image_url": url}, "image uploaded", nil)
}

// Search GET /api/products/search?q=
func (h *ProductHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.serverError(c, err, "product search failed")
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}
