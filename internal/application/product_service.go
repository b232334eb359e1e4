package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
	repo "github.com/oksasatya/go-ecommerce-api/internal/domain/repository"
	"github.com/oksasatya/go-ecommerce-api/pkg/helpers"
)

// ProductService covers catalog CRUD, image upload and search. Products are
// indexed into Elasticsearch best-effort; Postgres stays the source of truth.
type ProductService struct {
	Repo      repo.ProductRepository
	GCS       *storage.Client
	GCSBucket string
	ES        *elasticsearch.Client
	ESIndex   string
	Logger    *logrus.Logger
}

func NewProductService(r repo.ProductRepository, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *ProductService {
	return &ProductService{Repo: r, GCS: gcs, GCSBucket: gcsBucket, ES: es, ESIndex: esIndex, Logger: logger}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	ImageURL    string
}

func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*entity.Product, error) {
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	_ = s.indexProduct(ctx, p)
	return p, nil
}

func (s *ProductService) List(limit, offset int) ([]*entity.Product, error) {
	return s.Repo.List(limit, offset)
}

func (s *ProductService) Get(id string) (*entity.Product, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// UploadImage streams a product image to GCS and stores the public URL.
func (s *ProductService) UploadImage(ctx context.Context, productID string, r io.Reader, filename, contentType string) (string, error) {
	p, err := s.Repo.GetByID(productID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", ErrProductNotFound
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("products", productID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Repo.SetImageURL(productID, url); err != nil {
		return "", err
	}
	p.ImageURL = url
	_ = s.indexProduct(ctx, p)
	return url, nil
}

func (s *ProductService) indexProduct(ctx context.Context, p *entity.Product) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
		"image_url":   p.ImageURL,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match query on name and description.
func (s *ProductService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description", "category"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
