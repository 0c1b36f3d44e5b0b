package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"zaika/internal/ai"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// --------------------------------------------------
// CREATE (SINGLE INSERT, ONE ORDER QUERY)
// --------------------------------------------------
func (s *Service) CreateProduct(ctx context.Context, p *Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}

	order, err := NewOrderAllocator(s.repo).Next(ctx, p.Category)
	if err != nil {
		return err
	}

	p.ID = uuid.New().String()
	p.DisplayOrder = order

	if p.AIHint == "" {
		p.AIHint = DeriveAIHint(p.Name, p.Category)
	}

	return s.repo.Create(ctx, p)
}

// --------------------------------------------------
// UPDATE (CATEGORY CHANGE KEEPS DISPLAY ORDER)
// --------------------------------------------------
func (s *Service) UpdateProduct(ctx context.Context, p *Product) error {
	if p.ID == "" {
		return errors.New("missing product id")
	}
	if err := validateProduct(p); err != nil {
		return err
	}

	return s.repo.Update(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing product id")
	}
	return s.repo.Delete(ctx, id)
}

// --------------------------------------------------
// AI IMPORT (BATCH, ATOMIC)
// --------------------------------------------------

// ImportExtracted turns extractor output into catalog products and
// inserts them in one atomic batch. Display orders come from a single
// allocator scoped to this call, so each category in the batch gets a
// contiguous run starting after the store's prior maximum.
func (s *Service) ImportExtracted(
	ctx context.Context,
	extracted []ai.ExtractedProduct,
) ([]Product, error) {

	if len(extracted) == 0 {
		return nil, nil
	}

	alloc := NewOrderAllocator(s.repo)
	products := make([]Product, 0, len(extracted))

	for _, e := range extracted {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			name = DefaultProductName
		}

		category := DefaultCategory
		if e.Category != nil && strings.TrimSpace(*e.Category) != "" {
			category = strings.TrimSpace(*e.Category)
		}

		order, err := alloc.Next(ctx, category)
		if err != nil {
			return nil, err
		}

		var price float64
		if e.Price != nil && *e.Price > 0 {
			price = *e.Price
		}

		var description string
		if e.Description != nil {
			description = strings.TrimSpace(*e.Description)
		}

		products = append(products, Product{
			ID:           uuid.New().String(),
			Name:         name,
			Price:        price,
			Category:     category,
			Description:  description,
			AIHint:       DeriveAIHint(name, category),
			DisplayOrder: order,
		})
	}

	if err := s.repo.CreateBatch(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// --------------------------------------------------
// PRODUCT IMAGE
// --------------------------------------------------
func (s *Service) AttachImage(
	ctx context.Context,
	productID string,
	body io.Reader,
	filename string,
	contentType string,
) (*Product, error) {

	if s.storage == nil {
		return nil, errors.New("image storage not configured")
	}

	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		return nil, errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"products/%s/%s%s",
		productID,
		uuid.New().String(),
		ext,
	)

	url, err := s.storage.Upload(ctx, key, body, contentType)
	if err != nil {
		return nil, err
	}

	p.ImageURL = url
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeriveAIHint lowers the first one-to-two tokens of the name, falling
// back to the category when the name is the placeholder default.
func DeriveAIHint(name, category string) string {
	source := name
	if name == DefaultProductName {
		source = category
	}

	fields := strings.Fields(strings.ToLower(source))
	if len(fields) > 2 {
		fields = fields[:2]
	}

	return strings.Join(fields, " ")
}

func validateProduct(p *Product) error {
	if p == nil {
		return errors.New("missing product")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return errors.New("product category is required")
	}
	if p.Price < 0 {
		return errors.New("product price must not be negative")
	}
	return nil
}
