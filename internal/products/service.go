package products

import (
	"context"
	"errors"
	"strings"
)

// Service coordinates catalogue operations.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new product.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	product, err := productFromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, product)
}

// Update overwrites the product at id with the request payload.
func (s *Service) Update(ctx context.Context, id int64, req CreateProductRequest) (*Product, error) {
	product, err := productFromRequest(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, product)
}

// List returns the catalogue scoped by location and optional category.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	if strings.TrimSpace(filter.Location) == "" {
		return nil, errors.New("products: location required")
	}
	return s.repo.List(ctx, filter)
}

// Get fetches one product.
func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// AdjustStock decrements stock for sold items; the whole batch fails if
// any line would go negative.
func (s *Service) AdjustStock(ctx context.Context, req UpdateStockRequest) error {
	if len(req.Items) == 0 {
		return errors.New("products: no stock adjustments provided")
	}
	for _, adj := range req.Items {
		if strings.TrimSpace(adj.ProductName) == "" || strings.TrimSpace(adj.Location) == "" {
			return errors.New("products: adjustment requires product name and location")
		}
		if adj.Qty <= 0 {
			return errors.New("products: adjustment quantity must be positive")
		}
	}
	return s.repo.AdjustStock(ctx, req.Items)
}

func productFromRequest(req CreateProductRequest) (Product, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		return Product{}, errors.New("products: product name required")
	}
	if req.Quantity < 0 || req.SellingPrice < 0 {
		return Product{}, errors.New("products: quantity and price must be non-negative")
	}
	status := req.Status
	if status == "" {
		status = StatusNotReady
	}
	return Product{
		ProductName:  name,
		Description:  req.Description,
		Quantity:     req.Quantity,
		Status:       status,
		SellingPrice: req.SellingPrice,
		Categories:   req.Categories,
		Location:     req.Location,
		Brand:        req.Brand,
		SKU:          req.SKU,
	}, nil
}
