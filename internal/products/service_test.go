package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryProductRepo struct {
	products map[int64]*Product
	nextID   int64
}

func newMemoryProductRepo() *memoryProductRepo {
	return &memoryProductRepo{products: make(map[int64]*Product)}
}

func (r *memoryProductRepo) Create(ctx context.Context, p Product) (*Product, error) {
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = &p
	return &p, nil
}

func (r *memoryProductRepo) Get(ctx context.Context, id int64) (*Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *memoryProductRepo) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	var out []Product
	for _, p := range r.products {
		if p.Location != filter.Location {
			continue
		}
		if filter.Category != "" && p.Categories != filter.Category {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *memoryProductRepo) Update(ctx context.Context, id int64, p Product) (*Product, error) {
	if _, ok := r.products[id]; !ok {
		return nil, ErrNotFound
	}
	p.ID = id
	r.products[id] = &p
	return &p, nil
}

func (r *memoryProductRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *memoryProductRepo) AdjustStock(ctx context.Context, adjustments []StockAdjustment) error {
	// Validate the whole batch before mutating anything.
	for _, adj := range adjustments {
		p := r.findByName(adj.ProductName, adj.Location)
		if p == nil {
			return ErrNotFound
		}
		if p.Quantity-adj.Qty < 0 {
			return ErrInsufficientStock
		}
	}
	for _, adj := range adjustments {
		p := r.findByName(adj.ProductName, adj.Location)
		p.Quantity -= adj.Qty
	}
	return nil
}

func (r *memoryProductRepo) findByName(name, location string) *Product {
	for _, p := range r.products {
		if p.ProductName == name && p.Location == location {
			return p
		}
	}
	return nil
}

func TestCreateProductDefaultsStatus(t *testing.T) {
	svc := NewService(newMemoryProductRepo())
	p, err := svc.Create(context.Background(), CreateProductRequest{
		ProductName:  "HDMI Cable",
		Quantity:     10,
		SellingPrice: 150,
		Categories:   "Accessories",
		Location:     "Nanded",
	})
	require.NoError(t, err)
	require.Equal(t, StatusNotReady, p.Status)
}

func TestCreateProductRejectsBlankName(t *testing.T) {
	svc := NewService(newMemoryProductRepo())
	_, err := svc.Create(context.Background(), CreateProductRequest{
		ProductName: "   ",
		Categories:  "Accessories",
		Location:    "Nanded",
	})
	require.Error(t, err)
}

func TestListScopedByLocationAndCategory(t *testing.T) {
	repo := newMemoryProductRepo()
	svc := NewService(repo)
	ctx := context.Background()

	for _, p := range []CreateProductRequest{
		{ProductName: "Cable", Quantity: 5, SellingPrice: 100, Categories: "Accessories", Location: "Nanded"},
		{ProductName: "Dome Camera", Quantity: 2, SellingPrice: 2500, Categories: "CCTV", Location: "Nanded"},
		{ProductName: "Mouse", Quantity: 7, SellingPrice: 300, Categories: "Accessories", Location: "Latur"},
	} {
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, ListFilter{Location: "Nanded"})
	require.NoError(t, err)
	require.Len(t, all, 2)

	cctv, err := svc.List(ctx, ListFilter{Location: "Nanded", Category: "CCTV"})
	require.NoError(t, err)
	require.Len(t, cctv, 1)
	require.Equal(t, "Dome Camera", cctv[0].ProductName)

	_, err = svc.List(ctx, ListFilter{})
	require.Error(t, err)
}

func TestAdjustStock(t *testing.T) {
	repo := newMemoryProductRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProductRequest{
		ProductName: "Cable", Quantity: 5, SellingPrice: 100, Categories: "Accessories", Location: "Nanded",
	})
	require.NoError(t, err)

	err = svc.AdjustStock(ctx, UpdateStockRequest{Items: []StockAdjustment{
		{ProductName: "Cable", Location: "Nanded", Qty: 3},
	}})
	require.NoError(t, err)
	require.Equal(t, 2.0, repo.findByName("Cable", "Nanded").Quantity)

	err = svc.AdjustStock(ctx, UpdateStockRequest{Items: []StockAdjustment{
		{ProductName: "Cable", Location: "Nanded", Qty: 3},
	}})
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.Equal(t, 2.0, repo.findByName("Cable", "Nanded").Quantity)

	err = svc.AdjustStock(ctx, UpdateStockRequest{Items: []StockAdjustment{
		{ProductName: "Cable", Location: "Nanded", Qty: -1},
	}})
	require.Error(t, err)
}
