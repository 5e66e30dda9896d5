package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/glowmart/shop-api/internal/core/domain"
	"github.com/glowmart/shop-api/internal/core/ports"
)

// --- Stubs ---

type stubProductRepo struct {
	listFn   func(filter ports.ProductFilter) ([]*domain.Product, int64, error)
	products map[string]*domain.Product
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	q := *p
	q.ID = "p1"
	if r.products == nil {
		r.products = map[string]*domain.Product{}
	}
	r.products[q.ID] = &q
	return &q, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) List(_ context.Context, filter ports.ProductFilter) ([]*domain.Product, int64, error) {
	return r.listFn(filter)
}

type stubCategoryRepo struct {
	existing map[string]bool
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	return c, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if r.existing[id] {
		return &domain.Category{ID: id}, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, _ *domain.Category) error { return nil }
func (r *stubCategoryRepo) Delete(_ context.Context, _ string) error           { return nil }

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) { return nil, nil }

func (r *stubCategoryRepo) Exists(_ context.Context, id string) (bool, error) {
	return r.existing[id], nil
}

func (r *stubCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.existing)), nil
}

type stubImageStore struct {
	url string
	err error
}

func (s stubImageStore) Save(context.Context, ports.ImageUpload) (string, error) {
	return s.url, s.err
}

// --- Tests ---

func TestProductService_List_NormalizesPaging(t *testing.T) {
	var seen ports.ProductFilter
	repo := &stubProductRepo{
		listFn: func(filter ports.ProductFilter) ([]*domain.Product, int64, error) {
			seen = filter
			return nil, 0, nil
		},
	}
	svc := NewProductService(repo, &stubCategoryRepo{}, stubImageStore{}, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ProductFilter{Page: 0, Limit: 0}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if seen.Page != 1 || seen.Limit != defaultPageSize {
		t.Fatalf("expected page=1 limit=%d, got page=%d limit=%d", defaultPageSize, seen.Page, seen.Limit)
	}

	if _, err := svc.List(context.Background(), ports.ProductFilter{Page: 3, Limit: 5000}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if seen.Page != 3 || seen.Limit != maxPageSize {
		t.Fatalf("oversized limit must be capped at %d, got %d", maxPageSize, seen.Limit)
	}
}

func TestProductService_List_ComputesTotalPages(t *testing.T) {
	repo := &stubProductRepo{
		listFn: func(filter ports.ProductFilter) ([]*domain.Product, int64, error) {
			return []*domain.Product{{ID: "p1"}}, 25, nil
		},
	}
	svc := NewProductService(repo, &stubCategoryRepo{}, stubImageStore{}, zerolog.Nop())

	res, err := svc.List(context.Background(), ports.ProductFilter{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 25 || res.TotalPages != 3 {
		t.Fatalf("expected total=25 pages=3, got total=%d pages=%d", res.Total, res.TotalPages)
	}
}

func TestProductService_ListByCategory_UnknownCategory(t *testing.T) {
	repo := &stubProductRepo{
		listFn: func(filter ports.ProductFilter) ([]*domain.Product, int64, error) {
			t.Fatalf("repository must not be queried for a missing category")
			return nil, 0, nil
		},
	}
	svc := NewProductService(repo, &stubCategoryRepo{existing: map[string]bool{}}, stubImageStore{}, zerolog.Nop())

	_, err := svc.ListByCategory(context.Background(), "missing", 1, 10)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestProductService_Bestsellers_SetsFlag(t *testing.T) {
	var seen ports.ProductFilter
	repo := &stubProductRepo{
		listFn: func(filter ports.ProductFilter) ([]*domain.Product, int64, error) {
			seen = filter
			return nil, 0, nil
		},
	}
	svc := NewProductService(repo, &stubCategoryRepo{}, stubImageStore{}, zerolog.Nop())

	if _, err := svc.Bestsellers(context.Background(), 1, 10); err != nil {
		t.Fatalf("bestsellers: %v", err)
	}
	if seen.Bestseller == nil || !*seen.Bestseller {
		t.Fatalf("expected bestseller=true filter, got %+v", seen.Bestseller)
	}
	if seen.NewArrival != nil {
		t.Fatalf("new arrival flag must stay unset")
	}
}

func TestProductService_ShelvesUseSmallDefaultPageSize(t *testing.T) {
	var seen ports.ProductFilter
	repo := &stubProductRepo{
		listFn: func(filter ports.ProductFilter) ([]*domain.Product, int64, error) {
			seen = filter
			return nil, 0, nil
		},
	}
	svc := NewProductService(repo, &stubCategoryRepo{}, stubImageStore{}, zerolog.Nop())

	if _, err := svc.NewArrivals(context.Background(), 0, 0); err != nil {
		t.Fatalf("new arrivals: %v", err)
	}
	if seen.Limit != shelfPageSize {
		t.Fatalf("expected shelf default %d, got %d", shelfPageSize, seen.Limit)
	}
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, &stubCategoryRepo{existing: map[string]bool{}}, stubImageStore{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.ProductInput{Name: "Serum", CategoryID: "missing"}, nil)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestProductService_Create_StoresImage(t *testing.T) {
	repo := &stubProductRepo{}
	categories := &stubCategoryRepo{existing: map[string]bool{"c1": true}}
	svc := NewProductService(repo, categories, stubImageStore{url: "https://cdn.example/img.png"}, zerolog.Nop())

	product, err := svc.Create(context.Background(), ports.ProductInput{Name: "Serum", CategoryID: "c1"}, &ports.ImageUpload{Filename: "img.png"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.ImageURL != "https://cdn.example/img.png" {
		t.Fatalf("expected stored image url, got %q", product.ImageURL)
	}
}

func TestProductService_Create_ImageFailureAborts(t *testing.T) {
	categories := &stubCategoryRepo{existing: map[string]bool{"c1": true}}
	svc := NewProductService(&stubProductRepo{}, categories, stubImageStore{err: errors.New("storage down")}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.ProductInput{Name: "Serum", CategoryID: "c1"}, &ports.ImageUpload{Filename: "img.png"}); err == nil {
		t.Fatalf("expected error when image storage fails")
	}
}
