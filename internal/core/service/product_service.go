package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/glowmart/shop-api/internal/core/domain"
	"github.com/glowmart/shop-api/internal/core/ports"
)

const (
	defaultPageSize = 12
	// shelfPageSize is the default for the bestseller and new-arrival
	// shelves, which render as small storefront strips.
	shelfPageSize = 4
	maxPageSize   = 100
)

// ImageStore persists an uploaded image and returns its public URL.
type ImageStore interface {
	Save(ctx context.Context, image ports.ImageUpload) (string, error)
}

// ProductService implements the catalog use cases.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	images     ImageStore
	log        zerolog.Logger
}

func NewProductService(products ports.ProductRepository, categories ports.CategoryRepository, images ImageStore, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, categories: categories, images: images, log: log}
}

func (s *ProductService) Create(ctx context.Context, input ports.ProductInput, image *ports.ImageUpload) (*domain.Product, error) {
	if err := s.requireCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Brand:       input.Brand,
		Bestseller:  input.Bestseller,
		NewArrival:  input.NewArrival,
		CategoryID:  input.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if image != nil {
		url, err := s.images.Save(ctx, *image)
		if err != nil {
			return nil, err
		}
		product.ImageURL = url
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.ProductInput, image *ports.ImageUpload) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Quantity = input.Quantity
	product.Brand = input.Brand
	product.Bestseller = input.Bestseller
	product.NewArrival = input.NewArrival
	product.CategoryID = input.CategoryID
	product.UpdatedAt = time.Now().UTC()

	if image != nil {
		url, err := s.images.Save(ctx, *image)
		if err != nil {
			return nil, err
		}
		product.ImageURL = url
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// List runs the filtered listing. An unknown CategoryID in the generic filter
// is not an error here: the composed query simply matches nothing.
func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) (*ports.ListProductsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit, defaultPageSize)
	items, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pageResult(items, total, filter.Page, filter.Limit), nil
}

// ListByCategory is the explicit category-browse call: the category must
// exist before the filter is composed, otherwise the caller gets NotFound
// rather than an empty page.
func (s *ProductService) ListByCategory(ctx context.Context, categoryID string, page, limit int) (*ports.ListProductsResult, error) {
	if err := s.requireCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.List(ctx, ports.ProductFilter{CategoryID: categoryID, Page: page, Limit: limit})
}

func (s *ProductService) Bestsellers(ctx context.Context, page, limit int) (*ports.ListProductsResult, error) {
	flag := true
	return s.listShelf(ctx, ports.ProductFilter{Bestseller: &flag, Page: page, Limit: limit})
}

func (s *ProductService) NewArrivals(ctx context.Context, page, limit int) (*ports.ListProductsResult, error) {
	flag := true
	return s.listShelf(ctx, ports.ProductFilter{NewArrival: &flag, Page: page, Limit: limit})
}

func (s *ProductService) listShelf(ctx context.Context, filter ports.ProductFilter) (*ports.ListProductsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit, shelfPageSize)
	items, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pageResult(items, total, filter.Page, filter.Limit), nil
}

func (s *ProductService) requireCategory(ctx context.Context, categoryID string) error {
	exists, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func normalizePage(page, limit, fallback int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = fallback
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func pageResult(items []*domain.Product, total int64, page, limit int) *ports.ListProductsResult {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
