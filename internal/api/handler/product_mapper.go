package handler

import (
	"time"

	"github.com/glowmart/shop-api/internal/core/domain"
	"github.com/glowmart/shop-api/internal/core/ports"
)

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Image:       p.ImageURL,
		Brand:       p.Brand,
		Bestseller:  p.Bestseller,
		NewArrival:  p.NewArrival,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toProductPageResponse(res *ports.ListProductsResult) productPageResponse {
	items := make([]productResponse, 0, len(res.Items))
	for _, p := range res.Items {
		items = append(items, toProductResponse(p))
	}
	return productPageResponse{
		Items:      items,
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
	}
}

// toProductFilter maps the query onto the repository filter. The bestseller
// and new-arrival flags only narrow when true, so false binds the same as
// absent.
func toProductFilter(q listProductsQuery) ports.ProductFilter {
	f := ports.ProductFilter{
		Search:     q.Search,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Brand:      q.Brand,
		CategoryID: q.CategoryID,
		Page:       q.Page,
		Limit:      q.Limit,
	}
	if q.Bestseller {
		t := true
		f.Bestseller = &t
	}
	if q.NewArrival {
		t := true
		f.NewArrival = &t
	}
	return f
}

func toProductInput(form productForm) ports.ProductInput {
	return ports.ProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Quantity:    form.Quantity,
		Brand:       form.Brand,
		Bestseller:  form.Bestseller,
		NewArrival:  form.NewArrival,
		CategoryID:  form.CategoryID,
	}
}
