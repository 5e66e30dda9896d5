package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glowmart/shop-api/internal/api/metrics"
	"github.com/glowmart/shop-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List serves the filtered catalog listing.
//
// @Summary      List products with optional filters
// @Tags         products
// @Produce      json
// @Param        search       query     string   false  "Match against name or description, case-insensitive"
// @Param        min_price    query     number   false  "Inclusive lower price bound"
// @Param        max_price    query     number   false  "Inclusive upper price bound"
// @Param        brand        query     string   false  "Exact brand match, case-insensitive"
// @Param        bestseller   query     bool     false  "Only bestsellers when true"
// @Param        new_arrival  query     bool     false  "Only new arrivals when true"
// @Param        category_id  query     string   false  "Restrict to a category"
// @Param        page         query     int      false  "Page number, 1-based"
// @Param        limit        query     int      false  "Page size"
// @Success      200          {object}  productPageResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	var q listProductsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	res, err := h.service.List(c.Request().Context(), toProductFilter(q))
	if err != nil {
		return err
	}

	metrics.ProductSearchesTotal.Inc()
	return c.JSON(http.StatusOK, toProductPageResponse(res))
}

// Get serves a single product.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// ListByCategory serves the products of one category.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        id     path      string  true   "Category id"
// @Param        page   query     int     false  "Page number, 1-based"
// @Param        limit  query     int     false  "Page size"
// @Success      200    {object}  productPageResponse
// @Failure      404    {object}  map[string]string
// @Router       /api/products/category/{id} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	var q pageQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	res, err := h.service.ListByCategory(c.Request().Context(), c.Param("id"), q.Page, q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductPageResponse(res))
}

// Bestsellers serves the bestseller shelf.
//
// @Summary      List bestselling products
// @Tags         products
// @Produce      json
// @Param        page   query     int  false  "Page number, 1-based"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  productPageResponse
// @Router       /api/products/bestsellers [get]
func (h *ProductHandler) Bestsellers(c echo.Context) error {
	var q pageQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	res, err := h.service.Bestsellers(c.Request().Context(), q.Page, q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductPageResponse(res))
}

// NewArrivals serves the new-arrivals shelf.
//
// @Summary      List newly arrived products
// @Tags         products
// @Produce      json
// @Param        page   query     int  false  "Page number, 1-based"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  productPageResponse
// @Router       /api/products/new-arrivals [get]
func (h *ProductHandler) NewArrivals(c echo.Context) error {
	var q pageQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	res, err := h.service.NewArrivals(c.Request().Context(), q.Page, q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductPageResponse(res))
}

// Create adds a product. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "Product name"
// @Param        description  formData  string  true   "Description"
// @Param        price        formData  number  true   "Unit price"
// @Param        quantity     formData  int     false  "Stock quantity"
// @Param        brand        formData  string  true   "Brand"
// @Param        bestseller   formData  bool    false  "Bestseller flag"
// @Param        new_arrival  formData  bool    false  "New arrival flag"
// @Param        category_id  formData  string  true   "Category id"
// @Param        image        formData  file    false  "Product image"
// @Success      201          {object}  productResponse
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var form productForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image, file, err := formImage(c)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	product, err := h.service.Create(c.Request().Context(), toProductInput(form), image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update replaces a product's fields. Admin only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string       true  "Product id"
// @Success      200    {object}  productResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var form productForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image, file, err := formImage(c)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), toProductInput(form), image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete removes a product. Admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
