package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glowmart/shop-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for storefront reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type submitReviewRequest struct {
	Author  string `json:"author"  validate:"required"`
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating"  validate:"required,gte=1,lte=5"`
}

// Submit creates a review pending moderation.
//
// @Summary      Submit a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitReviewRequest  true  "Review content"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/reviews [post]
func (h *ReviewHandler) Submit(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.Submit(c.Request().Context(), principal.Email, ports.ReviewInput{
		Author:  req.Author,
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// ListApproved serves the publicly visible reviews.
//
// @Summary      List approved reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /api/reviews/approved [get]
func (h *ReviewHandler) ListApproved(c echo.Context) error {
	reviews, err := h.service.ListApproved(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListAll serves every review, approved or not. Admin only.
//
// @Summary      List all reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Review
// @Failure      403  {object}  map[string]string
// @Router       /api/reviews [get]
func (h *ReviewHandler) ListAll(c echo.Context) error {
	reviews, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Approve marks a review as publicly visible. Admin only.
//
// @Summary      Approve a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  domain.Review
// @Failure      404  {object}  map[string]string
// @Router       /api/reviews/{id}/approve [put]
func (h *ReviewHandler) Approve(c echo.Context) error {
	review, err := h.service.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// Delete removes a review. Admin only.
//
// @Summary      Delete a review
// @Tags         reviews
// @Security     BearerAuth
// @Param        id  path  string  true  "Review id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
