package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glowmart/shop-api/internal/core/ports"
)

// HeroHandler handles HTTP requests for the landing banner.
type HeroHandler struct {
	service ports.HeroService
}

func NewHeroHandler(service ports.HeroService) *HeroHandler {
	return &HeroHandler{service: service}
}

type heroForm struct {
	Title    string `form:"title"     validate:"required"`
	Subtitle string `form:"subtitle"`
	LinkText string `form:"link_text"`
	LinkURL  string `form:"link_url"`
}

// Get serves the landing banner.
//
// @Summary      Get the hero banner
// @Tags         hero
// @Produce      json
// @Success      200  {object}  domain.Hero
// @Router       /api/hero [get]
func (h *HeroHandler) Get(c echo.Context) error {
	hero, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hero)
}

// Update replaces the banner's fields. Admin only.
//
// @Summary      Update the hero banner
// @Tags         hero
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title      formData  string  true   "Headline"
// @Param        subtitle   formData  string  false  "Subheadline"
// @Param        link_text  formData  string  false  "Call-to-action label"
// @Param        link_url   formData  string  false  "Call-to-action target"
// @Param        image      formData  file    false  "Banner image"
// @Success      200        {object}  domain.Hero
// @Failure      400        {object}  map[string]string
// @Router       /api/hero [put]
func (h *HeroHandler) Update(c echo.Context) error {
	var form heroForm
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

	hero, err := h.service.Update(c.Request().Context(), ports.HeroInput{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		LinkText: form.LinkText,
		LinkURL:  form.LinkURL,
	}, image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hero)
}
