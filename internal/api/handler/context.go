package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glowmart/shop-api/internal/api/middleware"
	"github.com/glowmart/shop-api/internal/core/domain"
	"github.com/glowmart/shop-api/internal/core/ports"
)

// ctxPrincipal extracts the principal resolved by the Auth middleware.
// Handlers behind an Authenticated or AdminOnly rule can rely on it being
// present; the 401 here is a safety net in case a route is ever wired
// without the policy middleware in front of it.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return p, nil
}

// formImage pulls the optional "image" part out of a multipart form.
// Returns (nil, nil, nil) when no image was attached. The caller must close
// the returned file once the upload has been consumed.
func formImage(c echo.Context) (*ports.ImageUpload, multipart.File, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil, nil
		}
		// No multipart form at all is fine too: JSON bodies have no image.
		return nil, nil, nil
	}

	file, err := fh.Open()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}

	return &ports.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      file,
	}, file, nil
}
