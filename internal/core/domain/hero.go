package domain

import "errors"

var ErrHeroNotFound = errors.New("hero section not found")

// Hero is the storefront's landing banner. Exactly one exists; it is only
// ever read or replaced, never listed or deleted.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	LinkText string `json:"link_text"`
	LinkURL  string `json:"link_url"`
	ImageURL string `json:"image_url,omitempty"`
}
