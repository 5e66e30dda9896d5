package handler

// --- Request / Response types ---

// listProductsQuery carries the optional filter criteria of a catalog
// listing. Absent fields mean "don't care"; every present field narrows the
// result, and criteria combine with AND.
type listProductsQuery struct {
	Search     string   `query:"search"`
	MinPrice   *float64 `query:"min_price"`
	MaxPrice   *float64 `query:"max_price"`
	Brand      string   `query:"brand"`
	Bestseller bool     `query:"bestseller"`
	NewArrival bool     `query:"new_arrival"`
	CategoryID string   `query:"category_id"`
	Page       int      `query:"page"`
	Limit      int      `query:"limit"`
}

type pageQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// productForm carries the writable product fields. Products are submitted as
// multipart forms so an image can ride along in the "image" part.
type productForm struct {
	Name        string  `form:"name"        validate:"required"`
	Description string  `form:"description" validate:"required"`
	Price       float64 `form:"price"       validate:"required,gt=0"`
	Quantity    int     `form:"quantity"    validate:"gte=0"`
	Brand       string  `form:"brand"       validate:"required"`
	Bestseller  bool    `form:"bestseller"`
	NewArrival  bool    `form:"new_arrival"`
	CategoryID  string  `form:"category_id" validate:"required"`
}

type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
	Brand       string  `json:"brand"`
	Bestseller  bool    `json:"bestseller"`
	NewArrival  bool    `json:"new_arrival"`
	CategoryID  string  `json:"category_id"`
	CreatedAt   string  `json:"created_at"`
}

type productPageResponse struct {
	Items      []productResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
