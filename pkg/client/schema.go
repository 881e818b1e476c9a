package client

// ListOptions carries the filter/search/pagination parameters shared by all
// list endpoints. Zero values are omitted from the query string.
type ListOptions struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// Page is one page of a list response.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ProductInput is the payload for creating or updating a catalog product.
// It is validated locally before any request is issued.
type ProductInput struct {
	Name        string  `json:"name"         validate:"required"`
	Category    string  `json:"category"     validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"        validate:"required,gt=0"`
	Unit        string  `json:"unit"         validate:"required"`
	Stock       int     `json:"stock"        validate:"gte=0"`
	ImageURL    string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Status values are checked against the domain state machines before a
// request is built, so the status payloads carry no validate tags.
type orderStatusRequest struct {
	Status string `json:"status"`
}

type requestStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}
