package dto

import "encoding/json"

// CreateBookRequest is the POST /api/books body.
// validator tags:
// - required on a pointer means "present", so empty strings pass
// - featured is optional and defaults to false, but an explicit null is rejected
// - id and image_url are ignored if sent; the server assigns both
type CreateBookRequest struct {
	Title       *string      `json:"title" binding:"required" example:"Bubble Bears Great Adventure"`
	Author      *string      `json:"author" binding:"required" example:"Garry Jordan"`
	Category    *string      `json:"category" binding:"required" example:"Young Readers"`
	Description *string      `json:"description" binding:"required" example:"Join Bubble Bear on an amazing adventure."`
	Price       *float64     `json:"price" binding:"required" example:"12.99"`
	AmazonLink  *string      `json:"amazon_link" binding:"required" example:"https://www.amazon.com/dp/B08XYZ123A"`
	Featured    OptionalBool `json:"featured" swaggertype:"boolean" example:"false"`
}

// OptionalBool is a JSON boolean that tells an absent field from null.
type OptionalBool struct {
	Value bool
	Set   bool
	Null  bool
}

func (b *OptionalBool) UnmarshalJSON(data []byte) error {
	b.Set = true
	if string(data) == "null" {
		b.Null = true
		return nil
	}
	return json.Unmarshal(data, &b.Value)
}

// UpdateBookRequest is the PUT /api/books/{id} body.
// Absent and null fields are both left unchanged. image_url is not
// updatable here; use the cover upload.
type UpdateBookRequest struct {
	Title       *string  `json:"title" example:"Bubble Bears Great Adventure"`
	Author      *string  `json:"author" example:"Garry Jordan"`
	Category    *string  `json:"category" example:"Young Readers"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" example:"15"`
	AmazonLink  *string  `json:"amazon_link"`
	Featured    *bool    `json:"featured" example:"true"`
}

// ListBooksQuery holds the raw GET /api/books query.
// featured is kept as text and parsed with ParseBool so that "yes", "on"
// and "1" are accepted like "true".
type ListBooksQuery struct {
	Category string `form:"category"`
}

// HealthResponse is the fixed health payload.
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"Literary Depot API is running"`
}
