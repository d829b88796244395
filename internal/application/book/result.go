package book

import (
	"github.com/xiebiao/literary-depot/internal/domain/book"
)

// BookResult is the wire shape of a catalog record.
// Field names are the public JSON contract and must not change.
type BookResult struct {
	ID          string  `json:"id" example:"6f1c2a8e-3b4d-4e5f-9a0b-1c2d3e4f5a6b"`
	Title       string  `json:"title" example:"The Midnight Heist"`
	Author      string  `json:"author" example:"Garry Wiggins"`
	Category    string  `json:"category" example:"Action & Thriller"`
	Description string  `json:"description" example:"A sophisticated crime thriller."`
	Price       float64 `json:"price" example:"14.99"`
	ImageURL    string  `json:"image_url" example:"/uploads/6f1c2a8e-3b4d-4e5f-9a0b-1c2d3e4f5a6b.jpg"`
	AmazonLink  string  `json:"amazon_link" example:"https://www.amazon.com/s?k=midnight+heist"`
	Featured    bool    `json:"featured" example:"false"`
}

func toResult(b *book.Book) *BookResult {
	return &BookResult{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Category:    b.Category,
		Description: b.Description,
		Price:       b.Price,
		ImageURL:    b.ImageURL,
		AmazonLink:  b.AmazonLink,
		Featured:    b.Featured,
	}
}

// toResults never returns nil so an empty catalog encodes as [].
func toResults(books []*book.Book) []*BookResult {
	list := make([]*BookResult, len(books))
	for i, b := range books {
		list[i] = toResult(b)
	}
	return list
}
