package book

import (
	"context"

	"github.com/xiebiao/literary-depot/internal/domain/book"
)

// UpdateBookUseCase applies a partial update.
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase creates the use case.
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
	}
}

// UpdateBookRequest lists the updatable fields; nil means "leave as is".
// image_url is not updatable here.
type UpdateBookRequest struct {
	ID          string
	Title       *string
	Author      *string
	Category    *string
	Description *string
	Price       *float64
	AmazonLink  *string
	Featured    *bool
}

// Execute returns the full record after the update.
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookResult, error) {
	b, err := uc.bookService.UpdateBook(ctx, req.ID, book.Patch{
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		AmazonLink:  req.AmazonLink,
		Featured:    req.Featured,
	})
	if err != nil {
		return nil, err
	}
	return toResult(b), nil
}
