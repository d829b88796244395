package book

import (
	"context"

	"github.com/xiebiao/literary-depot/internal/domain/book"
)

// CreateBookUseCase adds a book to the catalog. Fields arrive already
// validated by the HTTP layer.
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase creates the use case.
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
	}
}

// CreateBookRequest holds the caller-supplied fields.
type CreateBookRequest struct {
	Title       string
	Author      string
	Category    string
	Description string
	Price       float64
	AmazonLink  string
	Featured    bool
}

func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookResult, error) {
	b, err := uc.bookService.CreateBook(ctx, book.Draft{
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
