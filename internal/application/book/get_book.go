package book

import (
	"context"

	"github.com/xiebiao/literary-depot/internal/domain/book"
)

// GetBookUseCase fetches a single book by id.
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase creates the use case.
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
	}
}

// Execute returns book.ErrBookNotFound for unknown ids.
func (uc *GetBookUseCase) Execute(ctx context.Context, id string) (*BookResult, error) {
	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResult(b), nil
}
