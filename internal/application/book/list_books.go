package book

import (
	"context"

	"github.com/xiebiao/literary-depot/internal/domain/book"
)

// ListBooksUseCase lists the catalog with optional filters.
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase creates the use case.
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest carries the already-parsed query filters.
type ListBooksRequest struct {
	Category string // exact match; empty means any
	Featured *bool  // nil means any
}

// Execute returns every book matching all supplied filters.
// There is no pagination; the catalog is small and returned whole.
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) ([]*BookResult, error) {
	books, err := uc.bookService.ListBooks(ctx, book.Filter{
		Category: req.Category,
		Featured: req.Featured,
	})
	if err != nil {
		return nil, err
	}
	return toResults(books), nil
}

// ListFeaturedBooksUseCase lists books flagged as featured.
type ListFeaturedBooksUseCase struct {
	bookService book.Service
}

// NewListFeaturedBooksUseCase creates the use case.
func NewListFeaturedBooksUseCase(bookService book.Service) *ListFeaturedBooksUseCase {
	return &ListFeaturedBooksUseCase{
		bookService: bookService,
	}
}

func (uc *ListFeaturedBooksUseCase) Execute(ctx context.Context) ([]*BookResult, error) {
	books, err := uc.bookService.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	return toResults(books), nil
}
