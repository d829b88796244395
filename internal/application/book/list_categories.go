package book

import (
	"context"

	"github.com/xiebiao/literary-depot/internal/domain/book"
)

// ListCategoriesUseCase lists the distinct categories in use.
type ListCategoriesUseCase struct {
	bookService book.Service
}

// NewListCategoriesUseCase creates the use case.
func NewListCategoriesUseCase(bookService book.Service) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		bookService: bookService,
	}
}

// CategoriesResult wraps the category list in the object clients expect.
type CategoriesResult struct {
	Categories []string `json:"categories" example:"Young Readers,Legal Information"`
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*CategoriesResult, error) {
	cats, err := uc.bookService.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []string{}
	}
	return &CategoriesResult{Categories: cats}, nil
}
