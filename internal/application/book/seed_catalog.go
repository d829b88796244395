package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/literary-depot/internal/domain/book"
)

// SeedCatalogUseCase resets the catalog to the demo data set.
// It erases every stored record, including ones created through the API,
// and runs once at start-up before the listener opens.
type SeedCatalogUseCase struct {
	bookService book.Service
	seed        func() []*book.Book
	logger      *zap.Logger
}

// NewSeedCatalogUseCase creates the use case with the built-in seed set.
func NewSeedCatalogUseCase(bookService book.Service, logger *zap.Logger) *SeedCatalogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedCatalogUseCase{
		bookService: bookService,
		seed:        book.SeedBooks,
		logger:      logger,
	}
}

// Execute returns the number of books inserted.
func (uc *SeedCatalogUseCase) Execute(ctx context.Context) (int, error) {
	n, err := uc.bookService.ResetAndSeed(ctx, uc.seed())
	if err != nil {
		return 0, err
	}
	uc.logger.Info("sample books inserted", zap.Int("count", n))
	return n, nil
}
