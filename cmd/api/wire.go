//go:build wireinject
// +build wireinject

// Wire injector definitions.
//
// Regenerate wire_gen.go after changing a provider:
//
//	wire gen ./cmd/api

package main

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/literary-depot/internal/application/book"
	"github.com/xiebiao/literary-depot/internal/domain/book"
	"github.com/xiebiao/literary-depot/internal/infrastructure/config"
	"github.com/xiebiao/literary-depot/internal/infrastructure/storage"
	"github.com/xiebiao/literary-depot/internal/interface/http/handler"
)

// infrastructureSet: storage backend, cover directory, cache and broker.
var infrastructureSet = wire.NewSet(
	provideBookRepository,
	provideCoverStore,
	wire.Bind(new(book.CoverStorage), new(*storage.CoverStore)),
	provideServiceOptions,
)

var domainSet = wire.NewSet(
	provideBookService,
)

var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewListFeaturedBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListCategoriesUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewUploadCoverUseCase,
	appbook.NewSeedCatalogUseCase,
)

var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewHealthHandler,
)

// InitializeApp builds the object graph.
// The cleanup closes every connection opened on the way, in reverse order.
func InitializeApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		handlerSet,
		provideRouter,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
