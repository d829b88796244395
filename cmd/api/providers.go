package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/literary-depot/internal/application/book"
	"github.com/xiebiao/literary-depot/internal/domain/book"
	"github.com/xiebiao/literary-depot/internal/infrastructure/config"
	"github.com/xiebiao/literary-depot/internal/infrastructure/messaging"
	"github.com/xiebiao/literary-depot/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/literary-depot/internal/infrastructure/persistence/mongo"
	"github.com/xiebiao/literary-depot/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/literary-depot/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/literary-depot/internal/infrastructure/storage"
	"github.com/xiebiao/literary-depot/internal/interface/http/handler"
	"github.com/xiebiao/literary-depot/internal/interface/http/router"
	"github.com/xiebiao/literary-depot/pkg/circuitbreaker"
	"github.com/xiebiao/literary-depot/pkg/mq"
)

// App is what main needs from the object graph.
type App struct {
	Engine *gin.Engine
	Seed   *appbook.SeedCatalogUseCase
}

// provideBookRepository opens the configured backend.
// The cleanup closes the connection; the memory driver has nothing to close.
func provideBookRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (book.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		client, cleanup, err := mongo.NewClient(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, nil, err
		}
		repo := mongo.NewBookRepository(mongo.Collection(client, cfg.Mongo))
		if err := repo.EnsureIndexes(ctx); err != nil {
			cleanup()
			return nil, nil, err
		}
		return repo, cleanup, nil

	case config.DriverMySQL:
		db, cleanup, err := mysql.NewDB(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return mysql.NewBookRepository(db), cleanup, nil

	case config.DriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.NewBookRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
}

func provideCoverStore(cfg *config.Config) (*storage.CoverStore, error) {
	return storage.NewCoverStore(cfg.Uploads.Dir)
}

// provideServiceOptions wires the optional collaborators of the catalog service:
// the Redis read cache and the RabbitMQ event publisher.
func provideServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]book.Option, func(), error) {
	opts := []book.Option{
		book.WithLogger(logger.Named("catalog")),
		book.WithPlaceholderImage(cfg.Catalog.PlaceholderImageURL),
		book.WithCoverRoute(cfg.Uploads.Route),
	}
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	if cfg.Redis.Enabled {
		client, closeRedis, err := redis.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanups = append(cleanups, closeRedis)
		opts = append(opts, book.WithCache(redis.NewCacheStore(client, cfg.Redis.TTL)))
	}

	if cfg.MQ.Enabled {
		publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("init event publisher: %w", err)
		}
		logger.Info("event publisher connected", zap.String("exchange", cfg.MQ.Exchange))
		cleanups = append(cleanups, func() {
			if err := publisher.Close(); err != nil {
				logger.Warn("close event publisher failed", zap.Error(err))
			}
		})
		breaker := circuitbreaker.NewCircuitBreaker("event-publisher", circuitbreaker.Config{
			Interval: time.Minute,
			Timeout:  30 * time.Second,
			OnStateChange: func(name string, from, to circuitbreaker.State) {
				logger.Warn("circuit breaker state changed",
					zap.String("breaker", name),
					zap.Stringer("from", from),
					zap.Stringer("to", to),
				)
			},
		})
		opts = append(opts, book.WithEventPublisher(
			messaging.NewEventPublisher(publisher, messaging.WithBreaker(breaker)),
		))
	}

	return opts, cleanup, nil
}

func provideBookService(repo book.Repository, covers book.CoverStorage, opts []book.Option) book.Service {
	return book.NewService(repo, covers, opts...)
}

func provideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	bookHandler *handler.BookHandler,
	healthHandler *handler.HealthHandler,
	covers *storage.CoverStore,
) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	return router.New(cfg, logger, router.Handlers{
		Book:   bookHandler,
		Health: healthHandler,
	}, covers.FileSystem())
}
