// Package router assembles the gin engine: middleware chain, API routes,
// the uploaded cover directory and the operational endpoints.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/literary-depot/docs"
	"github.com/xiebiao/literary-depot/internal/infrastructure/config"
	"github.com/xiebiao/literary-depot/internal/interface/http/dto"
	"github.com/xiebiao/literary-depot/internal/interface/http/handler"
	"github.com/xiebiao/literary-depot/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/literary-depot/pkg/errors"
	"github.com/xiebiao/literary-depot/pkg/response"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Book   *handler.BookHandler
	Health *handler.HealthHandler
}

// New builds the engine.
//
// Middleware order:
// 1. Logger first so that panics and CORS rejections are logged too
// 2. Recovery turns panics into the opaque 500 body
// 3. CORS answers preflights before any route matching
// 4. RateLimit, when enabled, rejects with 429 before any work is done
// 5. Tracing and Metrics wrap the matched handler
func New(cfg *config.Config, logger *zap.Logger, h Handlers, covers http.FileSystem) *gin.Engine {
	dto.RegisterValidator()

	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.MaxMultipartMem
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(middleware.CORSOptions{
			AllowOrigins:     cfg.CORS.AllowOrigins,
			AllowCredentials: cfg.CORS.AllowCredentials,
		}),
	)
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(middleware.RateLimitOptions{
			RPS:     cfg.RateLimit.RPS,
			Burst:   cfg.RateLimit.Burst,
			IdleTTL: cfg.RateLimit.IdleTTL,
		}))
	}
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		response.ErrorWithCode(c, apperrors.ErrCodeMethodNotAllowed, "Method Not Allowed")
	})

	if cfg.Server.Mode == gin.DebugMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.StaticFS(cfg.Uploads.Route, covers)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health.Health)
		api.GET("/categories", h.Book.ListCategories)
		api.GET("/featured-books", h.Book.ListFeatured)

		books := api.Group("/books")
		{
			books.GET("", h.Book.ListBooks)
			books.POST("", h.Book.CreateBook)
			books.GET("/:id", h.Book.GetBook)
			books.PUT("/:id", h.Book.UpdateBook)
			books.POST("/:id/upload-cover", h.Book.UploadCover)
		}
	}

	return r
}
