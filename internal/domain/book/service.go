package book

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xiebiao/literary-depot/pkg/metrics"
	"github.com/xiebiao/literary-depot/pkg/tracing"
)

const (
	// DefaultPlaceholderImageURL is assigned to every book created through the API.
	DefaultPlaceholderImageURL = "https://images.unsplash.com/photo-1544947950-fa07a98d237f"

	// DefaultCoverRoute is the URL prefix stored covers are served under.
	DefaultCoverRoute = "/uploads"

	tracerName = "catalog"
)

// Service is the catalog domain service.
// Operations are single reads or writes against the repository; nothing is
// retried and nothing spans more than one document except ResetAndSeed.
type Service interface {
	// ListBooks returns the books matching f; an empty result is not an error.
	ListBooks(ctx context.Context, f Filter) ([]*Book, error)

	// GetBook returns one book or ErrBookNotFound.
	GetBook(ctx context.Context, id string) (*Book, error)

	// ListCategories returns the distinct categories in use.
	ListCategories(ctx context.Context) ([]string, error)

	// ListFeatured is ListBooks with Featured fixed to true.
	ListFeatured(ctx context.Context) ([]*Book, error)

	// CreateBook mints an id, assigns the placeholder image and stores the book.
	// Duplicate titles and authors are allowed.
	CreateBook(ctx context.Context, d Draft) (*Book, error)

	// UpdateBook applies p and returns the merged record.
	// An empty patch performs no write.
	UpdateBook(ctx context.Context, id string, p Patch) (*Book, error)

	// UploadCover stores content as the cover of id and returns the new image URL.
	UploadCover(ctx context.Context, id, filename string, content io.Reader) (string, error)

	// ResetAndSeed erases the whole collection and inserts seed with fresh ids.
	// It destroys every record created at runtime and is meant for boot-time
	// demo data only.
	ResetAndSeed(ctx context.Context, seed []*Book) (int, error)
}

// Option configures the service.
type Option func(*service)

// WithCache enables read-through caching of single books and categories.
func WithCache(c Cache) Option {
	return func(s *service) { s.cache = c }
}

// WithEventPublisher publishes an Event after every successful write.
func WithEventPublisher(p EventPublisher) Option {
	return func(s *service) { s.events = p }
}

// WithPlaceholderImage overrides DefaultPlaceholderImageURL.
func WithPlaceholderImage(url string) Option {
	return func(s *service) {
		if url != "" {
			s.placeholderImage = url
		}
	}
}

// WithCoverRoute overrides DefaultCoverRoute.
func WithCoverRoute(route string) Option {
	return func(s *service) {
		if route != "" {
			s.coverRoute = route
		}
	}
}

// WithIDGenerator replaces the UUIDv4 id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *service) { s.newID = fn }
}

// WithLogger sets the logger used for non-fatal cache and event failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	repo   Repository
	covers CoverStorage
	cache  Cache
	events EventPublisher

	placeholderImage string
	coverRoute       string
	newID            func() string
	now              func() time.Time
	log              *zap.Logger

	// fillMu orders cache fills against invalidations. A fill is dropped when
	// any write completed after the fill's repository read started.
	fillMu sync.Mutex
	writes uint64
}

// NewService creates the catalog service.
func NewService(repo Repository, covers CoverStorage, opts ...Option) Service {
	s := &service{
		repo:             repo,
		covers:           covers,
		placeholderImage: DefaultPlaceholderImageURL,
		coverRoute:       DefaultCoverRoute,
		newID:            uuid.NewString,
		now:              time.Now,
		log:              zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) ListBooks(ctx context.Context, f Filter) ([]*Book, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListBooks")
	defer span.End()

	books, err := s.repo.List(ctx, f)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if books == nil {
		books = []*Book{}
	}
	return books, nil
}

func (s *service) GetBook(ctx context.Context, id string) (*Book, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "GetBook")
	defer span.End()

	if b := s.cachedBook(ctx, id); b != nil {
		return b, nil
	}

	gen := s.generation()
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	s.fill(gen, func() error { return s.cache.SetBook(ctx, b) }, "book")
	return b, nil
}

func (s *service) ListCategories(ctx context.Context) ([]string, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListCategories")
	defer span.End()

	if s.cache != nil {
		cats, ok, err := s.cache.GetCategories(ctx)
		switch {
		case err != nil:
			metrics.IncCounterVec(metrics.CacheRequestsTotal, map[string]string{"kind": "categories", "result": "error"})
			s.log.Warn("read categories cache failed", zap.Error(err))
		case ok:
			metrics.IncCounterVec(metrics.CacheRequestsTotal, map[string]string{"kind": "categories", "result": "hit"})
			return cats, nil
		default:
			metrics.IncCounterVec(metrics.CacheRequestsTotal, map[string]string{"kind": "categories", "result": "miss"})
		}
	}

	gen := s.generation()
	cats, err := s.repo.Categories(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if cats == nil {
		cats = []string{}
	}

	s.fill(gen, func() error { return s.cache.SetCategories(ctx, cats) }, "categories")
	return cats, nil
}

func (s *service) ListFeatured(ctx context.Context) ([]*Book, error) {
	featured := true
	return s.ListBooks(ctx, Filter{Featured: &featured})
}

func (s *service) CreateBook(ctx context.Context, d Draft) (*Book, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "CreateBook")
	defer span.End()

	b := NewBook(s.newID(), d, s.placeholderImage)
	if err := s.repo.Create(ctx, b); err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	metrics.IncCounter(metrics.BooksCreatedTotal)
	s.invalidateCategories(ctx)
	s.publish(ctx, Event{Type: EventBookCreated, BookID: b.ID})
	return b, nil
}

func (s *service) UpdateBook(ctx context.Context, id string, p Patch) (*Book, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateBook")
	defer span.End()

	// existence check first: unknown ids must not cause a write
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if p.IsEmpty() {
		return current, nil
	}

	if err := s.repo.Update(ctx, id, p); err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	s.invalidateBook(ctx, id)
	if p.Category != nil {
		s.invalidateCategories(ctx)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	metrics.IncCounter(metrics.BooksUpdatedTotal)
	s.publish(ctx, Event{Type: EventBookUpdated, BookID: id})
	return updated, nil
}

func (s *service) UploadCover(ctx context.Context, id, filename string, content io.Reader) (string, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UploadCover")
	defer span.End()

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		tracing.RecordError(span, err)
		return "", err
	}

	name, err := CoverFilename(id, filename)
	if err != nil {
		return "", err
	}

	// Concurrent uploads of the same name race; the last write wins.
	// Files left behind by an earlier upload with another extension stay on disk.
	n, err := s.covers.Save(ctx, name, content)
	if err != nil {
		tracing.RecordError(span, err)
		return "", err
	}

	imageURL := s.coverRoute + "/" + name
	if err := s.repo.SetImageURL(ctx, id, imageURL); err != nil {
		tracing.RecordError(span, err)
		return "", err
	}
	s.invalidateBook(ctx, id)

	metrics.IncCounter(metrics.CoversUploadedTotal)
	metrics.ObserveHistogram(metrics.CoverUploadBytes, float64(n))
	s.publish(ctx, Event{Type: EventCoverUploaded, BookID: id, ImageURL: imageURL})
	return imageURL, nil
}

func (s *service) ResetAndSeed(ctx context.Context, seed []*Book) (int, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ResetAndSeed")
	defer span.End()

	books := make([]*Book, len(seed))
	for i, b := range seed {
		c := b.Clone()
		c.ID = s.newID()
		books[i] = c
	}

	if err := s.repo.ReplaceAll(ctx, books); err != nil {
		tracing.RecordError(span, err)
		return 0, err
	}

	if s.cache != nil {
		s.markWritten()
		if err := s.cache.Flush(ctx); err != nil {
			s.log.Warn("flush cache after seed failed", zap.Error(err))
		}
	}

	metrics.IncCounter(metrics.CatalogSeedsTotal)
	metrics.SetGauge(metrics.CatalogSeedBooks, float64(len(books)))
	s.publish(ctx, Event{Type: EventCatalogSeeded, Count: len(books)})
	return len(books), nil
}

// =========================================
// cache and event helpers
// =========================================

func (s *service) cachedBook(ctx context.Context, id string) *Book {
	if s.cache == nil {
		return nil
	}
	b, err := s.cache.GetBook(ctx, id)
	switch {
	case err != nil:
		metrics.IncCounterVec(metrics.CacheRequestsTotal, map[string]string{"kind": "book", "result": "error"})
		s.log.Warn("read book cache failed", zap.String("book_id", id), zap.Error(err))
		return nil
	case b == nil:
		metrics.IncCounterVec(metrics.CacheRequestsTotal, map[string]string{"kind": "book", "result": "miss"})
		return nil
	default:
		metrics.IncCounterVec(metrics.CacheRequestsTotal, map[string]string{"kind": "book", "result": "hit"})
		return b
	}
}

func (s *service) generation() uint64 {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	return s.writes
}

func (s *service) markWritten() {
	s.fillMu.Lock()
	s.writes++
	s.fillMu.Unlock()
}

// fill runs set unless a write has landed since gen was taken. The lock is
// held across set so an invalidation either bumps the generation first or
// deletes the entry set here.
func (s *service) fill(gen uint64, set func() error, kind string) {
	if s.cache == nil {
		return
	}
	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	if s.writes != gen {
		return
	}
	if err := set(); err != nil {
		s.log.Warn("fill cache failed", zap.String("kind", kind), zap.Error(err))
	}
}

func (s *service) invalidateBook(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	s.markWritten()
	if err := s.cache.DeleteBook(ctx, id); err != nil {
		s.log.Warn("invalidate book cache failed", zap.String("book_id", id), zap.Error(err))
	}
}

func (s *service) invalidateCategories(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.markWritten()
	if err := s.cache.DeleteCategories(ctx); err != nil {
		s.log.Warn("invalidate categories cache failed", zap.Error(err))
	}
}

// publish is fire-and-forget: a broker failure never fails the write.
func (s *service) publish(ctx context.Context, e Event) {
	if s.events == nil {
		return
	}
	e.OccurredAt = s.now()
	if err := s.events.Publish(ctx, e); err != nil {
		metrics.IncCounterVec(metrics.EventsPublishedTotal, map[string]string{"type": e.Type, "result": "failure"})
		s.log.Warn("publish event failed", zap.String("type", e.Type), zap.String("book_id", e.BookID), zap.Error(err))
		return
	}
	metrics.IncCounterVec(metrics.EventsPublishedTotal, map[string]string{"type": e.Type, "result": "success"})
}
