package book

import (
	"context"
	"io"
	"time"
)

// Repository is the book store port.
// Every method is a single-document operation except ReplaceAll.
// Implementations return ErrBookNotFound for unknown ids.
type Repository interface {
	// List returns the books matching f; never nil.
	List(ctx context.Context, f Filter) ([]*Book, error)

	// FindByID returns the book with the given id.
	FindByID(ctx context.Context, id string) (*Book, error)

	// Categories returns the distinct category values, in no particular order.
	Categories(ctx context.Context) ([]string, error)

	// Create inserts b as given.
	Create(ctx context.Context, b *Book) error

	// Update sets the non-nil fields of p on the book with id.
	Update(ctx context.Context, id string, p Patch) error

	// SetImageURL changes only the image_url of the book with id.
	SetImageURL(ctx context.Context, id, imageURL string) error

	// ReplaceAll deletes every book and inserts books.
	ReplaceAll(ctx context.Context, books []*Book) error
}

// Cache is an optional read-through cache for single books and categories.
// A miss is (nil, nil) for books and (nil, false, nil) for categories.
type Cache interface {
	GetBook(ctx context.Context, id string) (*Book, error)
	SetBook(ctx context.Context, b *Book) error
	DeleteBook(ctx context.Context, id string) error

	GetCategories(ctx context.Context) ([]string, bool, error)
	SetCategories(ctx context.Context, categories []string) error
	DeleteCategories(ctx context.Context) error

	// Flush drops every entry the cache owns.
	Flush(ctx context.Context) error
}

// CoverStorage stores uploaded cover files.
type CoverStorage interface {
	// Save writes content to name, replacing any existing file, and
	// returns the number of bytes written.
	Save(ctx context.Context, name string, content io.Reader) (int64, error)
}

// Event types published after successful writes.
const (
	EventBookCreated   = "book.created"
	EventBookUpdated   = "book.updated"
	EventCoverUploaded = "book.cover_uploaded"
	EventCatalogSeeded = "catalog.seeded"
)

// Event describes a completed catalog write.
type Event struct {
	Type       string
	BookID     string
	ImageURL   string
	Count      int
	OccurredAt time.Time
}

// EventPublisher is an optional outbound port for catalog events.
type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}
