package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/literary-depot/internal/domain/book"
)

// BookRepository keeps the catalog in process memory.
// Records are listed in insertion order, which is what a fresh Mongo
// collection returns too. Used for local runs without a database and in tests.
type BookRepository struct {
	mu    sync.RWMutex
	books map[string]*book.Book
	order []string
}

// NewBookRepository returns an empty repository.
func NewBookRepository() *BookRepository {
	return &BookRepository{
		books: make(map[string]*book.Book),
	}
}

var _ book.Repository = (*BookRepository)(nil)

func (r *BookRepository) List(_ context.Context, f book.Filter) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*book.Book, 0, len(r.order))
	for _, id := range r.order {
		b := r.books[id]
		if f.Matches(b) {
			result = append(result, b.Clone())
		}
	}
	return result, nil
}

func (r *BookRepository) FindByID(_ context.Context, id string) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b.Clone(), nil
}

// Categories returns distinct categories in order of first appearance.
func (r *BookRepository) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	cats := make([]string, 0)
	for _, id := range r.order {
		c := r.books[id].Category
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cats = append(cats, c)
	}
	return cats, nil
}

func (r *BookRepository) Create(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[b.ID]; !ok {
		r.order = append(r.order, b.ID)
	}
	r.books[b.ID] = b.Clone()
	return nil
}

func (r *BookRepository) Update(_ context.Context, id string, p book.Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	b.Apply(p)
	return nil
}

func (r *BookRepository) SetImageURL(_ context.Context, id, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	b.ImageURL = imageURL
	return nil
}

// ReplaceAll swaps the whole data set under one lock, so readers see either
// the old catalog or the new one.
func (r *BookRepository) ReplaceAll(_ context.Context, books []*book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.books = make(map[string]*book.Book, len(books))
	r.order = make([]string, 0, len(books))
	for _, b := range books {
		if _, ok := r.books[b.ID]; !ok {
			r.order = append(r.order, b.ID)
		}
		r.books[b.ID] = b.Clone()
	}
	return nil
}
