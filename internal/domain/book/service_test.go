package book_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/literary-depot/internal/domain/book"
	"github.com/xiebiao/literary-depot/internal/infrastructure/persistence/memory"
)

// =========================================
// test doubles
// =========================================

type fakeCovers struct {
	mu    sync.Mutex
	files map[string][]byte
	err   error
}

func newFakeCovers() *fakeCovers {
	return &fakeCovers{files: make(map[string][]byte)}
}

func (f *fakeCovers) Save(_ context.Context, name string, r io.Reader) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[name] = data
	return int64(len(data)), nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, e book.Event) error {
	return m.Called(ctx, e).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) GetBook(ctx context.Context, id string) (*book.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*book.Book)
	return b, args.Error(1)
}

func (m *mockCache) SetBook(ctx context.Context, b *book.Book) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockCache) DeleteBook(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCache) GetCategories(ctx context.Context) ([]string, bool, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]string)
	return cats, args.Bool(1), args.Error(2)
}

func (m *mockCache) SetCategories(ctx context.Context, cats []string) error {
	return m.Called(ctx, cats).Error(0)
}

func (m *mockCache) DeleteCategories(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCache) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// mapCache is a working in-process Cache.
type mapCache struct {
	mu    sync.Mutex
	books map[string]*book.Book
	cats  []string
}

func newMapCache() *mapCache {
	return &mapCache{books: make(map[string]*book.Book)}
}

func (c *mapCache) GetBook(_ context.Context, id string) (*book.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.books[id]; ok {
		return b.Clone(), nil
	}
	return nil, nil
}

func (c *mapCache) SetBook(_ context.Context, b *book.Book) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.books[b.ID] = b.Clone()
	return nil
}

func (c *mapCache) DeleteBook(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.books, id)
	return nil
}

func (c *mapCache) GetCategories(context.Context) ([]string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cats, c.cats != nil, nil
}

func (c *mapCache) SetCategories(_ context.Context, cats []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cats = cats
	return nil
}

func (c *mapCache) DeleteCategories(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cats = nil
	return nil
}

func (c *mapCache) Flush(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.books = make(map[string]*book.Book)
	c.cats = nil
	return nil
}

// stallingRepo blocks the next read after it returns from the store, until
// release is closed.
type stallingRepo struct {
	*memory.BookRepository

	mu      sync.Mutex
	armed   bool
	read    chan struct{}
	release chan struct{}
}

func newStallingRepo() *stallingRepo {
	return &stallingRepo{
		BookRepository: memory.NewBookRepository(),
		read:           make(chan struct{}),
		release:        make(chan struct{}),
	}
}

func (r *stallingRepo) arm() {
	r.mu.Lock()
	r.armed = true
	r.mu.Unlock()
}

func (r *stallingRepo) take() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	armed := r.armed
	r.armed = false
	return armed
}

func (r *stallingRepo) FindByID(ctx context.Context, id string) (*book.Book, error) {
	b, err := r.BookRepository.FindByID(ctx, id)
	if r.take() {
		close(r.read)
		<-r.release
	}
	return b, err
}

func (r *stallingRepo) Categories(ctx context.Context) ([]string, error) {
	cats, err := r.BookRepository.Categories(ctx)
	if r.take() {
		close(r.read)
		<-r.release
	}
	return cats, err
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "id-" + strconv.Itoa(n)
	}
}

func newSeededService(t *testing.T, opts ...book.Option) (book.Service, *memory.BookRepository, *fakeCovers) {
	t.Helper()
	repo := memory.NewBookRepository()
	covers := newFakeCovers()
	opts = append([]book.Option{book.WithIDGenerator(sequentialIDs())}, opts...)
	svc := book.NewService(repo, covers, opts...)

	_, err := svc.ResetAndSeed(context.Background(), book.SeedBooks())
	require.NoError(t, err)
	return svc, repo, covers
}

// =========================================
// reads
// =========================================

func TestService_ListBooks(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSeededService(t)
	yes, no := true, false

	all, err := svc.ListBooks(ctx, book.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 17)

	young, err := svc.ListBooks(ctx, book.Filter{Category: "Young Readers"})
	require.NoError(t, err)
	assert.Len(t, young, 6)
	for _, b := range young {
		assert.Equal(t, "Young Readers", b.Category)
	}

	featuredYoung, err := svc.ListBooks(ctx, book.Filter{Category: "Young Readers", Featured: &yes})
	require.NoError(t, err)
	require.Len(t, featuredYoung, 1)
	assert.Equal(t, "Bubble Bears Great Adventure", featuredYoung[0].Title)

	notFeatured, err := svc.ListBooks(ctx, book.Filter{Featured: &no})
	require.NoError(t, err)
	assert.Len(t, notFeatured, 13)

	unknown, err := svc.ListBooks(ctx, book.Filter{Category: "Cooking"})
	require.NoError(t, err)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestService_ListFeatured(t *testing.T) {
	svc, _, _ := newSeededService(t)

	featured, err := svc.ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 4)
	for _, b := range featured {
		assert.True(t, b.Featured)
	}
}

func TestService_ListCategories(t *testing.T) {
	svc, _, _ := newSeededService(t)

	cats, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Young Readers", "Business & Self-Help", "Action & Thriller", "Legal Information"}, cats)
}

func TestService_GetBook(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSeededService(t)

	all, _ := svc.ListBooks(ctx, book.Filter{})
	got, err := svc.GetBook(ctx, all[3].ID)
	require.NoError(t, err)
	assert.Equal(t, all[3], got)

	_, err = svc.GetBook(ctx, "nope")
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

// =========================================
// writes
// =========================================

func TestService_CreateBook(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSeededService(t)

	draft := book.Draft{
		Title:       "T",
		Author:      "A",
		Category:    "Young Readers",
		Description: "D",
		Price:       9.99,
		AmazonLink:  "https://www.amazon.com/x",
	}
	created, err := svc.CreateBook(ctx, draft)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, book.DefaultPlaceholderImageURL, created.ImageURL)
	assert.False(t, created.Featured)

	fetched, err := svc.GetBook(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	// duplicates are distinct records
	dup, err := svc.CreateBook(ctx, draft)
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, dup.ID)

	all, _ := svc.ListBooks(ctx, book.Filter{})
	assert.Len(t, all, 19)
}

func TestService_CreateBook_CustomPlaceholder(t *testing.T) {
	svc, _, _ := newSeededService(t, book.WithPlaceholderImage("https://cdn.example/p.png"))

	created, err := svc.CreateBook(context.Background(), book.Draft{Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/p.png", created.ImageURL)
}

func TestService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSeededService(t)

	all, _ := svc.ListBooks(ctx, book.Filter{})
	target := all[0]

	price := 15.0
	updated, err := svc.UpdateBook(ctx, target.ID, book.Patch{Price: &price})
	require.NoError(t, err)

	want := target.Clone()
	want.Price = 15.0
	assert.Equal(t, want, updated)

	t.Run("empty patch returns the record unchanged", func(t *testing.T) {
		same, err := svc.UpdateBook(ctx, target.ID, book.Patch{})
		require.NoError(t, err)
		assert.Equal(t, updated, same)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateBook(ctx, "missing", book.Patch{Price: &price})
		assert.ErrorIs(t, err, book.ErrBookNotFound)

		after, _ := svc.ListBooks(ctx, book.Filter{})
		assert.Len(t, after, 17)
	})
}

func TestService_UploadCover(t *testing.T) {
	ctx := context.Background()
	svc, _, covers := newSeededService(t)

	all, _ := svc.ListBooks(ctx, book.Filter{})
	id := all[0].ID

	url, err := svc.UploadCover(ctx, id, "cover.final.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/"+id+".PNG", url)
	assert.Equal(t, []byte("png-bytes"), covers.files[id+".PNG"])

	b, _ := svc.GetBook(ctx, id)
	assert.Equal(t, url, b.ImageURL)

	t.Run("overwrite keeps the last bytes", func(t *testing.T) {
		_, err := svc.UploadCover(ctx, id, "x.PNG", bytes.NewReader([]byte("second")))
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), covers.files[id+".PNG"])
	})

	t.Run("unknown id writes nothing", func(t *testing.T) {
		_, err := svc.UploadCover(ctx, "missing", "c.jpg", strings.NewReader("x"))
		assert.ErrorIs(t, err, book.ErrBookNotFound)
		_, ok := covers.files["missing.jpg"]
		assert.False(t, ok)
	})

	t.Run("path separators rejected", func(t *testing.T) {
		_, err := svc.UploadCover(ctx, id, "a.b/../../x", strings.NewReader("x"))
		assert.ErrorIs(t, err, book.ErrInvalidCoverFilename)
	})

	t.Run("storage failure leaves image_url alone", func(t *testing.T) {
		other := all[1]
		covers.err = errors.New("disk full")
		defer func() { covers.err = nil }()

		_, err := svc.UploadCover(ctx, other.ID, "c.jpg", strings.NewReader("x"))
		require.Error(t, err)
		b, _ := svc.GetBook(ctx, other.ID)
		assert.Equal(t, other.ImageURL, b.ImageURL)
	})
}

func TestService_UploadCover_CustomRoute(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSeededService(t, book.WithCoverRoute("/static/covers"))

	all, _ := svc.ListBooks(ctx, book.Filter{})
	url, err := svc.UploadCover(ctx, all[0].ID, "c.webp", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/static/covers/"+all[0].ID+".webp", url)
}

func TestService_ResetAndSeed(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSeededService(t)

	created, err := svc.CreateBook(ctx, book.Draft{Title: "runtime"})
	require.NoError(t, err)

	n, err := svc.ResetAndSeed(ctx, book.SeedBooks())
	require.NoError(t, err)
	assert.Equal(t, 17, n)

	_, err = svc.GetBook(ctx, created.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	// ids are freshly minted and the seed slice is left untouched
	seed := book.SeedBooks()
	all, _ := svc.ListBooks(ctx, book.Filter{})
	ids := map[string]bool{}
	for _, b := range all {
		assert.NotEmpty(t, b.ID)
		ids[b.ID] = true
	}
	assert.Len(t, ids, 17)
	assert.Empty(t, seed[0].ID)
}

// =========================================
// events and cache
// =========================================

func TestService_PublishesEvents(t *testing.T) {
	ctx := context.Background()
	pub := new(mockPublisher)
	now := time.Date(2025, 6, 25, 6, 0, 0, 0, time.UTC)

	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e book.Event) bool {
		return e.Type == book.EventCatalogSeeded && e.Count == 17
	})).Return(nil).Once()
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e book.Event) bool {
		return e.Type == book.EventBookCreated && e.OccurredAt.Equal(now)
	})).Return(errors.New("broker down")).Once()

	svc, _, _ := newSeededService(t, book.WithEventPublisher(pub), book.WithClock(func() time.Time { return now }))

	// publish failures never fail the write
	created, err := svc.CreateBook(ctx, book.Draft{Title: "T"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	pub.AssertExpectations(t)
}

func TestService_CacheAside(t *testing.T) {
	ctx := context.Background()
	cache := new(mockCache)
	cache.On("Flush", mock.Anything).Return(nil)

	svc, _, _ := newSeededService(t, book.WithCache(cache))
	all, _ := svc.ListBooks(ctx, book.Filter{})
	id := all[0].ID

	t.Run("miss fills the cache", func(t *testing.T) {
		cache.On("GetBook", mock.Anything, id).Return(nil, nil).Once()
		cache.On("SetBook", mock.Anything, mock.MatchedBy(func(b *book.Book) bool { return b.ID == id })).Return(nil).Once()

		b, err := svc.GetBook(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, b.ID)
	})

	t.Run("hit skips the repository", func(t *testing.T) {
		cached := &book.Book{ID: "cached-only", Title: "from cache"}
		cache.On("GetBook", mock.Anything, "cached-only").Return(cached, nil).Once()

		b, err := svc.GetBook(ctx, "cached-only")
		require.NoError(t, err)
		assert.Equal(t, "from cache", b.Title)
	})

	t.Run("cache errors fall through", func(t *testing.T) {
		cache.On("GetCategories", mock.Anything).Return(nil, false, errors.New("redis down")).Once()
		cache.On("SetCategories", mock.Anything, mock.Anything).Return(nil).Once()

		cats, err := svc.ListCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, cats, 4)
	})

	t.Run("update invalidates", func(t *testing.T) {
		cache.On("DeleteBook", mock.Anything, id).Return(nil).Once()
		cache.On("DeleteCategories", mock.Anything).Return(nil).Once()

		cat := "Legal Information"
		_, err := svc.UpdateBook(ctx, id, book.Patch{Category: &cat})
		require.NoError(t, err)
	})

	cache.AssertExpectations(t)
}

func TestService_CacheFillLosesToConcurrentUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newStallingRepo()
	svc := book.NewService(repo, newFakeCovers(), book.WithCache(newMapCache()))
	require.NoError(t, repo.Create(ctx, &book.Book{ID: "x", Title: "T", Category: "Young Readers", Price: 1}))

	repo.arm()
	done := make(chan *book.Book)
	go func() {
		b, err := svc.GetBook(ctx, "x")
		assert.NoError(t, err)
		done <- b
	}()

	<-repo.read
	price := 9.99
	_, err := svc.UpdateBook(ctx, "x", book.Patch{Price: &price})
	require.NoError(t, err)

	close(repo.release)
	stale := <-done
	assert.Equal(t, 1.0, stale.Price)

	got, err := svc.GetBook(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 9.99, got.Price)
}

func TestService_CategoriesFillLosesToConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := newStallingRepo()
	svc := book.NewService(repo, newFakeCovers(), book.WithCache(newMapCache()))
	require.NoError(t, repo.Create(ctx, &book.Book{ID: "x", Category: "Young Readers"}))

	repo.arm()
	done := make(chan []string)
	go func() {
		cats, err := svc.ListCategories(ctx)
		assert.NoError(t, err)
		done <- cats
	}()

	<-repo.read
	_, err := svc.CreateBook(ctx, book.Draft{Title: "T", Category: "Legal Information"})
	require.NoError(t, err)

	close(repo.release)
	assert.Equal(t, []string{"Young Readers"}, <-done)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Young Readers", "Legal Information"}, cats)
}
