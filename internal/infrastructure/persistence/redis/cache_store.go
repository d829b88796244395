package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/literary-depot/internal/domain/book"
	apperrors "github.com/xiebiao/literary-depot/pkg/errors"
)

const keyPrefix = "literary_depot:"

// CacheStore is the cache-aside store for book details and the category list.
// Writes delete the affected keys after the database write; entries also
// expire after ttl so a missed invalidation heals on its own.
type CacheStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheStore creates the store.
func NewCacheStore(client *redis.Client, ttl time.Duration) *CacheStore {
	return &CacheStore{
		client: client,
		ttl:    ttl,
	}
}

var _ book.Cache = (*CacheStore)(nil)

// cachedBook mirrors book.Book with stable JSON names.
type cachedBook struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	AmazonLink  string  `json:"amazon_link"`
	Featured    bool    `json:"featured"`
}

// GetBook returns nil, nil on a miss.
func (c *CacheStore) GetBook(ctx context.Context, id string) (*book.Book, error) {
	val, err := c.client.Get(ctx, bookKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "get book cache failed")
	}

	var cb cachedBook
	if err := json.Unmarshal(val, &cb); err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "decode book cache failed")
	}
	return &book.Book{
		ID:          cb.ID,
		Title:       cb.Title,
		Author:      cb.Author,
		Category:    cb.Category,
		Description: cb.Description,
		Price:       cb.Price,
		ImageURL:    cb.ImageURL,
		AmazonLink:  cb.AmazonLink,
		Featured:    cb.Featured,
	}, nil
}

func (c *CacheStore) SetBook(ctx context.Context, b *book.Book) error {
	val, err := json.Marshal(cachedBook{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Category:    b.Category,
		Description: b.Description,
		Price:       b.Price,
		ImageURL:    b.ImageURL,
		AmazonLink:  b.AmazonLink,
		Featured:    b.Featured,
	})
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "encode book cache failed")
	}
	if err := c.client.Set(ctx, bookKey(b.ID), val, c.ttl).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "set book cache failed")
	}
	return nil
}

func (c *CacheStore) DeleteBook(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, bookKey(id)).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "delete book cache failed")
	}
	return nil
}

// GetCategories reports ok=false on a miss. An empty cached list is a hit.
func (c *CacheStore) GetCategories(ctx context.Context) ([]string, bool, error) {
	val, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "get categories cache failed")
	}

	var cats []string
	if err := json.Unmarshal(val, &cats); err != nil {
		return nil, false, apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "decode categories cache failed")
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, true, nil
}

func (c *CacheStore) SetCategories(ctx context.Context, cats []string) error {
	val, err := json.Marshal(cats)
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "encode categories cache failed")
	}
	if err := c.client.Set(ctx, categoriesKey, val, c.ttl).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "set categories cache failed")
	}
	return nil
}

func (c *CacheStore) DeleteCategories(ctx context.Context) error {
	if err := c.client.Del(ctx, categoriesKey).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "delete categories cache failed")
	}
	return nil
}

// Flush removes every key of this service. Keys of other tenants in the same
// database are left alone, so FLUSHDB is not used.
func (c *CacheStore) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "scan cache keys failed")
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "flush cache failed")
	}
	return nil
}

const categoriesKey = keyPrefix + "categories"

func bookKey(id string) string {
	return keyPrefix + "book:" + id
}
