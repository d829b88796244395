package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/literary-depot/internal/domain/book"
	apperrors "github.com/xiebiao/literary-depot/pkg/errors"
)

// bookRepository is the MySQL implementation of book.Repository.
type bookRepository struct {
	db  *gorm.DB
	txm *TxManager
}

// NewBookRepository creates the repository.
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db, txm: NewTxManager(db)}
}

func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db)
}

func (r *bookRepository) List(ctx context.Context, f book.Filter) ([]*book.Book, error) {
	q := r.getDB(ctx).Model(&BookModel{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}

	var models []BookModel
	if err := q.Find(&models).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "list books failed")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "find book failed")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) Categories(ctx context.Context) ([]string, error) {
	cats := make([]string, 0)
	err := r.getDB(ctx).Model(&BookModel{}).Distinct("category").Pluck("category", &cats).Error
	if err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "list categories failed")
	}
	return cats, nil
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	if err := r.getDB(ctx).Create(toBookModel(b)).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "duplicate book id")
		}
		return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "create book failed")
	}
	return nil
}

func (r *bookRepository) Update(ctx context.Context, id string, p book.Patch) error {
	updates := patchColumns(p)
	if len(updates) == 0 {
		return nil
	}
	return r.updateColumns(ctx, id, updates, "update book failed")
}

func (r *bookRepository) SetImageURL(ctx context.Context, id, imageURL string) error {
	return r.updateColumns(ctx, id, map[string]interface{}{"image_url": imageURL}, "set book image failed")
}

// updateColumns maps zero affected rows to ErrBookNotFound. MySQL reports
// zero rows when the values are unchanged, so that case is told apart with
// an existence check.
func (r *bookRepository) updateColumns(ctx context.Context, id string, updates map[string]interface{}, msg string) error {
	result := r.getDB(ctx).Model(&BookModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return apperrors.WrapCode(result.Error, apperrors.ErrCodeDatabaseError, msg)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.getDB(ctx).Model(&BookModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, msg)
	}
	if count == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// ReplaceAll runs in one transaction, so readers never see a half-seeded table.
func (r *bookRepository) ReplaceAll(ctx context.Context, books []*book.Book) error {
	err := r.txm.Transaction(ctx, func(ctx context.Context) error {
		db := r.getDB(ctx)
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&BookModel{}).Error; err != nil {
			return err
		}
		if len(books) == 0 {
			return nil
		}
		models := make([]*BookModel, len(books))
		for i, b := range books {
			models[i] = toBookModel(b)
		}
		return db.CreateInBatches(models, 100).Error
	})
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "replace books failed")
	}
	return nil
}

// =========================================
// conversion
// =========================================

func patchColumns(p book.Patch) map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Author != nil {
		updates["author"] = *p.Author
	}
	if p.Category != nil {
		updates["category"] = *p.Category
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Price != nil {
		updates["price"] = *p.Price
	}
	if p.AmazonLink != nil {
		updates["amazon_link"] = *p.AmazonLink
	}
	if p.Featured != nil {
		updates["featured"] = *p.Featured
	}
	return updates
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Category:    b.Category,
		Description: b.Description,
		Price:       b.Price,
		ImageURL:    b.ImageURL,
		AmazonLink:  b.AmazonLink,
		Featured:    b.Featured,
	}
}

func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:          m.ID,
		Title:       m.Title,
		Author:      m.Author,
		Category:    m.Category,
		Description: m.Description,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		AmazonLink:  m.AmazonLink,
		Featured:    m.Featured,
	}
}
