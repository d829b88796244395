package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xiebiao/literary-depot/internal/domain/book"
	apperrors "github.com/xiebiao/literary-depot/pkg/errors"
)

// bookDocument is the stored shape. Books are addressed by the string "id"
// field; the server-assigned _id is never read back.
type bookDocument struct {
	ID          string  `bson:"id"`
	Title       string  `bson:"title"`
	Author      string  `bson:"author"`
	Category    string  `bson:"category"`
	Description string  `bson:"description"`
	Price       float64 `bson:"price"`
	ImageURL    string  `bson:"image_url"`
	AmazonLink  string  `bson:"amazon_link"`
	Featured    bool    `bson:"featured"`
}

func toDocument(b *book.Book) *bookDocument {
	return &bookDocument{
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

func (d *bookDocument) toEntity() *book.Book {
	return &book.Book{
		ID:          d.ID,
		Title:       d.Title,
		Author:      d.Author,
		Category:    d.Category,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
		AmazonLink:  d.AmazonLink,
		Featured:    d.Featured,
	}
}

var withoutObjectID = bson.D{{Key: "_id", Value: 0}}

// BookRepository stores books in a MongoDB collection.
type BookRepository struct {
	coll *mongo.Collection
}

// NewBookRepository wraps coll.
func NewBookRepository(coll *mongo.Collection) *BookRepository {
	return &BookRepository{coll: coll}
}

var _ book.Repository = (*BookRepository)(nil)

// EnsureIndexes creates the unique index on id. Safe to call on every start.
func (r *BookRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("id_unique"),
	})
	if err != nil {
		return dbError(err, "create book indexes failed")
	}
	return nil
}

func filterDocument(f book.Filter) bson.D {
	query := bson.D{}
	if f.Category != "" {
		query = append(query, bson.E{Key: "category", Value: f.Category})
	}
	if f.Featured != nil {
		query = append(query, bson.E{Key: "featured", Value: *f.Featured})
	}
	return query
}

func (r *BookRepository) List(ctx context.Context, f book.Filter) ([]*book.Book, error) {
	cur, err := r.coll.Find(ctx, filterDocument(f), options.Find().SetProjection(withoutObjectID))
	if err != nil {
		return nil, dbError(err, "list books failed")
	}

	var docs []*bookDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, dbError(err, "decode books failed")
	}

	books := make([]*book.Book, len(docs))
	for i, d := range docs {
		books[i] = d.toEntity()
	}
	return books, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var doc bookDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}, options.FindOne().SetProjection(withoutObjectID)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, book.ErrBookNotFound
		}
		return nil, dbError(err, "find book failed")
	}
	return doc.toEntity(), nil
}

func (r *BookRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "category", bson.D{})
	if err != nil {
		return nil, dbError(err, "list categories failed")
	}

	cats := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			cats = append(cats, s)
		}
	}
	return cats, nil
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) error {
	if _, err := r.coll.InsertOne(ctx, toDocument(b)); err != nil {
		return dbError(err, "create book failed")
	}
	return nil
}

// patchDocument turns the set fields of p into a $set document.
func patchDocument(p book.Patch) bson.D {
	set := bson.D{}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.Author != nil {
		set = append(set, bson.E{Key: "author", Value: *p.Author})
	}
	if p.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *p.Category})
	}
	if p.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *p.Description})
	}
	if p.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *p.Price})
	}
	if p.AmazonLink != nil {
		set = append(set, bson.E{Key: "amazon_link", Value: *p.AmazonLink})
	}
	if p.Featured != nil {
		set = append(set, bson.E{Key: "featured", Value: *p.Featured})
	}
	return set
}

func (r *BookRepository) Update(ctx context.Context, id string, p book.Patch) error {
	set := patchDocument(p)
	if len(set) == 0 {
		return nil
	}
	return r.set(ctx, id, set, "update book failed")
}

func (r *BookRepository) SetImageURL(ctx context.Context, id, imageURL string) error {
	return r.set(ctx, id, bson.D{{Key: "image_url", Value: imageURL}}, "set book image failed")
}

func (r *BookRepository) set(ctx context.Context, id string, set bson.D, msg string) error {
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return dbError(err, msg)
	}
	if res.MatchedCount == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// ReplaceAll deletes every document and inserts books.
// The two steps are not atomic; readers may briefly see an empty collection.
func (r *BookRepository) ReplaceAll(ctx context.Context, books []*book.Book) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return dbError(err, "clear books failed")
	}
	if len(books) == 0 {
		return nil
	}

	docs := make([]interface{}, len(books))
	for i, b := range books {
		docs[i] = toDocument(b)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return dbError(err, "insert books failed")
	}
	return nil
}

func dbError(err error, msg string) error {
	return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, msg)
}
