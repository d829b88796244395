package book

import (
	"strings"
)

// Book is the catalog record and the only aggregate of the service.
// ID is minted by the service and never changes; every other field is
// overwritten wholesale. Price is not range-checked: negative prices are
// accepted and stored as given.
type Book struct {
	ID          string
	Title       string
	Author      string
	Category    string
	Description string
	Price       float64
	ImageURL    string
	AmazonLink  string
	Featured    bool
}

// Draft holds the caller-supplied fields of a new book.
// ID and ImageURL are not part of it: both are assigned by the service.
type Draft struct {
	Title       string
	Author      string
	Category    string
	Description string
	Price       float64
	AmazonLink  string
	Featured    bool
}

// NewBook builds a book from a draft.
func NewBook(id string, d Draft, imageURL string) *Book {
	return &Book{
		ID:          id,
		Title:       d.Title,
		Author:      d.Author,
		Category:    d.Category,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    imageURL,
		AmazonLink:  d.AmazonLink,
		Featured:    d.Featured,
	}
}

// Patch is a partial update. Nil fields are left untouched.
// ImageURL is absent: it only changes through a cover upload.
type Patch struct {
	Title       *string
	Author      *string
	Category    *string
	Description *string
	Price       *float64
	AmazonLink  *string
	Featured    *bool
}

// IsEmpty reports whether the patch sets no field.
func (p Patch) IsEmpty() bool {
	return p.Title == nil &&
		p.Author == nil &&
		p.Category == nil &&
		p.Description == nil &&
		p.Price == nil &&
		p.AmazonLink == nil &&
		p.Featured == nil
}

// Apply overwrites the fields set in p.
func (b *Book) Apply(p Patch) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.AmazonLink != nil {
		b.AmazonLink = *p.AmazonLink
	}
	if p.Featured != nil {
		b.Featured = *p.Featured
	}
}

// Clone returns a copy that shares nothing with b.
func (b *Book) Clone() *Book {
	c := *b
	return &c
}

// Filter selects books for listing. All set conditions must hold.
// An empty Category places no constraint.
type Filter struct {
	Category string
	Featured *bool
}

// Matches reports whether b satisfies every set condition.
// Category comparison is exact and case-sensitive.
func (f Filter) Matches(b *Book) bool {
	if f.Category != "" && b.Category != f.Category {
		return false
	}
	if f.Featured != nil && b.Featured != *f.Featured {
		return false
	}
	return true
}

// CoverFilename derives the stored name of an uploaded cover:
// "<id>.<ext>", where ext is everything after the last "." of the uploaded
// filename. A filename without "." is used whole as the extension, so
// "cover" becomes "<id>.cover". Names that would leave the upload directory
// are rejected.
func CoverFilename(id, uploaded string) (string, error) {
	ext := uploaded
	if i := strings.LastIndex(uploaded, "."); i >= 0 {
		ext = uploaded[i+1:]
	}
	if strings.ContainsAny(ext, `/\`) || strings.ContainsRune(ext, 0) {
		return "", ErrInvalidCoverFilename
	}
	return id + "." + ext, nil
}
