package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/literary-depot/internal/application/book"
	"github.com/xiebiao/literary-depot/internal/interface/http/dto"
	apperrors "github.com/xiebiao/literary-depot/pkg/errors"
	"github.com/xiebiao/literary-depot/pkg/response"
)

// BookHandler serves the catalog endpoints.
type BookHandler struct {
	listBooks      *appbook.ListBooksUseCase
	listFeatured   *appbook.ListFeaturedBooksUseCase
	getBook        *appbook.GetBookUseCase
	listCategories *appbook.ListCategoriesUseCase
	createBook     *appbook.CreateBookUseCase
	updateBook     *appbook.UpdateBookUseCase
	uploadCover    *appbook.UploadCoverUseCase
}

// NewBookHandler creates the handler.
func NewBookHandler(
	listBooks *appbook.ListBooksUseCase,
	listFeatured *appbook.ListFeaturedBooksUseCase,
	getBook *appbook.GetBookUseCase,
	listCategories *appbook.ListCategoriesUseCase,
	createBook *appbook.CreateBookUseCase,
	updateBook *appbook.UpdateBookUseCase,
	uploadCover *appbook.UploadCoverUseCase,
) *BookHandler {
	return &BookHandler{
		listBooks:      listBooks,
		listFeatured:   listFeatured,
		getBook:        getBook,
		listCategories: listCategories,
		createBook:     createBook,
		updateBook:     updateBook,
		uploadCover:    uploadCover,
	}
}

// ListBooks lists the catalog.
// @Summary      List books
// @Description  All books, optionally filtered by exact category and featured flag. Filters combine with AND.
// @Tags         books
// @Produce      json
// @Param        category  query     string  false  "exact category name"
// @Param        featured  query     bool    false  "featured flag (true/false/1/0/yes/no/on/off)"
// @Success      200       {array}   appbook.BookResult
// @Failure      422       {object}  response.ErrorBody  "malformed featured flag"
// @Router       /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var q dto.ListBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	req := appbook.ListBooksRequest{Category: q.Category}
	if raw, ok := c.GetQuery("featured"); ok {
		featured, valid := dto.ParseBool(raw)
		if !valid {
			response.Error(c, dto.InvalidBool("query", "featured"))
			return
		}
		req.Featured = &featured
	}

	books, err := h.listBooks.Execute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, books)
}

// ListFeatured lists featured books.
// @Summary      List featured books
// @Tags         books
// @Produce      json
// @Success      200  {array}  appbook.BookResult
// @Router       /api/featured-books [get]
func (h *BookHandler) ListFeatured(c *gin.Context) {
	books, err := h.listFeatured.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, books)
}

// GetBook returns one book.
// @Summary      Get a book
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "book id"
// @Success      200  {object}  appbook.BookResult
// @Failure      404  {object}  response.ErrorBody  "Book not found"
// @Router       /api/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	b, err := h.getBook.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, b)
}

// ListCategories returns the distinct categories.
// @Summary      List categories
// @Tags         books
// @Produce      json
// @Success      200  {object}  appbook.CategoriesResult
// @Router       /api/categories [get]
func (h *BookHandler) ListCategories(c *gin.Context) {
	res, err := h.listCategories.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// CreateBook adds a book.
// @Summary      Create a book
// @Description  The server assigns the id and a placeholder image_url. Duplicate titles are allowed.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateBookRequest  true  "book fields"
// @Success      200      {object}  appbook.BookResult
// @Failure      422      {object}  response.ErrorBody  "validation failed"
// @Router       /api/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	if req.Featured.Null {
		response.Error(c, dto.NullField("body", "featured"))
		return
	}

	b, err := h.createBook.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:       *req.Title,
		Author:      *req.Author,
		Category:    *req.Category,
		Description: *req.Description,
		Price:       *req.Price,
		AmazonLink:  *req.AmazonLink,
		Featured:    req.Featured.Value,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, b)
}

// UpdateBook applies a partial update.
// @Summary      Update a book
// @Description  Only non-null fields are changed. An empty object returns the record unchanged.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "book id"
// @Param        request  body      dto.UpdateBookRequest  true  "fields to change"
// @Success      200      {object}  appbook.BookResult
// @Failure      404      {object}  response.ErrorBody  "Book not found"
// @Failure      422      {object}  response.ErrorBody  "validation failed"
// @Router       /api/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	b, err := h.updateBook.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:          c.Param("id"),
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		AmazonLink:  req.AmazonLink,
		Featured:    req.Featured,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, b)
}

// UploadCover stores a cover image.
// @Summary      Upload a cover image
// @Description  Stored as <id>.<ext> under the uploads directory, replacing any previous file with that name.
// @Tags         books
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "book id"
// @Param        file  formData  file    true  "image file"
// @Success      200   {object}  appbook.UploadCoverResponse
// @Failure      404   {object}  response.ErrorBody  "Book not found"
// @Failure      422   {object}  response.ErrorBody  "file missing"
// @Router       /api/books/{id}/upload-cover [post]
func (h *BookHandler) UploadCover(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			response.Error(c, dto.MissingField("body", "file"))
			return
		}
		response.Error(c, apperrors.WrapCode(err, apperrors.ErrCodeBindError, "malformed multipart body"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error(c, apperrors.WrapCode(err, apperrors.ErrCodeStorageError, "open uploaded file failed"))
		return
	}
	defer f.Close()

	res, err := h.uploadCover.Execute(c.Request.Context(), appbook.UploadCoverRequest{
		BookID:   c.Param("id"),
		Filename: fh.Filename,
		Content:  f,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
