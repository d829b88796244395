package router

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/literary-depot/internal/application/book"
	"github.com/xiebiao/literary-depot/internal/domain/book"
	"github.com/xiebiao/literary-depot/internal/infrastructure/config"
	"github.com/xiebiao/literary-depot/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/literary-depot/internal/infrastructure/storage"
	"github.com/xiebiao/literary-depot/internal/interface/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine *gin.Engine
	fs     afero.Fs
	seed   *appbook.SeedCatalogUseCase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	fs := afero.NewMemMapFs()
	covers, err := storage.NewCoverStoreFs(fs, "/uploads")
	require.NoError(t, err)

	svc := book.NewService(memory.NewBookRepository(), covers)
	h := Handlers{
		Book: handler.NewBookHandler(
			appbook.NewListBooksUseCase(svc),
			appbook.NewListFeaturedBooksUseCase(svc),
			appbook.NewGetBookUseCase(svc),
			appbook.NewListCategoriesUseCase(svc),
			appbook.NewCreateBookUseCase(svc),
			appbook.NewUpdateBookUseCase(svc),
			appbook.NewUploadCoverUseCase(svc),
		),
		Health: handler.NewHealthHandler(),
	}

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: gin.TestMode, MaxMultipartMem: 8 << 20},
		Uploads: config.UploadsConfig{Dir: "/uploads", Route: "/uploads"},
		CORS:    config.CORSConfig{AllowOrigins: []string{"*"}, AllowCredentials: true},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	return &testServer{
		engine: New(cfg, zap.NewNop(), h, covers.FileSystem()),
		fs:     fs,
		seed:   appbook.NewSeedCatalogUseCase(svc, zap.NewNop()),
	}
}

func (s *testServer) do(method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) upload(t *testing.T, id, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/books/"+id+"/upload-cover", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type validationBody struct {
	Detail []fieldError `json:"detail"`
}

const newBookJSON = `{
	"title": "The Quiet Ledger",
	"author": "Ann Reyes",
	"category": "Business & Self-Help",
	"description": "Bookkeeping for people who hate bookkeeping.",
	"price": 19.5,
	"amazon_link": "https://www.amazon.com/s?k=quiet+ledger"
}`

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","message":"Literary Depot API is running"}`, w.Body.String())
}

func TestCatalogReads(t *testing.T) {
	s := newTestServer(t)
	n, err := s.seed.Execute(context.Background())
	require.NoError(t, err)

	t.Run("empty filter lists everything", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/books", "")
		require.Equal(t, http.StatusOK, w.Code)
		books := decode[[]appbook.BookResult](t, w)
		assert.Len(t, books, n)
	})

	t.Run("category and featured combine", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/books?category=Young+Readers&featured=yes", "")
		require.Equal(t, http.StatusOK, w.Code)
		books := decode[[]appbook.BookResult](t, w)
		require.NotEmpty(t, books)
		for _, b := range books {
			assert.Equal(t, "Young Readers", b.Category)
			assert.True(t, b.Featured)
		}
	})

	t.Run("unknown category is an empty list", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/books?category=Poetry", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("malformed featured flag", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/books?featured=maybe", "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decode[validationBody](t, w)
		require.Len(t, body.Detail, 1)
		assert.Equal(t, []string{"query", "featured"}, body.Detail[0].Loc)
	})

	t.Run("featured books", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/featured-books", "")
		require.Equal(t, http.StatusOK, w.Code)
		books := decode[[]appbook.BookResult](t, w)
		assert.Len(t, books, 4)
	})

	t.Run("categories", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/categories", "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[appbook.CategoriesResult](t, w)
		assert.ElementsMatch(t, []string{
			"Young Readers", "Business & Self-Help", "Action & Thriller", "Legal Information",
		}, res.Categories)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/books/does-not-exist", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Book not found"}`, w.Body.String())
	})
}

func TestEmptyCatalog(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"categories":[]}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/featured-books", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCreateUpdateRoundTrip(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/books", newBookJSON)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[appbook.BookResult](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, book.DefaultPlaceholderImageURL, created.ImageURL)
	assert.False(t, created.Featured)

	w = s.do(http.MethodGet, "/api/books/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[appbook.BookResult](t, w))

	w = s.do(http.MethodPut, "/api/books/"+created.ID, `{"price": 15, "featured": true, "title": null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[appbook.BookResult](t, w)
	want := created
	want.Price = 15.0
	want.Featured = true
	assert.Equal(t, want, updated)

	w = s.do(http.MethodPut, "/api/books/"+created.ID, `{"price": 21.25}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	priced := decode[appbook.BookResult](t, w)
	want.Price = 21.25
	assert.Equal(t, want, priced)
	updated = priced

	w = s.do(http.MethodPut, "/api/books/"+created.ID, `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, updated, decode[appbook.BookResult](t, w))

	w = s.do(http.MethodPut, "/api/books/nope", `{"price": 1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/categories", "")
	assert.JSONEq(t, `{"categories":["Business & Self-Help"]}`, w.Body.String())
}

func TestCreateValidation(t *testing.T) {
	s := newTestServer(t)

	t.Run("missing fields", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/books", `{"title":"x","author":"y","category":"z","description":""}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decode[validationBody](t, w)
		require.Len(t, body.Detail, 2)
		assert.Equal(t, []string{"body", "price"}, body.Detail[0].Loc)
		assert.Equal(t, []string{"body", "amazon_link"}, body.Detail[1].Loc)
		assert.Equal(t, "value_error.missing", body.Detail[0].Type)
	})

	t.Run("wrong type", func(t *testing.T) {
		body := strings.Replace(newBookJSON, `"price": 19.5`, `"price": "cheap"`, 1)
		w := s.do(http.MethodPost, "/api/books", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		detail := decode[validationBody](t, w)
		require.Len(t, detail.Detail, 1)
		assert.Equal(t, []string{"body", "price"}, detail.Detail[0].Loc)
	})

	t.Run("null featured", func(t *testing.T) {
		body := strings.Replace(newBookJSON, "{", `{"featured": null,`, 1)
		w := s.do(http.MethodPost, "/api/books", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		detail := decode[validationBody](t, w)
		require.Len(t, detail.Detail, 1)
		assert.Equal(t, []string{"body", "featured"}, detail.Detail[0].Loc)
		assert.Equal(t, "type_error.none.not_allowed", detail.Detail[0].Type)
	})

	t.Run("nothing stored", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/books", "")
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestUploadCover(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodPost, "/api/books", newBookJSON)
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[appbook.BookResult](t, w)

	w = s.upload(t, created.ID, "cover.JPG", "jpeg-bytes")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[appbook.UploadCoverResponse](t, w)
	assert.Equal(t, appbook.UploadCoverMessage, res.Message)
	assert.Equal(t, "/uploads/"+created.ID+".JPG", res.ImageURL)

	data, err := afero.ReadFile(s.fs, "/uploads/"+created.ID+".JPG")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	w = s.do(http.MethodGet, res.ImageURL, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg-bytes", w.Body.String())

	w = s.do(http.MethodGet, "/api/books/"+created.ID, "")
	assert.Equal(t, res.ImageURL, decode[appbook.BookResult](t, w).ImageURL)

	t.Run("new extension repoints image_url and keeps the old file", func(t *testing.T) {
		w := s.upload(t, created.ID, "cover.png", "png-bytes")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.upload(t, created.ID, "new.jpg", "jpg-bytes")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		res := decode[appbook.UploadCoverResponse](t, w)
		assert.Equal(t, "/uploads/"+created.ID+".jpg", res.ImageURL)

		for name, content := range map[string]string{
			created.ID + ".png": "png-bytes",
			created.ID + ".jpg": "jpg-bytes",
		} {
			data, err := afero.ReadFile(s.fs, "/uploads/"+name)
			require.NoError(t, err, name)
			assert.Equal(t, content, string(data))
		}

		w = s.do(http.MethodGet, "/api/books/"+created.ID, "")
		assert.Equal(t, res.ImageURL, decode[appbook.BookResult](t, w).ImageURL)
	})

	t.Run("dotless filename becomes the extension", func(t *testing.T) {
		w := s.upload(t, created.ID, "cover", "raw")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "/uploads/"+created.ID+".cover", decode[appbook.UploadCoverResponse](t, w).ImageURL)
	})

	t.Run("unknown book writes nothing", func(t *testing.T) {
		w := s.upload(t, "ghost", "a.png", "x")
		assert.Equal(t, http.StatusNotFound, w.Code)
		exists, _ := afero.Exists(s.fs, "/uploads/ghost.png")
		assert.False(t, exists)
	})

	t.Run("file part missing", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("note", "no file"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/books/"+created.ID+"/upload-cover", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decode[validationBody](t, w)
		require.Len(t, body.Detail, 1)
		assert.Equal(t, []string{"body", "file"}, body.Detail[0].Loc)
	})

	t.Run("missing cover file is 404", func(t *testing.T) {
		w := s.do(http.MethodGet, "/uploads/nothing.png", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouting(t *testing.T) {
	s := newTestServer(t)

	t.Run("unknown route", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/authors", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String())
	})

	t.Run("unsupported method", func(t *testing.T) {
		w := s.do(http.MethodDelete, "/api/books/abc", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, w.Body.String())
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
		req.Header.Set("Origin", "https://store.example")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://store.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		w := s.do(http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
