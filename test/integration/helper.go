//go:build integration

// Package integration exercises a running server over real HTTP.
//
//	LITERARY_DEPOT_BASE_URL=http://localhost:8001 go test -tags integration ./test/integration/...
//
// The server must have been started with catalog.seed_on_startup enabled.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	defaultBaseURL = "http://localhost:8001"
	// Timeout per HTTP request
	Timeout = 10 * time.Second
)

// BaseURL is the server root, without the /api prefix.
var BaseURL = func() string {
	if u := os.Getenv("LITERARY_DEPOT_BASE_URL"); u != "" {
		return u
	}
	return defaultBaseURL
}()

// Book mirrors the public record shape.
type Book struct {
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

// Response is a raw reply; Decode parses the body.
type Response struct {
	Status int
	Body   []byte
}

func (r *Response) Decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), "decode response: %s", string(r.Body))
}

var client = &http.Client{Timeout: Timeout}

func do(t *testing.T, req *http.Request) *Response {
	t.Helper()

	resp, err := client.Do(req)
	require.NoError(t, err, "send request")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "read response body")

	return &Response{Status: resp.StatusCode, Body: body}
}

// GetJSON issues a GET against path (e.g. "/api/books").
func GetJSON(t *testing.T, path string) *Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, BaseURL+path, nil)
	require.NoError(t, err)
	return do(t, req)
}

// SendJSON issues a request with a JSON body.
func SendJSON(t *testing.T, method, path string, data interface{}) *Response {
	t.Helper()
	payload, err := json.Marshal(data)
	require.NoError(t, err)

	req, err := http.NewRequest(method, BaseURL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return do(t, req)
}

// UploadFile posts content as the multipart "file" part.
func UploadFile(t *testing.T, path, filename string, content []byte) *Response {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, BaseURL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return do(t, req)
}

// CreateTestBook creates a uniquely titled book and returns it.
func CreateTestBook(t *testing.T, category string) Book {
	t.Helper()

	resp := SendJSON(t, http.MethodPost, "/api/books", map[string]interface{}{
		"title":       fmt.Sprintf("Integration Book %d", time.Now().UnixNano()),
		"author":      "Integration Author",
		"category":    category,
		"description": "created by the integration suite",
		"price":       9.99,
		"amazon_link": "https://www.amazon.com/s?k=integration",
	})
	require.Equal(t, http.StatusOK, resp.Status, "create book: %s", string(resp.Body))

	var b Book
	resp.Decode(t, &b)
	return b
}
