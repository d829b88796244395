package book

import (
	"context"
	"io"

	"github.com/xiebiao/literary-depot/internal/domain/book"
)

// UploadCoverMessage is the fixed confirmation text.
const UploadCoverMessage = "Cover uploaded successfully"

// UploadCoverUseCase stores a cover image for a book.
type UploadCoverUseCase struct {
	bookService book.Service
}

// NewUploadCoverUseCase creates the use case.
func NewUploadCoverUseCase(bookService book.Service) *UploadCoverUseCase {
	return &UploadCoverUseCase{
		bookService: bookService,
	}
}

// UploadCoverRequest carries the multipart part. Content is read to EOF.
type UploadCoverRequest struct {
	BookID   string
	Filename string
	Content  io.Reader
}

// UploadCoverResponse is returned on success.
type UploadCoverResponse struct {
	Message  string `json:"message" example:"Cover uploaded successfully"`
	ImageURL string `json:"image_url" example:"/uploads/6f1c2a8e-3b4d-4e5f-9a0b-1c2d3e4f5a6b.jpg"`
}

func (uc *UploadCoverUseCase) Execute(ctx context.Context, req UploadCoverRequest) (*UploadCoverResponse, error) {
	imageURL, err := uc.bookService.UploadCover(ctx, req.BookID, req.Filename, req.Content)
	if err != nil {
		return nil, err
	}
	return &UploadCoverResponse{
		Message:  UploadCoverMessage,
		ImageURL: imageURL,
	}, nil
}
