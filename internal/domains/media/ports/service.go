package ports

import (
	"context"
	"io"
)

// File is one upload candidate as received from the transport layer.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// FileResult reports the outcome for one file. Err is nil on success.
type FileResult struct {
	Name string
	URL  string
	Err  error
}

// Outcome summarizes a batch upload. One bad file never aborts the rest, so
// callers surface Results individually and report Succeeded overall.
type Outcome struct {
	Results   []FileResult
	Succeeded int
}

// Service exposes the media bounded context use cases to adapters.
type Service interface {
	UploadImages(ctx context.Context, files []File) Outcome
}
