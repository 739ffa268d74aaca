package domain

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadBytes caps a single product image at 5 MB.
const MaxUploadBytes = 5 << 20

var (
	ErrNotAnImage = errors.New("file is not an image")
	ErrTooLarge   = errors.New("file exceeds the 5 MB upload limit")
)

// ValidateUpload rejects non-image and oversized files before any bytes
// leave the process.
func ValidateUpload(contentType string, size int64) error {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return ErrNotAnImage
	}
	if size > MaxUploadBytes {
		return ErrTooLarge
	}
	return nil
}

// ObjectName returns a randomized object name preserving the original file
// extension, so two uploads of "photo.jpg" never collide.
func ObjectName(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return uuid.NewString() + ext
}
