package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// ImageStore persists an uploaded report photo and returns its reference
type ImageStore interface {
	Save(ctx context.Context, header *multipart.FileHeader) (string, error)
}

var AllowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

const MaxImageSize = int64(10 * 1024 * 1024)

// ValidationError is returned for uploads the service refuses to store
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ValidateImage checks size and extension of an uploaded image.
func ValidateImage(header *multipart.FileHeader) error {
	if header.Size > MaxImageSize {
		return &ValidationError{Reason: fmt.Sprintf("image file size exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024))}
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	for _, allowed := range AllowedImageTypes {
		if ext == allowed {
			return nil
		}
	}
	return &ValidationError{Reason: fmt.Sprintf("invalid image file type: %q. Allowed types: %s", ext, strings.Join(AllowedImageTypes, ", "))}
}

var randReader io.Reader = rand.Reader

// randString returns n random hex characters.
func randString(n int) (string, error) {
	b := make([]byte, (n+1)/2)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return "", fmt.Errorf("generate file name: %w", err)
	}
	return hex.EncodeToString(b)[:n], nil
}
