package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore writes uploads below Dir and serves them from URLPrefix
type LocalStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{Dir: dir, URLPrefix: "/uploads"}
}

func (s *LocalStore) Save(_ context.Context, header *multipart.FileHeader) (string, error) {
	if err := ValidateImage(header); err != nil {
		return "", err
	}

	suffix, err := randString(6)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := fmt.Sprintf("report_%d_%s%s", time.Now().UnixNano(), suffix, ext)

	if err := copyFile(header, filepath.Join(s.Dir, name)); err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return s.URLPrefix + "/" + name, nil
}

func copyFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
