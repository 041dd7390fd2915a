// Package media stores uploaded story images on the local filesystem and
// builds the host-relative URLs they are served back under.
package media

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxUploadSize = 10 * 1024 * 1024 // 10MB

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidFile = errors.New("invalid file")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type Store struct {
	dir     string
	baseURL string
}

func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Dir returns the directory uploads are written to, for static serving.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) PlaceholderURL() string {
	return s.baseURL + "/assets/placeholder.png"
}

// Save writes the uploaded content under a fresh name, keeping the
// original extension, and returns the retrieval URL.
func (s *Store) Save(r io.Reader, filename string, size int64) (string, error) {
	if size > MaxUploadSize {
		return "", fmt.Errorf("%w: size %d exceeds %d bytes", ErrInvalidFile, size, MaxUploadSize)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: extension %q not allowed", ErrInvalidFile, ext)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, io.LimitReader(r, MaxUploadSize)); err != nil {
		_ = dst.Close()
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}
	return s.baseURL + "/uploads/" + name, nil
}

// Delete removes the blob an image URL points at. Only the basename is
// honored, so a crafted URL cannot reach outside the uploads directory.
func (s *Store) Delete(imageURL string) error {
	name, err := basename(imageURL)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func basename(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" || name == ".." {
		return "", fmt.Errorf("%w: no file name in %q", ErrInvalidFile, imageURL)
	}
	return name, nil
}
