// Package blobstore manages the on-disk profile image files.
//
// Filenames are always server-generated (32 random bytes, hex) with an
// extension derived from the validated content type; client-supplied
// names are never used. Remove is advisory: it hardens the stored path
// down to a bare filename inside the store's directory and swallows
// deletion failures, so a corrupted or malicious pointer can never reach
// outside the directory and a missing file never fails a request.
package blobstore

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrUnsupportedType is returned by Save for content types outside the
// image allow-list.
var ErrUnsupportedType = errors.New("unsupported image type")

// extByType maps allowed image content types to stored extensions.
var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Store writes and removes image files under one fixed directory.
type Store struct {
	dir       string // filesystem directory holding the files
	urlPrefix string // root-relative prefix stored in profileImage, e.g. "/profile-images"
}

// New builds a Store over dir, returning paths under urlPrefix.
func New(dir, urlPrefix string) *Store {
	return &Store{dir: dir, urlPrefix: urlPrefix}
}

// Save validates contentType, writes r to a freshly named file, and
// returns the root-relative path to store in profileImage.
func (s *Store) Save(r io.Reader, contentType string) (string, error) {
	ext, ok := extByType[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}

	name, err := randomName(ext)
	if err != nil {
		return "", fmt.Errorf("generate filename: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close image file: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

// Remove deletes the file referenced by relPath. Only the base filename
// is honored; any directory component in a stored pointer is ignored so
// traversal segments can never escape the store's directory. A missing
// file is not an error. Callers treat any returned error as advisory.
func (s *Store) Remove(relPath string) error {
	name := safeBaseName(relPath)
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Dir returns the directory files are stored in (used to mount the
// static file server and by tests).
func (s *Store) Dir() string { return s.dir }

// safeBaseName reduces a stored pointer to a bare filename, returning
// "" for anything that is not one (empty, ".", "..").
func safeBaseName(p string) string {
	if p == "" {
		return ""
	}
	name := filepath.Base(filepath.ToSlash(p))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) || name == "/" {
		return ""
	}
	return name
}

func randomName(ext string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b) + ext, nil
}
