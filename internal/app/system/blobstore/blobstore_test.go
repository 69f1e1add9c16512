package blobstore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dalemusser/profilehub/internal/app/system/blobstore"
)

func TestSave_WritesFileWithMappedExtension(t *testing.T) {
	tests := []struct {
		contentType string
		wantExt     string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/gif", ".gif"},
		{"image/webp", ".webp"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			dir := t.TempDir()
			store := blobstore.New(dir, "/profile-images")

			path, err := store.Save(strings.NewReader("image-bytes"), tt.contentType)
			if err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			if !strings.HasPrefix(path, "/profile-images/") {
				t.Errorf("path %q not under /profile-images/", path)
			}
			if !strings.HasSuffix(path, tt.wantExt) {
				t.Errorf("path %q does not end in %s", path, tt.wantExt)
			}

			name := strings.TrimPrefix(path, "/profile-images/")
			// 32 random bytes hex-encoded plus extension
			if got := len(name) - len(tt.wantExt); got != 64 {
				t.Errorf("filename length: got %d hex chars, want 64", got)
			}

			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("stored file not readable: %v", err)
			}
			if string(data) != "image-bytes" {
				t.Errorf("stored bytes: got %q", data)
			}
		})
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "profile-images")
	store := blobstore.New(dir, "/profile-images")

	if _, err := store.Save(strings.NewReader("x"), "image/png"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("upload directory not created: %v", err)
	}
}

func TestSave_RejectsUnsupportedTypes(t *testing.T) {
	dir := t.TempDir()
	store := blobstore.New(dir, "/profile-images")

	for _, ct := range []string{"text/plain", "application/pdf", "image/svg+xml", ""} {
		t.Run(ct, func(t *testing.T) {
			_, err := store.Save(strings.NewReader("x"), ct)
			if err != blobstore.ErrUnsupportedType {
				t.Errorf("err: got %v, want ErrUnsupportedType", err)
			}
		})
	}

	// Nothing may be written for rejected types.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty directory, found %d entries", len(entries))
	}
}

func TestSave_UniqueNames(t *testing.T) {
	store := blobstore.New(t.TempDir(), "/profile-images")

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		path, err := store.Save(strings.NewReader("x"), "image/png")
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if seen[path] {
			t.Fatalf("duplicate generated path %q", path)
		}
		seen[path] = true
	}
}

func TestRemove_DeletesStoredFile(t *testing.T) {
	dir := t.TempDir()
	store := blobstore.New(dir, "/profile-images")

	path, err := store.Save(strings.NewReader("x"), "image/jpeg")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	name := strings.TrimPrefix(path, "/profile-images/")
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Errorf("file still exists after Remove")
	}
}

func TestRemove_MissingFileIsNotAnError(t *testing.T) {
	store := blobstore.New(t.TempDir(), "/profile-images")
	if err := store.Remove("/profile-images/deadbeef.png"); err != nil {
		t.Errorf("Remove of missing file: got %v, want nil", err)
	}
}

func TestRemove_NeverEscapesDirectory(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "profile-images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	// A file outside the store directory that traversal would target.
	outside := filepath.Join(base, "passwd")
	if err := os.WriteFile(outside, []byte("sentinel"), 0o644); err != nil {
		t.Fatal(err)
	}
	// A file inside named like the traversal target's base.
	inside := filepath.Join(dir, "passwd")
	if err := os.WriteFile(inside, []byte("inside"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := blobstore.New(dir, "/profile-images")

	// Traversal collapses to the base filename inside the directory.
	if err := store.Remove("../../etc/passwd"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(outside); err != nil {
		t.Fatalf("file outside the store directory was touched: %v", err)
	}
	if _, err := os.Stat(inside); !os.IsNotExist(err) {
		t.Errorf("expected the in-directory file of the same base name to be removed")
	}

	// Degenerate pointers are a silent no-op.
	for _, p := range []string{"", ".", "..", "/", "/profile-images/"} {
		if err := store.Remove(p); err != nil {
			t.Errorf("Remove(%q): got %v, want nil", p, err)
		}
	}
}
