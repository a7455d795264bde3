package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// localDiskStorage implements the Storage port on the local filesystem.
// Files land under a single upload directory which the HTTP layer serves
// read-only at /uploads; URLs are built from the server's public base URL.
type localDiskStorage struct {
	dir     string
	baseURL string
}

// NewLocalDisk prepares the upload directory and returns a disk-backed Storage.
func NewLocalDisk(dir, baseURL string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localDiskStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put writes the object to <dir>/<key>. Keys come from the service layer and
// are UUID-based, so collisions indicate a caller bug and fail with O_EXCL.
func (l *localDiskStorage) Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (StoredObject, error) {
	cleaned, err := l.safePath(key)
	if err != nil {
		return StoredObject{}, err
	}

	if err := os.MkdirAll(filepath.Dir(cleaned), 0o755); err != nil {
		return StoredObject{}, fmt.Errorf("create parent dir: %w", err)
	}

	f, err := os.OpenFile(cleaned, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return StoredObject{}, fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(cleaned)
		return StoredObject{}, fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(cleaned)
		return StoredObject{}, fmt.Errorf("close file: %w", err)
	}

	return StoredObject{
		URL:    l.baseURL + "/uploads/" + filepath.ToSlash(key),
		Handle: key,
	}, nil
}

// Delete removes the file a previous Put created. Deleting an already
// missing file is not an error.
func (l *localDiskStorage) Delete(ctx context.Context, handle string) error {
	cleaned, err := l.safePath(handle)
	if err != nil {
		return err
	}
	if err := os.Remove(cleaned); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// safePath resolves key inside the upload dir and rejects traversal outside it.
func (l *localDiskStorage) safePath(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("object key is required")
	}
	cleaned := filepath.Join(l.dir, filepath.FromSlash(key))
	rel, err := filepath.Rel(l.dir, cleaned)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return cleaned, nil
}
