package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"siteapi/internal/model"
	"siteapi/internal/repository"
	"siteapi/internal/storage"
)

var (
	ErrIDRequired          = errors.New("id is required")
	ErrNotFound            = errors.New("record not found")
	ErrNoFiles             = errors.New("no files uploaded")
	ErrTooManyFiles        = errors.New("too many files in one upload")
	ErrFileTooLarge        = errors.New("file exceeds the size limit")
	ErrUnsupportedFileType = errors.New("only image files are allowed")
	ErrStorageWrite        = errors.New("upload to storage")
)

// allowedImageTypes is the MIME allowlist for gallery uploads.
// image/jpg is not a registered type but browsers still send it.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// UploadFile is one file of an upload batch as received from the HTTP layer.
type UploadFile struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// UploadLimits bounds a single upload call.
type UploadLimits struct {
	MaxFiles        int
	MaxFileSizeByte int64
}

// GalleryService defines the use cases for the image gallery.
type GalleryService interface {
	// List returns all image records, newest first.
	List(ctx context.Context) ([]model.Image, error)

	// Upload stores a batch of image files and their metadata records with
	// all-or-nothing semantics: any failure rolls back every object already
	// written to storage and commits no metadata rows.
	Upload(ctx context.Context, files []UploadFile) ([]model.Image, error)

	// Delete removes an image by record ID: the storage object best-effort,
	// the metadata record always.
	Delete(ctx context.Context, id string) error
}

// galleryService is a concrete implementation of GalleryService.
type galleryService struct {
	store  storage.Storage
	repo   repository.GalleryRepository
	limits UploadLimits
}

// NewGalleryService constructs a new GalleryService.
func NewGalleryService(store storage.Storage, repo repository.GalleryRepository, limits UploadLimits) GalleryService {
	if limits.MaxFiles <= 0 {
		limits.MaxFiles = 10
	}
	if limits.MaxFileSizeByte <= 0 {
		limits.MaxFileSizeByte = 5 << 20
	}
	return &galleryService{store: store, repo: repo, limits: limits}
}

// List returns all gallery records newest-first.
func (s *galleryService) List(ctx context.Context) ([]model.Image, error) {
	return s.repo.List(ctx)
}

func (s *galleryService) Upload(ctx context.Context, files []UploadFile) ([]model.Image, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if len(files) > s.limits.MaxFiles {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrTooManyFiles, len(files), s.limits.MaxFiles)
	}
	// Validate the whole batch before touching storage.
	for _, f := range files {
		if !allowedImageTypes[f.ContentType] {
			return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedFileType, f.Filename, f.ContentType)
		}
		if f.Size > s.limits.MaxFileSizeByte {
			return nil, fmt.Errorf("%w: %s (%d bytes)", ErrFileTooLarge, f.Filename, f.Size)
		}
	}

	// Stage every file to storage first, remembering handles for rollback.
	staged := make([]storage.StoredObject, 0, len(files))
	for _, f := range files {
		key := "gallery/" + uuid.New().String() + filepath.Ext(f.Filename)
		obj, err := s.store.Put(ctx, key, f.Reader, storage.PutOptions{
			Size:        f.Size,
			ContentType: f.ContentType,
			Metadata: map[string]string{
				"original-filename": f.Filename,
			},
		})
		if err != nil {
			s.rollbackStaged(ctx, staged)
			return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
		}
		staged = append(staged, obj)
	}

	now := time.Now().UTC()
	imgs := make([]model.Image, 0, len(files))
	for _, obj := range staged {
		imgs = append(imgs, model.Image{
			ID:            uuid.New().String(),
			URL:           obj.URL,
			StorageHandle: obj.Handle,
			CreatedAt:     now,
		})
	}

	stored, err := s.repo.CreateBatch(ctx, imgs)
	if err != nil {
		s.rollbackStaged(ctx, staged)
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// rollbackStaged deletes objects written for an aborted batch. It runs on a
// context detached from the request so a client disconnect mid-upload cannot
// strand blobs that were already staged.
func (s *galleryService) rollbackStaged(ctx context.Context, staged []storage.StoredObject) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()
	for _, obj := range staged {
		if err := s.store.Delete(cleanupCtx, obj.Handle); err != nil {
			log.Printf("gallery: rollback delete failed for %s: %v", obj.Handle, err)
		}
	}
}

// Delete removes the storage object, then the record. A storage-side failure
// is logged and swallowed so drifted storage state can never make a metadata
// row permanently undeletable.
func (s *galleryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	img, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if img.StorageHandle != "" {
		if err := s.store.Delete(ctx, img.StorageHandle); err != nil {
			log.Printf("gallery: storage delete failed for %s: %v", img.StorageHandle, err)
		}
	}
	return s.repo.Delete(ctx, id)
}
