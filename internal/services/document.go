package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"basic-gui-threads/internal/models"

	"fyne.io/fyne/v2"
)

// ErrNotRegularFile is returned when the selected path is a directory or device
var ErrNotRegularFile = errors.New("not a regular file")

// DocumentService performs one-shot reads of text files.
// No file handle outlives a call.
type DocumentService struct {
	repository *models.DocumentRepository
}

// NewDocumentService creates a new document service
func NewDocumentService(repo *models.DocumentRepository) *DocumentService {
	return &DocumentService{repository: repo}
}

// Load reads the whole file at path. The repository is only updated on success.
func (ds *DocumentService) Load(ctx context.Context, path string) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return models.Document{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.Document{}, err
	}
	if !info.Mode().IsRegular() {
		return models.Document{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotRegularFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Document{}, err
	}

	return ds.store(filepath.Base(path), path, data), nil
}

// LoadURI reads everything from a reader obtained through a file picker
// and closes it.
func (ds *DocumentService) LoadURI(ctx context.Context, reader fyne.URIReadCloser) (models.Document, error) {
	defer reader.Close()

	if err := ctx.Err(); err != nil {
		return models.Document{}, err
	}

	uri := reader.URI()
	data, err := io.ReadAll(reader)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to read %s: %w", uri.Name(), err)
	}

	return ds.store(uri.Name(), uri.Path(), data), nil
}

func (ds *DocumentService) store(name, path string, data []byte) models.Document {
	doc := models.Document{
		Name:     name,
		Path:     path,
		Content:  string(data),
		Size:     int64(len(data)),
		LoadTime: time.Now(),
	}
	ds.repository.Set(doc)
	return doc
}

// Close forgets the current document. Nothing on disk is touched.
func (ds *DocumentService) Close() {
	ds.repository.Clear()
}
