package services

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"basic-gui-threads/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// uriReader adapts an io.Reader to fyne.URIReadCloser
type uriReader struct {
	io.Reader
	uri    fyne.URI
	closed bool
}

func (r *uriReader) URI() fyne.URI { return r.uri }

func (r *uriReader) Close() error {
	r.closed = true
	return nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk vanished") }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadReadsWholeFile(t *testing.T) {
	repo := models.NewDocumentRepository()
	ds := NewDocumentService(repo)
	path := writeFile(t, "hello.txt", "Hello\nWorld")

	doc, err := ds.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Content != "Hello\nWorld" {
		t.Errorf("content = %q", doc.Content)
	}
	if doc.Name != "hello.txt" {
		t.Errorf("name = %q, want hello.txt", doc.Name)
	}
	if doc.Size != int64(len("Hello\nWorld")) {
		t.Errorf("size = %d", doc.Size)
	}
	if repo.Content() != "Hello\nWorld" {
		t.Errorf("repository content = %q", repo.Content())
	}
}

func TestLoadMissingFileKeepsPreviousDocument(t *testing.T) {
	repo := models.NewDocumentRepository()
	ds := NewDocumentService(repo)
	repo.Set(models.Document{Name: "old.txt", Content: "previous"})

	_, err := ds.Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if repo.Content() != "previous" {
		t.Errorf("repository content changed to %q", repo.Content())
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	ds := NewDocumentService(models.NewDocumentRepository())

	_, err := ds.Load(context.Background(), t.TempDir())
	if !errors.Is(err, ErrNotRegularFile) {
		t.Fatalf("expected ErrNotRegularFile, got %v", err)
	}
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	ds := NewDocumentService(models.NewDocumentRepository())
	path := writeFile(t, "a.txt", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ds.Load(ctx, path); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoadURI(t *testing.T) {
	repo := models.NewDocumentRepository()
	ds := NewDocumentService(repo)
	reader := &uriReader{
		Reader: strings.NewReader("line one\nline two"),
		uri:    storage.NewFileURI("/tmp/picked.txt"),
	}

	doc, err := ds.LoadURI(context.Background(), reader)
	if err != nil {
		t.Fatalf("LoadURI: %v", err)
	}
	if !reader.closed {
		t.Error("reader was not closed")
	}
	if doc.Name != "picked.txt" || doc.Content != "line one\nline two" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestLoadURIReadFailure(t *testing.T) {
	repo := models.NewDocumentRepository()
	ds := NewDocumentService(repo)
	repo.Set(models.Document{Name: "old.txt", Content: "previous"})

	reader := &uriReader{Reader: failingReader{}, uri: storage.NewFileURI("/tmp/broken.txt")}
	_, err := ds.LoadURI(context.Background(), reader)
	if err == nil || !strings.Contains(err.Error(), "disk vanished") {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
	if !reader.closed {
		t.Error("reader was not closed after failure")
	}
	if repo.Content() != "previous" {
		t.Errorf("repository content changed to %q", repo.Content())
	}
}

func TestClose(t *testing.T) {
	repo := models.NewDocumentRepository()
	ds := NewDocumentService(repo)
	repo.Set(models.Document{Name: "a.txt", Content: "a"})

	ds.Close()
	if repo.HasDocument() {
		t.Error("expected repository to be empty")
	}
}
