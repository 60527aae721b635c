package models

import (
	"sync"
	"time"
)

// Document is the full text of an opened file
type Document struct {
	Name     string
	Path     string
	Content  string
	Size     int64
	LoadTime time.Time
}

// DocumentRepository holds the most recently opened document
type DocumentRepository struct {
	mu      sync.RWMutex
	current *Document
}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

// Set replaces the current document
func (r *DocumentRepository) Set(doc Document) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = &doc
}

// Clear drops the current document
func (r *DocumentRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = nil
}

// Current returns the current document, or false when none is open
func (r *DocumentRepository) Current() (Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return Document{}, false
	}
	return *r.current, true
}

// Content returns the current text, empty when nothing is open
func (r *DocumentRepository) Content() string {
	doc, _ := r.Current()
	return doc.Content
}

func (r *DocumentRepository) HasDocument() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current != nil
}
