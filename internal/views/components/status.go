package components

import (
	"fmt"
	"strings"

	"basic-gui-threads/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	StatusReady        = "Ready."
	noDocumentInfo     = "No file"
	documentInfoFormat = "%s: %d lines, %d bytes"
)

// StatusBar shows the status line plus document and animation details.
// Setters must be called on the UI thread.
type StatusBar struct {
	container     *fyne.Container
	statusLabel   *widget.Label
	documentInfo  *widget.Label
	animationInfo *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(StatusReady)
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.documentInfo = widget.NewLabel(noDocumentInfo)
	sb.animationInfo = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(
		widget.NewSeparator(),
		nil,
		nil,
		container.NewHBox(
			widget.NewSeparator(),
			sb.documentInfo,
			widget.NewSeparator(),
			sb.animationInfo,
		),
		sb.statusLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetDocumentInfo summarises the open document
func (sb *StatusBar) SetDocumentInfo(doc models.Document) {
	lines := 0
	if doc.Content != "" {
		lines = strings.Count(doc.Content, "\n") + 1
	}
	sb.documentInfo.SetText(fmt.Sprintf(documentInfoFormat, doc.Name, lines, doc.Size))
}

// GetDocumentInfo returns the document summary text
func (sb *StatusBar) GetDocumentInfo() string {
	return sb.documentInfo.Text
}

// SetAnimationInfo shows the active background configuration
func (sb *StatusBar) SetAnimationInfo(cfg models.AnimationConfig) {
	sb.animationInfo.SetText(fmt.Sprintf("%s | %s | %d ms",
		cfg.DrawPattern, cfg.ColorMode, cfg.TickInterval.Milliseconds()))
}

// GetAnimationInfo returns the animation summary text
func (sb *StatusBar) GetAnimationInfo() string {
	return sb.animationInfo.Text
}

// ResetDocumentInfo clears the document summary
func (sb *StatusBar) ResetDocumentInfo() {
	sb.documentInfo.SetText(noDocumentInfo)
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
