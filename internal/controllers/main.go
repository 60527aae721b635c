package controllers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"basic-gui-threads/internal/logger"
	"basic-gui-threads/internal/models"
	"basic-gui-threads/internal/services"
	"basic-gui-threads/internal/views"

	"fyne.io/fyne/v2"
)

const component = "MainController"

const (
	StatusOpenFailed = "Failed to open file."
	StatusClosed     = "File closed."
	statusOpened     = "Opened: %s"
)

// ErrInvalidSpeed is reported when the speed prompt gets a value that is not
// a whole number of milliseconds a time.Duration can hold
var ErrInvalidSpeed = errors.New("invalid speed")

const maxSpeedMillis = math.MaxInt64 / int64(time.Millisecond)

// View is the part of the main view the controller drives
type View interface {
	SetMenuHandlers(h views.MenuHandlers)
	SetDocument(doc models.Document)
	ClearDocument()
	SetStatus(status string)
	SetAnimationInfo(cfg models.AnimationConfig)
	ShowError(err error)
	ShowFileOpen(callback func(fyne.URIReadCloser, error))
	ShowChoice(title string, options []string, selected string, onChoose func(string))
	ShowSpeedPrompt(current string, onSubmit func(string))
	ShowHelp()
	ShowAbout()
}

// Background is the configurable drawing surface
type Background interface {
	Config() models.AnimationConfig
	Configure(cfg models.AnimationConfig)
}

// MainController translates menu selections into document, animation and
// dialog operations. All methods run on the UI thread.
type MainController struct {
	ctx        context.Context
	documents  *services.DocumentService
	background Background
	logger     logger.Logger

	mainView View
	exit     func()
}

// NewMainController creates a new main controller
func NewMainController(ctx context.Context, documents *services.DocumentService, background Background, log logger.Logger) *MainController {
	return &MainController{
		ctx:        ctx,
		documents:  documents,
		background: background,
		logger:     log,
		exit:       func() {},
	}
}

// SetMainView associates the main view with this controller and wires its menu
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view

	view.SetMenuHandlers(views.MenuHandlers{
		OpenFile:      mc.OpenFile,
		CloseFile:     mc.CloseFile,
		Exit:          mc.Exit,
		ChangePattern: mc.ChangePattern,
		ChangeColor:   mc.ChangeColor,
		ChangeSpeed:   mc.ChangeSpeed,
		ShowHelp:      mc.ShowHelp,
		ShowAbout:     mc.ShowAbout,
	})
	view.SetAnimationInfo(mc.background.Config())
}

// SetExitHandler sets the shutdown sequence run by Exit
func (mc *MainController) SetExitHandler(exit func()) {
	mc.exit = exit
}

// OpenFile prompts for a file and loads it
func (mc *MainController) OpenFile() {
	mc.mainView.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mc.handleError("File selection failed", err)
			return
		}
		if reader == nil {
			return
		}

		doc, err := mc.documents.LoadURI(mc.ctx, reader)
		mc.applyLoaded(doc, err)
	})
}

// OpenPath loads the file at path
func (mc *MainController) OpenPath(path string) error {
	doc, err := mc.documents.Load(mc.ctx, path)
	mc.applyLoaded(doc, err)
	return err
}

func (mc *MainController) applyLoaded(doc models.Document, err error) {
	if err != nil {
		mc.logger.Error(component, err, map[string]interface{}{
			"operation": "open_file",
		})
		mc.mainView.ShowError(fmt.Errorf("Error reading file: %w", err))
		mc.mainView.SetStatus(StatusOpenFailed)
		return
	}

	mc.mainView.SetDocument(doc)
	mc.mainView.SetStatus(fmt.Sprintf(statusOpened, doc.Name))

	mc.logger.Info(component, "file opened", map[string]interface{}{
		"name":  doc.Name,
		"bytes": doc.Size,
	})
}

// CloseFile clears the displayed document
func (mc *MainController) CloseFile() {
	mc.documents.Close()
	mc.mainView.ClearDocument()
	mc.mainView.SetStatus(StatusClosed)
}

// Exit runs the shutdown sequence
func (mc *MainController) Exit() {
	mc.logger.Info(component, "exit requested", nil)
	mc.exit()
}

// ChangePattern prompts for a draw pattern
func (mc *MainController) ChangePattern() {
	patterns := models.AllDrawPatterns()
	options := make([]string, len(patterns))
	for i, p := range patterns {
		options[i] = p.String()
	}

	current := mc.background.Config().DrawPattern.String()
	mc.mainView.ShowChoice("Patterns", options, current, func(choice string) {
		_ = mc.ApplyPattern(choice)
	})
}

// ApplyPattern switches the background to the named pattern
func (mc *MainController) ApplyPattern(name string) error {
	pattern, err := models.ParseDrawPattern(name)
	if err != nil {
		mc.handleError("Pattern change failed", err)
		return err
	}

	cfg := mc.background.Config()
	cfg.DrawPattern = pattern
	mc.applyConfig(cfg, fmt.Sprintf("Pattern: %s", pattern))
	return nil
}

// ChangeColor prompts for a color mode
func (mc *MainController) ChangeColor() {
	modes := models.AllColorModes()
	options := make([]string, len(modes))
	for i, m := range modes {
		options[i] = m.String()
	}

	current := mc.background.Config().ColorMode.String()
	mc.mainView.ShowChoice("Colors", options, current, func(choice string) {
		_ = mc.ApplyColor(choice)
	})
}

// ApplyColor switches the background to the named color mode
func (mc *MainController) ApplyColor(name string) error {
	mode, err := models.ParseColorMode(name)
	if err != nil {
		mc.handleError("Color change failed", err)
		return err
	}

	cfg := mc.background.Config()
	cfg.ColorMode = mode
	mc.applyConfig(cfg, fmt.Sprintf("Colors: %s", mode))
	return nil
}

// ChangeSpeed prompts for a new tick interval
func (mc *MainController) ChangeSpeed() {
	current := strconv.FormatInt(mc.background.Config().TickInterval.Milliseconds(), 10)
	mc.mainView.ShowSpeedPrompt(current, func(input string) {
		_ = mc.ApplySpeed(input)
	})
}

// ApplySpeed sets the tick interval from user input in milliseconds.
// Blank input changes nothing and is not an error.
func (mc *MainController) ApplySpeed(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		mc.logger.Debug(component, "blank speed input ignored", nil)
		return nil
	}

	ms, err := strconv.Atoi(input)
	if err != nil {
		err = fmt.Errorf("%w: %q is not a whole number of milliseconds", ErrInvalidSpeed, input)
		mc.handleError("Speed change failed", err)
		return err
	}
	if int64(ms) > maxSpeedMillis {
		err = fmt.Errorf("%w: %d ms exceeds the maximum of %d ms", ErrInvalidSpeed, ms, maxSpeedMillis)
		mc.handleError("Speed change failed", err)
		return err
	}

	cfg := mc.background.Config()
	cfg.TickInterval = time.Duration(ms) * time.Millisecond
	mc.applyConfig(cfg, "")
	return nil
}

func (mc *MainController) applyConfig(cfg models.AnimationConfig, status string) {
	mc.background.Configure(cfg)

	applied := mc.background.Config()
	if status == "" {
		status = fmt.Sprintf("Speed: %d ms", applied.TickInterval.Milliseconds())
	}
	mc.mainView.SetAnimationInfo(applied)
	mc.mainView.SetStatus(status)
}

// ShowHelp opens the help dialog
func (mc *MainController) ShowHelp() {
	mc.mainView.ShowHelp()
}

// ShowAbout opens the about dialog
func (mc *MainController) ShowAbout() {
	mc.mainView.ShowAbout()
}

func (mc *MainController) handleError(message string, err error) {
	mc.logger.Error(component, err, map[string]interface{}{
		"message": message,
	})
	mc.mainView.ShowError(err)
}
