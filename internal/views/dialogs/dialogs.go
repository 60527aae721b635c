// Package dialogs holds the static informational dialogs of the main window.
package dialogs

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const helpText = `This is the help screen for the "Basic GUI with Threads" application.

Features:
- File menu:
  - Open File: loads a text file and shows its contents.
  - Close File: clears the displayed contents.
  - Exit: closes the application.

- Configuration menu:
  - Patterns: changes the animation pattern (Solid Fill or Circles).
  - Colors: changes the animation color scheme.
  - Speed: sets the animation interval in milliseconds (minimum 50).

The background animation runs on its own goroutine so it does not
slow down the user interface.`

var iconSize = fyne.NewSize(80, 80)

// Content describes a static dialog
type Content struct {
	Title   string
	Message string
	Dismiss string
	Icon    fyne.Resource
	Size    fyne.Size
}

// HelpContent is the feature summary shown by Help
func HelpContent() Content {
	return Content{
		Title:   "Help",
		Message: helpText,
		Dismiss: "OK",
		Icon:    theme.HelpIcon(),
		Size:    fyne.NewSize(550, 400),
	}
}

// AboutContent names the application, its version and authors
func AboutContent(appName, version string) Content {
	return Content{
		Title:   "About",
		Message: fmt.Sprintf("Application: %s\nVersion: %s\nAuthors: %s contributors", appName, version, appName),
		Dismiss: "OK",
		Icon:    theme.InfoIcon(),
		Size:    fyne.NewSize(420, 220),
	}
}

// Show presents content as a modal over parent. onClosed, if set, runs
// once the dialog has been acknowledged.
func Show(content Content, parent fyne.Window, onClosed func()) dialog.Dialog {
	d := dialog.NewCustom(content.Title, content.Dismiss, Body(content), parent)
	if onClosed != nil {
		d.SetOnClosed(onClosed)
	}
	if !content.Size.IsZero() {
		d.Resize(content.Size)
	}
	d.Show()
	return d
}

// Body builds the icon and scrollable read-only text of a dialog
func Body(content Content) fyne.CanvasObject {
	text := widget.NewLabel(content.Message)
	text.Wrapping = fyne.TextWrapWord

	scroll := container.NewVScroll(text)

	if content.Icon == nil {
		return scroll
	}

	icon := container.NewGridWrap(iconSize, widget.NewIcon(content.Icon))
	return container.NewBorder(nil, nil, container.NewCenter(icon), nil, scroll)
}

func ShowHelp(parent fyne.Window) dialog.Dialog {
	return Show(HelpContent(), parent, nil)
}

func ShowAbout(appName, version string, parent fyne.Window) dialog.Dialog {
	return Show(AboutContent(appName, version), parent, nil)
}
