package views

import (
	"basic-gui-threads/internal/models"
	"basic-gui-threads/internal/views/components"
	"basic-gui-threads/internal/views/dialogs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MenuHandlers are the actions behind the main menu
type MenuHandlers struct {
	OpenFile      func()
	CloseFile     func()
	Exit          func()
	ChangePattern func()
	ChangeColor   func()
	ChangeSpeed   func()
	ShowHelp      func()
	ShowAbout     func()
}

// MainView composes the menu bar, the animated background, the text viewer
// and the status bar. Methods must be called on the UI thread.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	background    components.Surface
	viewer        *widget.Label
	scroll        *container.Scroll
	statusBar     *components.StatusBar
	menu          *fyne.MainMenu

	appName    string
	appVersion string
}

// NewMainView creates the main view on window with background drawn behind the text
func NewMainView(window fyne.Window, background components.Surface, appName, appVersion string) *MainView {
	view := &MainView{
		window:     window,
		background: background,
		appName:    appName,
		appVersion: appVersion,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.viewer = widget.NewLabel("")
	mv.viewer.Wrapping = fyne.TextWrapWord
	mv.viewer.Selectable = true
	mv.scroll = container.NewScroll(mv.viewer)
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	center := container.NewStack(mv.background, mv.scroll)

	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		center,
	)

	mv.window.SetContent(mv.mainContainer)
}

// SetMenuHandlers builds the main menu around handlers
func (mv *MainView) SetMenuHandlers(h MenuHandlers) {
	exitItem := fyne.NewMenuItem("Exit", h.Exit)
	exitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open File...", h.OpenFile),
		fyne.NewMenuItem("Close File", h.CloseFile),
		fyne.NewMenuItemSeparator(),
		exitItem,
	)

	configMenu := fyne.NewMenu("Configuration",
		fyne.NewMenuItem("Patterns...", h.ChangePattern),
		fyne.NewMenuItem("Colors...", h.ChangeColor),
		fyne.NewMenuItem("Speed...", h.ChangeSpeed),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Help", h.ShowHelp),
		fyne.NewMenuItem("About", h.ShowAbout),
	)

	mv.menu = fyne.NewMainMenu(fileMenu, configMenu, helpMenu)
	mv.window.SetMainMenu(mv.menu)
}

// Menu returns the main menu, nil before SetMenuHandlers
func (mv *MainView) Menu() *fyne.MainMenu {
	return mv.menu
}

// SetDocument shows content in the viewer, scrolled to the top
func (mv *MainView) SetDocument(doc models.Document) {
	mv.viewer.SetText(doc.Content)
	mv.scroll.ScrollToTop()
	mv.statusBar.SetDocumentInfo(doc)
}

// ClearDocument empties the viewer
func (mv *MainView) ClearDocument() {
	mv.viewer.SetText("")
	mv.scroll.ScrollToTop()
	mv.statusBar.ResetDocumentInfo()
}

// DocumentText returns what the viewer is displaying
func (mv *MainView) DocumentText() string {
	return mv.viewer.Text
}

// SetStatus updates the status bar message
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// Status returns the status bar message
func (mv *MainView) Status() string {
	return mv.statusBar.GetStatus()
}

// SetAnimationInfo shows the active background configuration
func (mv *MainView) SetAnimationInfo(cfg models.AnimationConfig) {
	mv.statusBar.SetAnimationInfo(cfg)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// ShowFileOpen displays a file selection dialog
func (mv *MainView) ShowFileOpen(callback func(fyne.URIReadCloser, error)) {
	d := dialog.NewFileOpen(callback, mv.window)
	d.Resize(fyne.NewSize(700, 500))
	d.Show()
}

// ShowChoice asks the user to pick one of options
func (mv *MainView) ShowChoice(title string, options []string, selected string, onChoose func(string)) {
	showChoice(title, options, selected, onChoose, mv.window)
}

// ShowSpeedPrompt asks for a new tick interval in milliseconds
func (mv *MainView) ShowSpeedPrompt(current string, onSubmit func(string)) {
	showSpeedPrompt(current, onSubmit, mv.window)
}

// ShowHelp opens the help dialog
func (mv *MainView) ShowHelp() {
	dialogs.ShowHelp(mv.window)
}

// ShowAbout opens the about dialog
func (mv *MainView) ShowAbout() {
	dialogs.ShowAbout(mv.appName, mv.appVersion, mv.window)
}

// Background returns the drawing surface behind the viewer
func (mv *MainView) Background() components.Surface {
	return mv.background
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
