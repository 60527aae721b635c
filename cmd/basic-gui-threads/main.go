package main

import (
	"context"
	"runtime"

	"basic-gui-threads/internal/animation"
	"basic-gui-threads/internal/controllers"
	"basic-gui-threads/internal/logger"
	"basic-gui-threads/internal/models"
	"basic-gui-threads/internal/services"
	"basic-gui-threads/internal/shutdown"
	"basic-gui-threads/internal/views"
	"basic-gui-threads/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Basic GUI with Threads"
	AppID      = "com.example.basic-gui-threads"
	AppVersion = "2025.a"

	WindowWidth  = 800
	WindowHeight = 600
)

// Application wires the window, the background animator and the controller
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView
	animator   *animation.Animator
	shutdown   *shutdown.Manager

	ctx    context.Context
	cancel context.CancelFunc
}

func main() {
	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv())

	application := NewApplication(context.Background(), app.NewWithID(AppID), appLogger)
	application.Run()

	appLogger.Info("Application", "application terminated", nil)
}

// NewApplication builds the main window and every component behind it
func NewApplication(ctx context.Context, fyneApp fyne.App, appLogger logger.Logger) *Application {
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	appCtx, appCancel := context.WithCancel(ctx)

	appLogger.Info("Application", "application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
	})

	animator := animation.NewAnimator(appLogger)
	background := components.NewBackground(animator)

	// Ticks arrive on the animator goroutine; painting happens on the UI thread.
	animator.SetOnTick(func() {
		fyne.Do(background.RenderSnapshot)
	})

	repo := models.NewDocumentRepository()
	documentService := services.NewDocumentService(repo)

	view := views.NewMainView(window, background, AppName, AppVersion)
	controller := controllers.NewMainController(appCtx, documentService, view.Background(), appLogger)
	controller.SetMainView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		view:       view,
		animator:   animator,
		shutdown:   shutdown.NewManager(appLogger),
		ctx:        appCtx,
		cancel:     appCancel,
	}

	application.setupShutdown()
	application.setupWindowEvents()

	return application
}

// setupShutdown registers the one exit sequence every path goes through:
// stop the animator, dispose of the window, quit the app.
func (a *Application) setupShutdown() {
	a.shutdown.Add("animator", a.animator.Stop)
	a.shutdown.Add("context", a.cancel)
	a.shutdown.Add("window", a.window.Close)
	a.shutdown.Add("app", a.fyneApp.Quit)

	a.shutdown.SetDispatcher(fyne.Do)
	a.controller.SetExitHandler(a.shutdown.Run)
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(a.onCloseRequested)
}

func (a *Application) onCloseRequested() {
	a.logger.Info("Application", "window close requested", nil)
	a.shutdown.Run()
}

// Run starts the animation and blocks in the UI event loop
func (a *Application) Run() {
	a.shutdown.Listen(a.ctx)
	a.animator.Start(a.ctx)

	a.window.ShowAndRun()

	// The event loop can also end without going through the window.
	a.shutdown.Run()
}
