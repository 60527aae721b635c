package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"basic-gui-threads/internal/logger"

	"fyne.io/fyne/v2/test"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	a := NewApplication(context.Background(), test.NewApp(), logger.NewNop())
	t.Cleanup(a.shutdown.Run)
	return a
}

func TestNewApplicationDefaults(t *testing.T) {
	a := newTestApplication(t)

	if a.window.Title() != AppName {
		t.Errorf("window title = %q, want %q", a.window.Title(), AppName)
	}
	if a.view.Status() != "Ready." {
		t.Errorf("initial status = %q", a.view.Status())
	}
	if a.view.Menu() == nil {
		t.Error("main menu not installed")
	}
	if a.animator.Running() {
		t.Error("animator should not run before Run")
	}
}

func TestExitStopsAnimatorBeforeClosing(t *testing.T) {
	a := newTestApplication(t)

	a.animator.Start(a.ctx)
	if !a.animator.Running() {
		t.Fatal("animator did not start")
	}

	a.view.Menu().Items[0].Items[3].Action()

	select {
	case <-a.shutdown.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown sequence did not complete")
	}
	if a.animator.Running() {
		t.Error("animator still running after exit")
	}
	if a.ctx.Err() == nil {
		t.Error("application context not cancelled")
	}
}

func TestWindowCloseRoutesThroughShutdown(t *testing.T) {
	a := newTestApplication(t)
	a.animator.Start(a.ctx)

	a.onCloseRequested()

	select {
	case <-a.shutdown.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("closing the window did not run the shutdown sequence")
	}
	if a.animator.Running() {
		t.Error("animator still running after window close")
	}
}

func TestOpenFileEndToEnd(t *testing.T) {
	a := newTestApplication(t)

	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, []byte("Hello\nWorld"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := a.controller.OpenPath(path); err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	if a.view.DocumentText() != "Hello\nWorld" {
		t.Errorf("viewer shows %q", a.view.DocumentText())
	}
	if a.view.Status() != "Opened: hello.txt" {
		t.Errorf("status = %q", a.view.Status())
	}
}
