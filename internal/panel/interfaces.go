package panel

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/appshell/internal/errorqueue"
)

// RenderContext is handed to every rendering hook.
type RenderContext struct {
	// Errors receives failures; hooks never show error UI themselves
	Errors errorqueue.Reporter
	// Window is the main window, nil in headless use
	Window fyne.Window
}

// Panel is a self-contained UI unit owned by the host application.
// HasUI and HasSettings may depend on live host state and are queried on
// every frame. A render method may return nil to draw nothing.
type Panel interface {
	Name() string
	HasUI() bool
	HasSettings() bool
	RenderUI(ctx RenderContext) fyne.CanvasObject
	RenderSettings(ctx RenderContext) fyne.CanvasObject
}
