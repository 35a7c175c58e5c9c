package shell

import (
	"encoding/json"

	"fyne.io/fyne/v2"

	"github.com/ytget/appshell/internal/config"
	"github.com/ytget/appshell/internal/model"
	"github.com/ytget/appshell/internal/panel"
)

// App is the host application plugged into the shell.
type App interface {
	// Panels is asked once, when the driver is built
	Panels() []panel.Panel

	TopPanel(ctx panel.RenderContext) fyne.CanvasObject
	CentralPanel(ctx panel.RenderContext) fyne.CanvasObject
	SidePanel(ctx panel.RenderContext) fyne.CanvasObject

	// MenuFile returns extra entries for the File menu
	MenuFile(ctx panel.RenderContext) []*fyne.MenuItem

	// HandleFile ingests a fully read file
	HandleFile(file model.File) error

	// IsOpenButton reports whether the File menu offers Open
	IsOpenButton() bool
	// IsSidePanel reports whether the host draws into the side region
	IsSidePanel() bool

	// State returns the host's serializable state, persisted on shutdown
	State() any
}

// Identity is the static identity of the host application.
type Identity struct {
	Name    string
	Version string
	RepoURL string
	Icon    []byte
}

// Factory builds the host application from its prior persisted state (nil on
// first start) and the process arguments.
type Factory func(prior json.RawMessage, args []string) (App, error)

// StateStore persists the shell state between runs. config.Store is the
// production implementation.
type StateStore interface {
	Load() *config.PersistedState
	Save(st *config.PersistedState) error
}
