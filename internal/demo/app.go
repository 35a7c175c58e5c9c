package demo

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/appshell/internal/errorqueue"
	"github.com/ytget/appshell/internal/model"
	"github.com/ytget/appshell/internal/panel"
	"github.com/ytget/appshell/internal/platform"
	"github.com/ytget/appshell/internal/shell"
)

// Limits
const (
	MaxHistory     = 20
	PreviewBytes   = 2048
	DefaultBuckets = 8
)

// SideFlag makes the host draw a summary into the side region
const SideFlag = "--side"

// State is the persisted host state
type State struct {
	History []string `json:"history"`
	Buckets int      `json:"buckets"`
}

// App is the demo host application
type App struct {
	state State
	side  bool

	last *model.File

	// OS integration; replaced in tests
	savePath func(current string) (string, error)
	saveFile func(data []byte, path string) error
	reveal   func(path string) error
	openWith func(path string) error
	// afterSave runs on the UI goroutine once a save attempt finished
	afterSave func()

	saving bool
	saved  string

	top     fyne.CanvasObject
	status  *widget.Label
	saveBtn *widget.Button
	showBtn *widget.Button
	preview *widget.Label
	central fyne.CanvasObject
	summary *widget.Label
	clear   *fyne.MenuItem
	openOut *fyne.MenuItem

	logPanel   *LogPanel
	graphPanel *GraphPanel

	errs errorqueue.Reporter
}

// New builds the host from its prior state and the process arguments
func New(prior json.RawMessage, args []string) (shell.App, error) {
	return newApp(prior, args)
}

func newApp(prior json.RawMessage, args []string) (*App, error) {
	st := State{Buckets: DefaultBuckets}
	if len(prior) > 0 && string(prior) != "null" {
		if err := json.Unmarshal(prior, &st); err != nil {
			return nil, fmt.Errorf("decode demo state: %w", err)
		}
	}
	if !validBuckets(st.Buckets) {
		st.Buckets = DefaultBuckets
	}

	a := &App{
		state:    st,
		savePath: platform.SavePath,
		saveFile: platform.SaveFile,
		reveal:   platform.OpenFileInManager,
		openWith: platform.OpenFileWithDefaultApp,
	}
	for _, arg := range args {
		if arg == SideFlag {
			a.side = true
		}
	}
	a.setupUI()
	return a, nil
}

// setupUI creates the widgets the hooks hand out every frame
func (a *App) setupUI() {
	a.status = widget.NewLabel("")
	a.saveBtn = widget.NewButton("Save copy", a.onSaveCopy)
	a.showBtn = widget.NewButton("Show in folder", a.onShowSaved)
	a.top = container.NewBorder(nil, nil, nil, container.NewHBox(a.saveBtn, a.showBtn), a.status)

	a.preview = widget.NewLabel("")
	a.preview.Wrapping = fyne.TextWrapBreak
	a.preview.TextStyle = fyne.TextStyle{Monospace: true}
	a.central = container.NewVScroll(a.preview)

	a.summary = widget.NewLabel("")
	a.clear = fyne.NewMenuItem("Clear history", a.onClear)
	a.openOut = fyne.NewMenuItem("Open saved copy", a.onOpenSaved)

	a.logPanel = NewLogPanel(a)
	a.graphPanel = NewGraphPanel(a)
	a.refresh()
}

// Panels implements shell.App
func (a *App) Panels() []panel.Panel {
	return []panel.Panel{a.logPanel, a.graphPanel}
}

// TopPanel implements shell.App
func (a *App) TopPanel(ctx panel.RenderContext) fyne.CanvasObject {
	a.errs = ctx.Errors
	return a.top
}

// CentralPanel implements shell.App
func (a *App) CentralPanel(ctx panel.RenderContext) fyne.CanvasObject {
	return a.central
}

// SidePanel implements shell.App
func (a *App) SidePanel(ctx panel.RenderContext) fyne.CanvasObject {
	return a.summary
}

// MenuFile implements shell.App
func (a *App) MenuFile(ctx panel.RenderContext) []*fyne.MenuItem {
	if !a.canReveal() {
		return []*fyne.MenuItem{a.clear}
	}
	return []*fyne.MenuItem{a.clear, a.openOut}
}

// HandleFile implements shell.App
func (a *App) HandleFile(file model.File) error {
	if file.Len() == 0 {
		return errorqueue.Newf("%s is empty", file.GetDisplayName())
	}
	f := file
	a.last = &f
	a.state.History = append(a.state.History, file.GetDisplayName())
	if len(a.state.History) > MaxHistory {
		a.state.History = a.state.History[len(a.state.History)-MaxHistory:]
	}
	log.Printf("demo: received %s (%d bytes)", file.GetDisplayName(), file.Len())
	a.refresh()
	return nil
}

// IsOpenButton implements shell.App
func (a *App) IsOpenButton() bool {
	return true
}

// IsSidePanel implements shell.App
func (a *App) IsSidePanel() bool {
	return a.side
}

// State implements shell.App
func (a *App) State() any {
	return a.state
}

// Last returns the last ingested file
func (a *App) Last() *model.File {
	return a.last
}

// Saved returns the path of the last saved copy
func (a *App) Saved() string {
	return a.saved
}

// canReveal reports whether the last saved copy exists on a local filesystem
func (a *App) canReveal() bool {
	return a.saved != "" && platform.IsNative()
}

func (a *App) refresh() {
	if a.last == nil {
		a.status.SetText("Open or drop a file")
		a.preview.SetText("")
	} else {
		a.status.SetText(fmt.Sprintf("%s · %d bytes", a.last.GetDisplayName(), a.last.Len()))
		a.preview.SetText(preview(a.last.Data))
	}
	if a.last == nil || a.saving {
		a.saveBtn.Disable()
	} else {
		a.saveBtn.Enable()
	}
	if a.canReveal() {
		a.showBtn.Show()
	} else {
		a.showBtn.Hide()
	}
	a.summary.SetText(fmt.Sprintf("%d file(s) seen", len(a.state.History)))
	a.logPanel.Refresh()
	a.graphPanel.Refresh()
}

func (a *App) onClear() {
	a.state.History = nil
	a.last = nil
	a.refresh()
}

// onSaveCopy asks where to save the last file and writes it there. The save
// dialog blocks, so it runs off the UI goroutine.
func (a *App) onSaveCopy() {
	if a.last == nil || a.saving {
		return
	}
	file := *a.last
	a.saving = true
	a.refresh()

	go func() {
		path, err := a.savePath(file.Path)
		fyne.Do(func() {
			a.finishSave(file, path, err)
		})
	}()
}

// finishSave writes the copy once the dialog returned; UI goroutine only
func (a *App) finishSave(file model.File, path string, err error) {
	defer func() {
		a.saving = false
		a.refresh()
		if a.afterSave != nil {
			a.afterSave()
		}
	}()

	if err != nil {
		a.report(errorqueue.Wrap("Cannot choose where to save", err))
		return
	}
	if path == "" {
		return
	}
	if err := a.saveFile(file.Data, path); err != nil {
		a.report(errorqueue.Wrap(fmt.Sprintf("Cannot save %s", path), err))
		return
	}
	a.saved = path
}

// onShowSaved reveals the last saved copy in the file manager
func (a *App) onShowSaved() {
	if a.saved == "" {
		return
	}
	if err := a.reveal(a.saved); err != nil {
		a.report(errorqueue.Wrap(fmt.Sprintf("Cannot show %s", a.saved), err))
	}
}

// onOpenSaved opens the last saved copy with its default application
func (a *App) onOpenSaved() {
	if a.saved == "" {
		return
	}
	if err := a.openWith(a.saved); err != nil {
		a.report(errorqueue.Wrap(fmt.Sprintf("Cannot open %s", a.saved), err))
	}
}

func (a *App) report(err error) {
	if a.errs == nil {
		log.Printf("demo: %v", err)
		return
	}
	a.errs.Record(err)
}

// preview renders the start of data as text, or as hex when it is binary
func preview(data []byte) string {
	truncated := len(data) > PreviewBytes
	if truncated {
		cut := PreviewBytes
		// never split a multi-byte rune
		for i := 0; i < utf8.UTFMax && cut > 0 && !utf8.RuneStart(data[cut]); i++ {
			cut--
		}
		data = data[:cut]
	}

	var out string
	if utf8.Valid(data) {
		out = string(data)
	} else {
		var b strings.Builder
		for i, c := range data {
			if i > 0 && i%16 == 0 {
				b.WriteByte('\n')
			} else if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%02x", c)
		}
		out = b.String()
	}
	if truncated {
		out += "\n…"
	}
	return out
}
