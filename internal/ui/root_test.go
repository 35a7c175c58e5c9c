package ui

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/appshell/internal/config"
	"github.com/ytget/appshell/internal/model"
	"github.com/ytget/appshell/internal/panel"
	"github.com/ytget/appshell/internal/shell"
)

type labelPanel struct {
	name  string
	label *widget.Label
}

func (p *labelPanel) Name() string { return p.name }
func (p *labelPanel) HasUI() bool { return true }
func (p *labelPanel) HasSettings() bool { return false }
func (p *labelPanel) RenderUI(panel.RenderContext) fyne.CanvasObject { return p.label }
func (p *labelPanel) RenderSettings(panel.RenderContext) fyne.CanvasObject { return nil }

type labelHost struct {
	top     *widget.Label
	central *widget.Label
	panels  []panel.Panel
}

func newLabelHost() *labelHost {
	return &labelHost{
		top:     widget.NewLabel("top"),
		central: widget.NewLabel("central"),
		panels: []panel.Panel{
			&labelPanel{name: "Log", label: widget.NewLabel("log")},
			&labelPanel{name: "Graph", label: widget.NewLabel("graph")},
		},
	}
}

func (h *labelHost) Panels() []panel.Panel { return h.panels }
func (h *labelHost) TopPanel(panel.RenderContext) fyne.CanvasObject { return h.top }
func (h *labelHost) CentralPanel(panel.RenderContext) fyne.CanvasObject { return h.central }
func (h *labelHost) SidePanel(panel.RenderContext) fyne.CanvasObject { return nil }
func (h *labelHost) MenuFile(panel.RenderContext) []*fyne.MenuItem { return nil }
func (h *labelHost) HandleFile(model.File) error { return nil }
func (h *labelHost) IsOpenButton() bool { return true }
func (h *labelHost) IsSidePanel() bool { return false }
func (h *labelHost) State() any { return nil }

func newTestRoot(t *testing.T) (*RootUI, *shell.Driver, *labelHost) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := app.NewWindow("test")
	store := config.NewStoreWithKey(app, "ui_test_state")
	store.Clear()

	host := newLabelHost()
	factory := func(json.RawMessage, []string) (shell.App, error) { return host, nil }
	driver, err := shell.New(factory, store, shell.Options{Identity: shell.Identity{Name: "demo", Version: "0.1.0"}})
	if err != nil {
		t.Fatalf("shell.New failed: %v", err)
	}
	return NewRootUI(app, window, driver, store, NewLocalization(), 0), driver, host
}

func TestRootUI_RendersRegions(t *testing.T) {
	ui, _, host := newTestRoot(t)
	ui.Frame()

	if len(ui.topBox.Objects) != 1 || ui.topBox.Objects[0] != host.top {
		t.Errorf("Expected top region to hold the host top label, got %v", ui.topBox.Objects)
	}
	if len(ui.centralBox.Objects) != 1 || ui.centralBox.Objects[0] != host.central {
		t.Errorf("Expected central region to hold the host central label, got %v", ui.centralBox.Objects)
	}
	if len(ui.windows) != 2 {
		t.Errorf("Expected 2 floating windows, got %d", len(ui.windows))
	}
	if ui.body.Objects[0] != ui.center {
		t.Error("Side region should be hidden without sidebar panels")
	}
	if ui.window.Title() != "demo" {
		t.Errorf("Expected window title demo, got %s", ui.window.Title())
	}
}

func TestRootUI_ClosingWindowMovesPanelToSide(t *testing.T) {
	ui, driver, host := newTestRoot(t)
	ui.Frame()

	driver.CloseWindow("Log")
	ui.Frame()

	if _, ok := ui.windows["Log"]; ok {
		t.Error("Log window should be closed")
	}
	if ui.body.Objects[0] != ui.split {
		t.Fatal("Side region should be shown")
	}
	logLabel := host.panels[0].(*labelPanel).label
	if len(ui.sideBox.Objects) != 1 || ui.sideBox.Objects[0] != logLabel {
		t.Errorf("Expected side region to hold the Log panel, got %v", ui.sideBox.Objects)
	}
}

func TestRootUI_ErrorPanel(t *testing.T) {
	ui, driver, _ := newTestRoot(t)

	driver.Report(errors.New("disk on fire"))
	ui.Frame()
	if len(ui.bottomBox.Objects) != 1 || ui.bottomBox.Objects[0] != ui.errorPanel.Object() {
		t.Fatalf("Expected the error panel to be docked, got %v", ui.bottomBox.Objects)
	}
	if !strings.Contains(ui.errorPanel.key, "disk on fire") {
		t.Errorf("Expected error text in panel, got %q", ui.errorPanel.key)
	}

	driver.DismissErrors()
	ui.Frame()
	if len(ui.bottomBox.Objects) != 0 {
		t.Errorf("Expected no docked panels after dismissal, got %d", len(ui.bottomBox.Objects))
	}
}

func TestRootUI_SettingsModal(t *testing.T) {
	ui, driver, _ := newTestRoot(t)

	driver.OpenSettings()
	ui.Frame()
	if ui.settingsUI.popup == nil || !ui.settingsUI.popup.Visible() {
		t.Fatal("Settings modal should be visible")
	}
	if len(ui.settingsUI.navBox.Objects) != 2 {
		t.Errorf("Expected General and Panel layout entries, got %d", len(ui.settingsUI.navBox.Objects))
	}
	if ui.settingsUI.footer.Text != "demo@0.1.0" {
		t.Errorf("Expected footer demo@0.1.0, got %s", ui.settingsUI.footer.Text)
	}

	driver.CloseSettings()
	ui.Frame()
	if ui.settingsUI.popup.Visible() {
		t.Error("Settings modal should be hidden after close")
	}
}

func TestRootUI_DropsReachTheHost(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	ui.onDropped(fyne.NewPos(0, 0), []fyne.URI{storage.NewFileURI("/does/not/exist.bin")})
	if len(ui.drops) != 1 {
		t.Fatalf("Expected 1 queued drop, got %d", len(ui.drops))
	}
	ui.Frame()
	if len(ui.drops) != 0 {
		t.Error("Drops should be consumed by the frame")
	}
	if !strings.Contains(ui.errorPanel.key, "/does/not/exist.bin") {
		t.Errorf("Expected read failure for the dropped path, got %q", ui.errorPanel.key)
	}
}

func TestDroppedFiles(t *testing.T) {
	web, err := storage.ParseURI("https://example.com/data.csv")
	if err != nil {
		t.Fatalf("ParseURI failed: %v", err)
	}
	files := droppedFiles([]fyne.URI{storage.NewFileURI("/tmp/a.txt"), nil, web})

	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	if files[0].Path != "/tmp/a.txt" || files[0].URI != nil || files[0].Name != "a.txt" {
		t.Errorf("Unexpected local drop: %+v", files[0])
	}
	if files[1].Path != "" || files[1].URI == nil || files[1].Name != "data.csv" {
		t.Errorf("Unexpected remote drop: %+v", files[1])
	}
}

func TestSetObjects(t *testing.T) {
	a := widget.NewLabel("a")
	b := widget.NewLabel("b")
	c := &fyne.Container{}

	setObjects(c, []fyne.CanvasObject{a, b})
	if len(c.Objects) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(c.Objects))
	}
	if !sameObjects(c.Objects, []fyne.CanvasObject{a, b}) {
		t.Error("Expected identical objects to compare equal")
	}
	if sameObjects(c.Objects, []fyne.CanvasObject{b, a}) {
		t.Error("Order must matter")
	}
	if nonNil(nil) != nil {
		t.Error("nonNil(nil) should be empty")
	}
}

func TestShellTheme(t *testing.T) {
	dark := NewShellTheme(config.ThemeDark)
	light := NewShellTheme(config.ThemeLight)
	system := NewShellTheme(config.ThemeSystem)

	if dark.Color(theme.ColorNameBackground, theme.VariantLight) != dark.Color(theme.ColorNameBackground, theme.VariantDark) {
		t.Error("Dark theme should ignore the system variant")
	}
	if light.Color(theme.ColorNameBackground, theme.VariantDark) == dark.Color(theme.ColorNameBackground, theme.VariantDark) {
		t.Error("Light and dark backgrounds should differ")
	}
	if system.Color(theme.ColorNameBackground, theme.VariantDark) != dark.Color(theme.ColorNameBackground, theme.VariantDark) {
		t.Error("System theme should follow the variant")
	}
	if dark.Size(theme.SizeNameText) != 13 {
		t.Errorf("Expected compact text size 13, got %v", dark.Size(theme.SizeNameText))
	}
}

func TestLocalization(t *testing.T) {
	l := NewLocalization()
	if l.GetText(KeyFile) != "File" {
		t.Errorf("Expected File, got %s", l.GetText(KeyFile))
	}

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected ru, got %s", l.GetCurrentLanguage())
	}
	if l.Format(KeyVersion, "1.0") != "Версия: 1.0" {
		t.Errorf("Unexpected formatted text: %s", l.Format(KeyVersion, "1.0"))
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Error("Unknown language should keep the current one")
	}
	if l.GetText("missing_key") != "missing_key" {
		t.Error("Missing keys should fall back to the key itself")
	}
}

func TestInspectionText(t *testing.T) {
	text := inspectionText(&shell.InspectionPlan{
		Frame:       7,
		Acquisition: model.AcquisitionInProgress,
		HasDrop:     true,
		Errors:      2,
		Layout: panel.LayoutState{
			"Graph": {Placement: model.PlacementHidden},
			"Log":   {Placement: model.PlacementSidebar},
		},
	})

	for _, want := range []string{"frame: 7", "drop queued", "errors: 2", "layout: Graph=hidden Log=sidebar"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in inspection text:\n%s", want, text)
		}
	}
}

func TestRootUI_Reconfigure(t *testing.T) {
	ui, _, _ := newTestRoot(t)
	ui.Frame()
	if ui.menuKey == "" {
		t.Fatal("Expected menu to be built")
	}

	s := config.Startup{}
	s.UI.Language = "ru"
	s.UI.FrameInterval = 250 * time.Millisecond
	ui.Reconfigure(s)

	if got := ui.localization.GetCurrentLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}
	if ui.interval != 250*time.Millisecond {
		t.Errorf("Expected interval 250ms, got %v", ui.interval)
	}
	if len(ui.reset) != 1 {
		t.Errorf("Expected a pending ticker reset, got %d", len(ui.reset))
	}
	if ui.menuKey == "" {
		t.Error("Expected menu rebuilt after reconfigure")
	}
}
