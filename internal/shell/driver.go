package shell

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/appshell/internal/acquire"
	"github.com/ytget/appshell/internal/config"
	"github.com/ytget/appshell/internal/errorqueue"
	"github.com/ytget/appshell/internal/model"
	"github.com/ytget/appshell/internal/panel"
	"github.com/ytget/appshell/internal/platform"
	"github.com/ytget/appshell/internal/settings"
)

// Options configures a Driver.
type Options struct {
	Identity Identity
	// Args are the process arguments handed to the factory
	Args []string
	// Strategy reconciles the persisted panel layout, ReconcileByCount if empty
	Strategy panel.Strategy
	// Picker opens the file dialog; it may be set later with SetPicker
	Picker acquire.Picker
	// Window is passed to hooks through the render context
	Window fyne.Window
}

// Driver orchestrates one host application. It is not safe for concurrent
// use: every method runs on the UI goroutine, as fyne.Do callbacks do.
type Driver struct {
	app      App
	identity Identity
	store    StateStore

	settings *settings.Settings
	overlay  *settings.Overlay
	registry *panel.Registry
	errors   *errorqueue.Queue
	files    *acquire.Pipeline
	window   fyne.Window

	frame uint64
}

// New loads the persisted state, builds the host application and its panel
// registry. Prior state the host cannot read is discarded.
func New(factory Factory, store StateStore, opts Options) (*Driver, error) {
	s := settings.Default()
	var (
		appState json.RawMessage
		layout   panel.LayoutState
	)
	if prior := store.Load(); prior != nil {
		appState = prior.App
		s = prior.Settings
		layout = prior.PanelLayout
	}

	app, err := factory(appState, opts.Args)
	if err != nil && appState != nil {
		log.Printf("shell: discarding prior state of %s: %v", opts.Identity.Name, err)
		app, err = factory(nil, opts.Args)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", opts.Identity.Name, err)
	}

	registry, err := panel.NewRegistry(app.Panels(), layout, opts.Strategy)
	if err != nil {
		return nil, fmt.Errorf("register panels: %w", err)
	}

	d := &Driver{
		app:      app,
		identity: opts.Identity,
		store:    store,
		settings: &s,
		registry: registry,
		errors:   errorqueue.NewQueue(),
		files:    acquire.NewPipeline(opts.Picker),
		window:   opts.Window,
	}
	d.overlay = settings.NewOverlay(d.settings, registry)

	log.Printf("shell: %s %s started with %d panel(s)", opts.Identity.Name, opts.Identity.Version, registry.Len())
	return d, nil
}

// App returns the host application
func (d *Driver) App() App {
	return d.app
}

// Identity returns the host identity
func (d *Driver) Identity() Identity {
	return d.identity
}

// Registry returns the panel registry
func (d *Driver) Registry() *panel.Registry {
	return d.registry
}

// Overlay returns the settings overlay
func (d *Driver) Overlay() *settings.Overlay {
	return d.overlay
}

// Settings returns a copy of the shell settings
func (d *Driver) Settings() settings.Settings {
	return *d.settings
}

// SetWindow sets the window handed to hooks
func (d *Driver) SetWindow(w fyne.Window) {
	d.window = w
}

// SetPicker replaces the file dialog implementation
func (d *Driver) SetPicker(p acquire.Picker) {
	d.files.SetPicker(p)
}

// Report records an error raised outside of a frame, e.g. by a menu action
func (d *Driver) Report(err error) {
	d.errors.Record(err)
}

func (d *Driver) renderContext() panel.RenderContext {
	return panel.RenderContext{Errors: d.errors, Window: d.window}
}

// sidebarSupported reports whether the host has a side region to offer
func (d *Driver) sidebarSupported() bool {
	return d.app.IsSidePanel()
}

// Frame runs one frame: top region, side region, central region and floating
// windows, file acquisition, then the inspection, settings and error overlays.
func (d *Driver) Frame(in FrameInput) FramePlan {
	d.frame++
	ctx := d.renderContext()
	var plan FramePlan

	// Top
	plan.Menu = MenuPlan{
		Quit:    platform.IsNative(),
		Open:    d.app.IsOpenButton(),
		Host:    d.app.MenuFile(ctx),
		RepoURL: d.identity.RepoURL,
	}
	plan.Top = d.app.TopPanel(ctx)
	plan.add(RegionTop)

	// Side
	if d.settings.RightPanel && (d.app.IsSidePanel() || d.registry.HasSidebarPanels()) {
		side := &SidePlan{MinWidth: d.settings.MinWidthSidebar}
		if d.app.IsSidePanel() {
			side.Host = d.app.SidePanel(ctx)
		}
		side.Panels = render(d.registry.SidebarPanels(), ctx)
		plan.Side = side
		plan.add(RegionSide)
	}

	// Central and floating windows
	plan.Central = d.app.CentralPanel(ctx)
	plan.add(RegionCentral)
	if windows := d.registry.WindowPanels(); len(windows) > 0 {
		plan.Windows = render(windows, ctx)
		plan.add(RegionWindows)
	}

	// Files
	if len(in.Drops) > 0 {
		d.files.Drop(in.Drops...)
	}
	d.routeFile(&plan)
	plan.add(RegionFiles)

	// Overlays
	if d.settings.ShowInspection {
		plan.Inspection = d.inspection()
		plan.add(RegionInspection)
	}
	if d.overlay.IsOpen() {
		plan.Settings = d.settingsPlan(ctx)
		plan.add(RegionSettings)
	}

	// Errors
	open := d.errors.BeginFrame()
	if open {
		plan.Errors = &ErrorsPlan{Title: d.errors.Title(), Errors: d.errors.Drain()}
		plan.add(RegionErrors)
	}
	d.errors.EndFrame(open)

	return plan
}

// routeFile polls the pipeline and hands a ready file to the host
func (d *Driver) routeFile(plan *FramePlan) {
	file, err := d.files.Poll()
	if err != nil {
		d.errors.Record(err)
		return
	}
	if file == nil {
		return
	}

	plan.File = file
	if err := d.app.HandleFile(*file); err != nil {
		log.Printf("shell: %s rejected %s: %v", d.identity.Name, file.GetDisplayName(), err)
		d.errors.Record(err)
		return
	}
	log.Printf("shell: %s ingested %s (%d bytes)", d.identity.Name, file.GetDisplayName(), file.Len())
	plan.Repaint = true
}

func render(panels []panel.Panel, ctx panel.RenderContext) []PanelView {
	views := make([]PanelView, 0, len(panels))
	for _, p := range panels {
		views = append(views, PanelView{Name: p.Name(), Content: p.RenderUI(ctx)})
	}
	return views
}

func (d *Driver) settingsPlan(ctx panel.RenderContext) *SettingsPlan {
	supported := d.sidebarSupported()
	sp := &SettingsPlan{
		Nav:              d.overlay.Nav(),
		Selected:         d.overlay.Selected(),
		Content:          d.overlay.Content(),
		SidebarSupported: supported,
		About:            d.About(),
	}
	sp.Footer = settings.Footer(sp.About)

	switch sp.Content.Kind {
	case settings.ContentPanelLayout:
		sp.Rows = d.overlay.LayoutRows(supported)
	case settings.ContentPanel:
		sp.Body = sp.Content.Panel.RenderSettings(ctx)
	}
	return sp
}

func (d *Driver) inspection() *InspectionPlan {
	state, _ := d.files.State()
	return &InspectionPlan{
		Frame:       d.frame,
		Acquisition: state,
		HasDrop:     d.files.HasDrop(),
		Errors:      d.errors.Len(),
		Settings:    *d.settings,
		Layout:      d.registry.Layout(),
	}
}

// DismissErrors closes the error window, clearing every pending error
func (d *Driver) DismissErrors() {
	d.errors.EndFrame(false)
}

// CloseWindow handles the close button of a floating panel window
func (d *Driver) CloseWindow(name string) {
	d.registry.CloseWindow(name)
}

// OpenSettings shows the settings modal
func (d *Driver) OpenSettings() {
	d.overlay.Show()
}

// CloseSettings hides the settings modal
func (d *Driver) CloseSettings() {
	d.overlay.Close()
}

// SelectSetting moves the settings navigation cursor
func (d *Driver) SelectSetting(sel model.SelectedSetting) {
	d.overlay.Select(sel)
}

// SetPlacement applies a choice of the panel layout page
func (d *Driver) SetPlacement(name string, placement model.Placement) error {
	return d.overlay.SetPlacement(name, placement, d.sidebarSupported())
}

// SetRightPanel toggles the side region as a whole
func (d *Driver) SetRightPanel(on bool) {
	d.settings.RightPanel = on
}

// OpenFile starts a file dialog request
func (d *Driver) OpenFile(ctx context.Context) {
	d.files.StartPick(ctx)
}

// Save persists the shell and host state now
func (d *Driver) Save() error {
	raw, err := json.Marshal(d.app.State())
	if err != nil {
		return fmt.Errorf("encode %s state: %w", d.identity.Name, err)
	}
	st := &config.PersistedState{
		App:         raw,
		Settings:    *d.settings,
		PanelLayout: d.registry.Layout(),
	}
	if err := d.store.Save(st); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Shutdown saves the state on exit
func (d *Driver) Shutdown() {
	if err := d.Save(); err != nil {
		log.Printf("shell: %v", err)
		return
	}
	log.Printf("shell: %s state saved on exit", d.identity.Name)
}

// SaveNow implements settings.GeneralActions
func (d *Driver) SaveNow() error {
	if err := d.Save(); err != nil {
		d.errors.Record(errorqueue.Wrap("Cannot save storage", err))
		return err
	}
	return nil
}

// ResetErrors drops every pending error and closes the error window
func (d *Driver) ResetErrors() {
	d.errors.Reset()
}

// SetErrorsVisible shows or hides the error window
func (d *Driver) SetErrorsVisible(visible bool) {
	d.errors.SetOpen(visible)
}

// ErrorsTitle returns the error window title
func (d *Driver) ErrorsTitle() string {
	return d.errors.Title()
}

// ErrorsVisible reports whether the error window is shown
func (d *Driver) ErrorsVisible() bool {
	return d.errors.IsOpen()
}

// SetInspection toggles the debug window
func (d *Driver) SetInspection(visible bool) {
	d.settings.ShowInspection = visible
}

// About returns the identity shown on the general page
func (d *Driver) About() settings.About {
	return settings.About{
		Name:    d.identity.Name,
		Version: d.identity.Version,
		RepoURL: d.identity.RepoURL,
	}
}

var _ settings.GeneralActions = (*Driver)(nil)
