package ui

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/appshell/internal/acquire"
	"github.com/ytget/appshell/internal/config"
	"github.com/ytget/appshell/internal/errorqueue"
	"github.com/ytget/appshell/internal/shell"
)

// RootUI renders the shell driver into the main window
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	driver       *shell.Driver
	store        *config.Store
	localization *Localization
	mobile       *MobileUI
	interval     time.Duration

	topBox     *fyne.Container
	centralBox *fyne.Container
	inlineBox  *fyne.Container
	sideBox    *fyne.Container
	sideMin    *canvas.Rectangle
	center     fyne.CanvasObject
	split      *container.Split
	body       *fyne.Container
	bottomBox  *fyne.Container
	separators []fyne.CanvasObject

	menuKey string
	windows map[string]*panelWindow
	inline  map[string]*panelWindow

	settingsUI *SettingsDialog
	errorPanel *ErrorPanel
	inspection *InspectionPanel

	drops    []acquire.DroppedFile
	reset    chan time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// panelWindow is a floating panel and the content it currently shows
type panelWindow struct {
	window  fyne.Window
	wrapper fyne.CanvasObject
	content fyne.CanvasObject
}

// NewRootUI creates and initializes the main UI
func NewRootUI(app fyne.App, window fyne.Window, driver *shell.Driver, store *config.Store, localization *Localization, interval time.Duration) *RootUI {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ui := &RootUI{
		app:          app,
		window:       window,
		driver:       driver,
		store:        store,
		localization: localization,
		mobile:       NewMobileUI(app),
		interval:     interval,
		windows:      make(map[string]*panelWindow),
		inline:       make(map[string]*panelWindow),
		reset:        make(chan time.Duration, 1),
		stop:         make(chan struct{}),
	}

	id := driver.Identity()
	window.SetTitle(id.Name)
	if icon := IconResource(id); icon != nil {
		window.SetIcon(icon)
	}
	driver.SetWindow(window)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges the static containers
func (ui *RootUI) setupUI() {
	ui.topBox = container.NewVBox()
	ui.centralBox = container.NewStack()
	ui.inlineBox = container.NewVBox()
	ui.center = container.NewBorder(nil, ui.inlineBox, nil, nil, ui.centralBox)

	ui.sideBox = container.NewVBox()
	ui.sideMin = canvas.NewRectangle(color.Transparent)
	side := container.NewStack(ui.sideMin, container.NewVScroll(ui.sideBox))
	ui.split = container.NewHSplit(ui.center, side)
	ui.split.Offset = SideSplitOffset

	ui.body = container.NewStack(ui.center)
	ui.bottomBox = container.NewVBox()

	ui.errorPanel = NewErrorPanel(ui.localization, func() {
		ui.driver.DismissErrors()
		ui.Frame()
	})
	ui.inspection = NewInspectionPanel(ui.localization)
	ui.settingsUI = NewSettingsDialog(ui.app, ui.window, ui.driver, ui.store, ui.localization, ui.Frame)

	ui.window.SetContent(container.NewBorder(ui.topBox, ui.bottomBox, nil, nil, ui.body))
	ui.window.SetOnDropped(ui.onDropped)

	log.Printf("ui: setup completed for %s", ui.driver.Identity().Name)
}

// Start renders the first frame and ticks the driver until Stop
func (ui *RootUI) Start() {
	ui.Frame()
	go func() {
		ticker := time.NewTicker(ui.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(ui.Frame)
			case d := <-ui.reset:
				ticker.Reset(d)
			case <-ui.stop:
				return
			}
		}
	}()
}

// Reconfigure applies a reloaded startup configuration. It must run on the
// UI goroutine.
func (ui *RootUI) Reconfigure(s config.Startup) {
	prev := ui.localization.GetCurrentLanguage()
	ui.localization.SetLanguage(s.UI.Language)
	if ui.localization.GetCurrentLanguage() != prev {
		ui.menuKey = ""
		ui.settingsUI.Invalidate()
	}
	if s.UI.FrameInterval > 0 && s.UI.FrameInterval != ui.interval {
		ui.interval = s.UI.FrameInterval
		select {
		case <-ui.reset:
		default:
		}
		ui.reset <- s.UI.FrameInterval
	}
	ui.Frame()
}

// Stop ends the frame loop
func (ui *RootUI) Stop() {
	ui.stopOnce.Do(func() {
		close(ui.stop)
	})
}

// Frame runs one driver frame and renders it. It must run on the UI goroutine.
func (ui *RootUI) Frame() {
	in := shell.FrameInput{Drops: ui.drops}
	ui.drops = nil
	ui.render(ui.driver.Frame(in))
}

func (ui *RootUI) render(plan shell.FramePlan) {
	ui.renderMenu(plan.Menu)
	setObjects(ui.topBox, nonNil(plan.Top))
	ui.renderSide(plan.Side)
	setObjects(ui.centralBox, nonNil(plan.Central))
	ui.renderWindows(plan.Windows)
	ui.settingsUI.Render(plan.Settings)
	ui.renderBottom(plan.Inspection, plan.Errors)

	if plan.Repaint {
		ui.window.Content().Refresh()
	}
}

// renderMenu rebuilds the main menu when its entries changed
func (ui *RootUI) renderMenu(menu shell.MenuPlan) {
	current := ui.store.GetTheme()
	key := fmt.Sprintf("%v|%v|%s|%s|%s", menu.Quit, menu.Open, menuItemsKey(menu.Host), menu.RepoURL, current)
	if key == ui.menuKey {
		return
	}
	ui.menuKey = key

	var items []*fyne.MenuItem
	if menu.Quit {
		quit := fyne.NewMenuItem(ui.localization.GetText(KeyQuit), func() {
			ui.app.Quit()
		})
		quit.IsQuit = true
		items = append(items, quit)
	}
	items = append(items, fyne.NewMenuItem(ui.localization.GetText(KeySettings), func() {
		ui.driver.OpenSettings()
		ui.Frame()
	}))
	if menu.Open {
		items = append(items, fyne.NewMenuItem(ui.localization.GetText(KeyOpen), func() {
			ui.driver.OpenFile(context.Background())
		}))
	}
	items = append(items, menu.Host...)

	themeItem := fyne.NewMenuItem(ui.localization.GetText(KeyTheme), nil)
	themeMenu := fyne.NewMenu(ui.localization.GetText(KeyTheme))
	for _, mode := range ui.store.GetThemeOptions() {
		mode := mode // Capture for closure
		item := fyne.NewMenuItem(mode.Label(), func() {
			ui.applyTheme(mode)
		})
		item.Checked = mode == current
		themeMenu.Items = append(themeMenu.Items, item)
	}
	themeItem.ChildMenu = themeMenu
	items = append(items, themeItem)

	if menu.RepoURL != "" {
		repo := menu.RepoURL
		items = append(items, fyne.NewMenuItem(ui.localization.GetText(KeyRepo), func() {
			ui.openURL(repo)
		}))
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu(ui.localization.GetText(KeyFile), items...)))
}

func menuItemsKey(items []*fyne.MenuItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%p:%s:%v:%v", item, item.Label, item.Checked, item.Disabled))
	}
	return strings.Join(parts, ",")
}

// applyTheme stores and applies a theme preference
func (ui *RootUI) applyTheme(mode config.ThemeMode) {
	ui.store.SetTheme(mode)
	ui.app.Settings().SetTheme(NewShellTheme(mode))
	ui.menuKey = ""
	ui.Frame()
}

// openURL opens a link in the browser, reporting failures to the error queue
func (ui *RootUI) openURL(raw string) {
	u, err := url.Parse(raw)
	if err != nil {
		ui.driver.Report(errorqueue.Wrap("Invalid link", err))
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		ui.driver.Report(errorqueue.Wrap(fmt.Sprintf("Cannot open %s", raw), err))
	}
}

// renderSide shows the split with the side region, or the central area alone
func (ui *RootUI) renderSide(side *shell.SidePlan) {
	if side == nil {
		setObjects(ui.body, []fyne.CanvasObject{ui.center})
		return
	}

	ui.sideMin.SetMinSize(fyne.NewSize(side.MinWidth, 0))

	var objs []fyne.CanvasObject
	if side.Host != nil {
		objs = append(objs, side.Host)
	}
	for _, view := range side.Panels {
		if view.Content == nil {
			continue
		}
		if len(objs) > 0 {
			objs = append(objs, ui.separator(len(objs)))
		}
		objs = append(objs, view.Content)
	}
	setObjects(ui.sideBox, objs)
	setObjects(ui.body, []fyne.CanvasObject{ui.split})
}

// separator returns a stable separator for position i of the side region
func (ui *RootUI) separator(i int) fyne.CanvasObject {
	for len(ui.separators) <= i {
		ui.separators = append(ui.separators, widget.NewSeparator())
	}
	return ui.separators[i]
}

// renderWindows keeps one floating window per window-placed panel. Targets
// without OS windows show the panels inline below the central area.
func (ui *RootUI) renderWindows(views []shell.PanelView) {
	if !ui.mobile.SupportsWindows() {
		ui.renderInline(views)
		return
	}

	seen := make(map[string]bool, len(views))
	for _, view := range views {
		seen[view.Name] = true
		pw, ok := ui.windows[view.Name]
		if !ok {
			pw = ui.openWindow(view.Name)
		}
		if pw.content != view.Content || pw.wrapper == nil {
			pw.content = view.Content
			pw.wrapper = placeholder(view.Content)
			pw.window.SetContent(pw.wrapper)
		}
	}
	for name, pw := range ui.windows {
		if !seen[name] {
			pw.window.Close()
			delete(ui.windows, name)
		}
	}
}

func (ui *RootUI) openWindow(name string) *panelWindow {
	w := ui.app.NewWindow(name)
	w.Resize(fyne.NewSize(PanelWindowWidth, PanelWindowHeight))
	w.SetCloseIntercept(func() {
		log.Printf("ui: panel window %s closed", name)
		ui.driver.CloseWindow(name)
		if pw, ok := ui.windows[name]; ok {
			pw.window.Close()
			delete(ui.windows, name)
		}
		ui.Frame()
	})
	pw := &panelWindow{window: w}
	ui.windows[name] = pw
	w.Show()
	return pw
}

func (ui *RootUI) renderInline(views []shell.PanelView) {
	objs := make([]fyne.CanvasObject, 0, len(views))
	seen := make(map[string]bool, len(views))
	for _, view := range views {
		seen[view.Name] = true
		pw, ok := ui.inline[view.Name]
		if !ok || pw.content != view.Content {
			name := view.Name
			pw = &panelWindow{
				content: view.Content,
				wrapper: ui.mobile.InlineWindow(name, view.Content, func() {
					ui.driver.CloseWindow(name)
					ui.Frame()
				}),
			}
			ui.inline[name] = pw
		}
		objs = append(objs, pw.wrapper)
	}
	for name := range ui.inline {
		if !seen[name] {
			delete(ui.inline, name)
		}
	}
	setObjects(ui.inlineBox, objs)
}

// renderBottom docks the inspection and error panels under the body
func (ui *RootUI) renderBottom(inspection *shell.InspectionPlan, errs *shell.ErrorsPlan) {
	var objs []fyne.CanvasObject
	if inspection != nil {
		ui.inspection.Update(inspection)
		objs = append(objs, ui.inspection.Object())
	}
	if errs != nil {
		ui.errorPanel.Update(errs)
		objs = append(objs, ui.errorPanel.Object())
	}
	setObjects(ui.bottomBox, objs)
}

// onDropped queues the dropped URIs for the next frame
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	ui.drops = append(ui.drops, droppedFiles(uris)...)
}

// droppedFiles converts dropped URIs; local files are read from their path
func droppedFiles(uris []fyne.URI) []acquire.DroppedFile {
	files := make([]acquire.DroppedFile, 0, len(uris))
	for _, u := range uris {
		if u == nil {
			continue
		}
		file := acquire.DroppedFile{Name: u.Name()}
		if u.Scheme() == "file" {
			file.Path = u.Path()
		} else {
			file.URI = u
		}
		files = append(files, file)
	}
	return files
}

// setObjects replaces the container children when they changed
func setObjects(c *fyne.Container, objs []fyne.CanvasObject) {
	if sameObjects(c.Objects, objs) {
		return
	}
	c.Objects = objs
	c.Refresh()
}

func sameObjects(a, b []fyne.CanvasObject) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func nonNil(obj fyne.CanvasObject) []fyne.CanvasObject {
	if obj == nil {
		return nil
	}
	return []fyne.CanvasObject{obj}
}

// placeholder shows a dash for panels that draw nothing
func placeholder(obj fyne.CanvasObject) fyne.CanvasObject {
	if obj == nil {
		return widget.NewLabel(DashPlaceholder)
	}
	return obj
}
