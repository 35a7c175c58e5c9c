package ui

import (
	"fmt"
	"image/color"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/appshell/internal/config"
	"github.com/ytget/appshell/internal/errorqueue"
	"github.com/ytget/appshell/internal/model"
	"github.com/ytget/appshell/internal/settings"
	"github.com/ytget/appshell/internal/shell"
)

// SettingsDialog represents the settings modal: navigation on the left, the
// selected page on the right and a footer with the close button.
type SettingsDialog struct {
	app          fyne.App
	window       fyne.Window
	driver       *shell.Driver
	store        *config.Store
	localization *Localization
	onChange     func()

	popup      *widget.PopUp
	navBox     *fyne.Container
	contentBox *fyne.Container
	footer     *widget.Label
	key        string
}

// NewSettingsDialog creates a new settings dialog. onChange runs after every
// user action so the next frame shows its effect immediately.
func NewSettingsDialog(app fyne.App, window fyne.Window, driver *shell.Driver, store *config.Store, localization *Localization, onChange func()) *SettingsDialog {
	return &SettingsDialog{
		app:          app,
		window:       window,
		driver:       driver,
		store:        store,
		localization: localization,
		onChange:     onChange,
	}
}

// Render shows the modal for plan, or hides it when plan is nil
func (sd *SettingsDialog) Render(plan *shell.SettingsPlan) {
	if plan == nil {
		if sd.popup != nil && sd.popup.Visible() {
			sd.popup.Hide()
		}
		sd.key = ""
		return
	}

	if sd.popup == nil {
		sd.createUI()
	}

	if key := sd.planKey(plan); key != sd.key {
		sd.key = key
		sd.footer.SetText(plan.Footer)
		sd.navBox.Objects = sd.navButtons(plan)
		sd.navBox.Refresh()
		sd.contentBox.Objects = []fyne.CanvasObject{sd.page(plan)}
		sd.contentBox.Refresh()
	}

	if !sd.popup.Visible() {
		sd.popup.Show()
	}
}

// createUI creates the modal skeleton
func (sd *SettingsDialog) createUI() {
	sd.navBox = container.NewVBox()
	sd.contentBox = container.NewVBox()
	sd.footer = widget.NewLabel("")

	closeBtn := widget.NewButton(sd.localization.GetText(KeyClose), func() {
		sd.driver.CloseSettings()
		sd.changed()
	})

	navMin := canvas.NewRectangle(color.Transparent)
	navMin.SetMinSize(fyne.NewSize(NavMinWidth, 0))
	nav := container.NewStack(navMin, container.NewVScroll(sd.navBox))

	title := widget.NewLabelWithStyle(settings.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	footer := container.NewBorder(widget.NewSeparator(), nil, nil, closeBtn, sd.footer)

	content := container.NewBorder(title, footer, container.NewHBox(nav, widget.NewSeparator()), nil,
		container.NewVScroll(container.NewPadded(sd.contentBox)))

	sd.popup = widget.NewModalPopUp(content, sd.window.Canvas())
	sd.popup.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

func (sd *SettingsDialog) changed() {
	if sd.onChange != nil {
		sd.onChange()
	}
}

// Invalidate makes the next Render rebuild the whole modal, e.g. after a
// language change
func (sd *SettingsDialog) Invalidate() {
	if sd.popup != nil {
		sd.popup.Hide()
		sd.popup = nil
	}
	sd.key = ""
}

// planKey identifies what the modal shows; the page is rebuilt when it changes
func (sd *SettingsDialog) planKey(plan *shell.SettingsPlan) string {
	var b strings.Builder
	for _, entry := range plan.Nav {
		b.WriteString(entry.Label + ";")
	}
	fmt.Fprintf(&b, "|%s|%s|%p|%v", plan.Selected, plan.Content.Kind, plan.Body, plan.SidebarSupported)
	for _, row := range plan.Rows {
		fmt.Fprintf(&b, "|%s=%s", row.Name, row.Current)
	}
	if plan.Content.Kind == settings.ContentGeneral {
		s := sd.driver.Settings()
		fmt.Fprintf(&b, "|%v|%v|%v|%s", sd.driver.ErrorsVisible(), s.ShowInspection, s.RightPanel, sd.store.GetTheme())
	}
	return b.String()
}

func (sd *SettingsDialog) navButtons(plan *shell.SettingsPlan) []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(plan.Nav))
	for _, entry := range plan.Nav {
		sel := entry.Setting // Capture for closure
		btn := widget.NewButton(entry.Label, func() {
			sd.driver.SelectSetting(sel)
			sd.changed()
		})
		btn.Alignment = widget.ButtonAlignLeading
		if sel == plan.Selected {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		objs = append(objs, btn)
	}
	return objs
}

func (sd *SettingsDialog) page(plan *shell.SettingsPlan) fyne.CanvasObject {
	switch plan.Content.Kind {
	case settings.ContentPanelLayout:
		return sd.layoutPage(plan)
	case settings.ContentPanel:
		return container.NewVBox(
			heading(plan.Content.Heading),
			widget.NewSeparator(),
			placeholder(plan.Body),
		)
	default:
		return sd.generalPage(plan.About)
	}
}

// generalPage holds the process-wide actions, the theme and the about block
func (sd *SettingsDialog) generalPage(about settings.About) fyne.CanvasObject {
	loc := sd.localization
	current := sd.driver.Settings()

	saveBtn := widget.NewButton(IconReset, func() {
		if err := sd.driver.SaveNow(); err == nil {
			log.Printf("ui: %s", loc.GetText(KeyStorageSaved))
		}
		sd.changed()
	})
	resetBtn := widget.NewButton(IconReset, func() {
		sd.driver.ResetErrors()
		sd.changed()
	})

	errorsCheck := widget.NewCheck(loc.GetText(KeyShowErrorPanel), nil)
	errorsCheck.Checked = sd.driver.ErrorsVisible()
	errorsCheck.OnChanged = func(on bool) {
		sd.driver.SetErrorsVisible(on)
		sd.changed()
	}

	debugCheck := widget.NewCheck(loc.GetText(KeyShowDebugPanel), nil)
	debugCheck.Checked = current.ShowInspection
	debugCheck.OnChanged = func(on bool) {
		sd.driver.SetInspection(on)
		sd.changed()
	}

	sideCheck := widget.NewCheck(loc.GetText(KeyShowSidebar), nil)
	sideCheck.Checked = current.RightPanel
	sideCheck.OnChanged = func(on bool) {
		sd.driver.SetRightPanel(on)
		sd.changed()
	}

	themes := sd.store.GetThemeOptions()
	labels := make([]string, 0, len(themes))
	for _, mode := range themes {
		labels = append(labels, mode.Label())
	}
	themeGroup := widget.NewRadioGroup(labels, nil)
	themeGroup.Horizontal = true
	themeGroup.Required = true
	themeGroup.Selected = sd.store.GetTheme().Label()
	themeGroup.OnChanged = func(label string) {
		for _, mode := range themes {
			if mode.Label() == label {
				sd.store.SetTheme(mode)
				sd.app.Settings().SetTheme(NewShellTheme(mode))
			}
		}
		sd.changed()
	}

	objs := []fyne.CanvasObject{
		heading(loc.Format(KeyGeneralSettings, about.Name)),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, saveBtn, widget.NewLabel(loc.Format(KeyResetStorage, about.Name))),
		container.NewBorder(nil, nil, nil, resetBtn, widget.NewLabel(loc.Format(KeyResetErrors, sd.driver.ErrorsTitle()))),
		errorsCheck,
		debugCheck,
		sideCheck,
		widget.NewSeparator(),
		heading(loc.GetText(KeyTheme)),
		themeGroup,
		widget.NewSeparator(),
		heading(loc.GetText(KeyAbout)),
		widget.NewLabel(loc.Format(KeyVersion, about.Version)),
	}
	if u, err := url.Parse(about.RepoURL); err == nil && about.RepoURL != "" {
		objs = append(objs, widget.NewHyperlink(loc.Format(KeyRepository, about.Name), u))
	}
	return container.NewVBox(objs...)
}

// layoutPage offers one placement selector per panel with a main view
func (sd *SettingsDialog) layoutPage(plan *shell.SettingsPlan) fyne.CanvasObject {
	objs := []fyne.CanvasObject{heading(plan.Content.Heading), widget.NewSeparator()}
	for _, row := range plan.Rows {
		objs = append(objs, sd.placementRow(row))
	}
	return container.NewVBox(objs...)
}

func (sd *SettingsDialog) placementRow(row settings.LayoutRow) fyne.CanvasObject {
	labels := make([]string, 0, len(row.Options))
	byLabel := make(map[string]model.Placement, len(row.Options))
	for _, p := range row.Options {
		labels = append(labels, p.Label())
		byLabel[p.Label()] = p
	}

	name := row.Name // Capture for closure
	group := widget.NewRadioGroup(labels, nil)
	group.Horizontal = true
	group.Required = true
	group.Selected = row.Current.Label()
	group.OnChanged = func(label string) {
		placement, ok := byLabel[label]
		if !ok {
			return
		}
		if err := sd.driver.SetPlacement(name, placement); err != nil {
			sd.driver.Report(errorqueue.Wrap(fmt.Sprintf("Cannot move %s", name), err))
		}
		sd.changed()
	}
	return container.NewBorder(nil, nil, widget.NewLabel(name), nil, group)
}

func heading(text string) fyne.CanvasObject {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}
