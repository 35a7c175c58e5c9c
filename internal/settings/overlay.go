package settings

import (
	"fmt"
	"log"

	"github.com/ytget/appshell/internal/model"
	"github.com/ytget/appshell/internal/panel"
)

// Navigation labels
const (
	LabelGeneral     = "General"
	LabelPanelLayout = "Panel layout"
	Title            = "Settings"
)

// NavEntry is one row of the navigation list.
type NavEntry struct {
	Label   string
	Setting model.SelectedSetting
}

// ContentKind tells the presentation layer what to draw on the right.
type ContentKind string

const (
	ContentGeneral     ContentKind = "general"
	ContentPanelLayout ContentKind = "panel_layout"
	ContentPanel       ContentKind = "panel"
)

// Content is the resolved content area.
type Content struct {
	Kind    ContentKind
	Heading string
	Panel   panel.Panel // set for ContentPanel
}

// LayoutRow is one placement selector of the panel layout page.
type LayoutRow struct {
	Name    string
	Current model.Placement
	Options []model.Placement
}

// About is the read-only identity shown on the general page.
type About struct {
	Name    string
	Version string
	RepoURL string
}

// GeneralActions are the process-wide actions of the general page.
type GeneralActions interface {
	SaveNow() error
	ResetErrors()
	SetErrorsVisible(visible bool)
	ErrorsVisible() bool
	SetInspection(visible bool)
	About() About
}

// Overlay drives the settings modal over the shell settings and registry.
type Overlay struct {
	settings *Settings
	registry *panel.Registry
}

// NewOverlay creates an overlay editing s and r in place
func NewOverlay(s *Settings, r *panel.Registry) *Overlay {
	s.Normalize()
	return &Overlay{settings: s, registry: r}
}

// IsOpen reports whether the modal is shown
func (o *Overlay) IsOpen() bool {
	return o.settings.Open
}

// Show opens the modal at the last selected entry
func (o *Overlay) Show() {
	o.settings.Open = true
}

// Close hides the modal; the selection is kept for the next open
func (o *Overlay) Close() {
	o.settings.Open = false
}

// Selected returns the navigation cursor
func (o *Overlay) Selected() model.SelectedSetting {
	return o.settings.Selected
}

// Select moves the navigation cursor
func (o *Overlay) Select(sel model.SelectedSetting) {
	if sel.IsZero() {
		sel = model.General()
	}
	if sel != o.settings.Selected {
		log.Printf("settings: selected %s", sel)
	}
	o.settings.Selected = sel
}

// Nav returns General, Panel layout, then one entry per panel that currently
// has settings, in registration order.
func (o *Overlay) Nav() []NavEntry {
	entries := []NavEntry{
		{Label: LabelGeneral, Setting: model.General()},
		{Label: LabelPanelLayout, Setting: model.PanelLayout()},
	}
	for _, p := range o.registry.SettingsPanels() {
		entries = append(entries, NavEntry{Label: p.Name(), Setting: model.Named(p.Name())})
	}
	return entries
}

// Content resolves the current selection. A named selection whose panel is
// gone or no longer has settings shows the general page.
func (o *Overlay) Content() Content {
	sel := o.settings.Selected
	switch sel.Kind {
	case model.SettingPanelLayout:
		return Content{Kind: ContentPanelLayout, Heading: "Panels"}
	case model.SettingNamed:
		if p, ok := o.registry.Lookup(sel.Name); ok && p.HasSettings() {
			return Content{Kind: ContentPanel, Heading: fmt.Sprintf("%s settings", p.Name()), Panel: p}
		}
	}
	return Content{Kind: ContentGeneral, Heading: LabelGeneral}
}

// LayoutRows returns one selector per panel with a main view. When the host
// has no side region, sidebar is not offered and panels placed there are
// moved to hidden.
func (o *Overlay) LayoutRows(sidebarSupported bool) []LayoutRow {
	var rows []LayoutRow
	for _, p := range o.registry.UIPanels() {
		name := p.Name()
		current := o.registry.Placement(name)
		if !sidebarSupported && current == model.PlacementSidebar {
			if err := o.registry.SetPlacement(name, model.PlacementHidden); err == nil {
				log.Printf("settings: no side region, hiding %s", name)
				current = model.PlacementHidden
			}
		}
		rows = append(rows, LayoutRow{
			Name:    name,
			Current: current,
			Options: placementOptions(sidebarSupported),
		})
	}
	return rows
}

// SetPlacement applies a selector choice from the panel layout page
func (o *Overlay) SetPlacement(name string, placement model.Placement, sidebarSupported bool) error {
	if placement == model.PlacementSidebar && !sidebarSupported {
		return fmt.Errorf("side region is not available")
	}
	return o.registry.SetPlacement(name, placement)
}

// Footer returns the "name@version" label of the modal footer
func Footer(about About) string {
	return fmt.Sprintf("%s@%s", about.Name, about.Version)
}

func placementOptions(sidebarSupported bool) []model.Placement {
	if sidebarSupported {
		return model.Placements()
	}
	return []model.Placement{model.PlacementWindow, model.PlacementHidden}
}
