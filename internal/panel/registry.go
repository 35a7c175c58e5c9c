package panel

import (
	"fmt"

	"github.com/ytget/appshell/internal/model"
)

// Registry holds the session's panels in registration order and their layout.
// It is owned by the shell driver and only touched on the UI thread.
type Registry struct {
	panels []Panel
	layout LayoutState
}

// NewRegistry builds the registry and reconciles the persisted layout.
// Panel names must be unique.
func NewRegistry(panels []Panel, persisted LayoutState, strategy Strategy) (*Registry, error) {
	names := make([]string, 0, len(panels))
	seen := make(map[string]bool, len(panels))
	for _, p := range panels {
		name := p.Name()
		if seen[name] {
			return nil, fmt.Errorf("duplicate panel name: %q", name)
		}
		seen[name] = true
		names = append(names, name)
	}

	return &Registry{
		panels: append([]Panel(nil), panels...),
		layout: Reconcile(persisted, names, strategy),
	}, nil
}

// Panels returns the panels in registration order
func (r *Registry) Panels() []Panel {
	return append([]Panel(nil), r.panels...)
}

// Len returns the number of registered panels
func (r *Registry) Len() int {
	return len(r.panels)
}

// Lookup returns the panel with the given name
func (r *Registry) Lookup(name string) (Panel, bool) {
	for _, p := range r.panels {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Placement returns the current placement of a panel
func (r *Registry) Placement(name string) model.Placement {
	st, ok := r.layout[name]
	if !ok {
		return model.PlacementHidden
	}
	return st.Placement
}

// SetPlacement changes where a panel is shown. A registered panel missing
// from a reused layout gets its entry here.
func (r *Registry) SetPlacement(name string, placement model.Placement) error {
	if !placement.IsValid() {
		return fmt.Errorf("invalid placement: %q", placement)
	}
	if _, ok := r.Lookup(name); !ok {
		return fmt.Errorf("panel not found: %s", name)
	}
	r.layout[name] = State{Placement: placement}
	return nil
}

// CloseWindow handles the user closing a panel's floating window: the panel
// moves to the sidebar rather than disappearing.
func (r *Registry) CloseWindow(name string) {
	if r.Placement(name) == model.PlacementWindow {
		r.layout[name] = State{Placement: model.PlacementSidebar}
	}
}

// WindowPanels returns the panels to render as floating windows
func (r *Registry) WindowPanels() []Panel {
	return r.withPlacement(model.PlacementWindow)
}

// SidebarPanels returns the panels to render in the side region, in order
func (r *Registry) SidebarPanels() []Panel {
	return r.withPlacement(model.PlacementSidebar)
}

// HasSidebarPanels reports whether the side region has anything to show
func (r *Registry) HasSidebarPanels() bool {
	return len(r.SidebarPanels()) > 0
}

// SettingsPanels returns the panels currently reporting settings
func (r *Registry) SettingsPanels() []Panel {
	var out []Panel
	for _, p := range r.panels {
		if p.HasSettings() {
			out = append(out, p)
		}
	}
	return out
}

// UIPanels returns the panels currently reporting a main view
func (r *Registry) UIPanels() []Panel {
	var out []Panel
	for _, p := range r.panels {
		if p.HasUI() {
			out = append(out, p)
		}
	}
	return out
}

// Layout returns a copy of the layout for persistence
func (r *Registry) Layout() LayoutState {
	return r.layout.Clone()
}

func (r *Registry) withPlacement(placement model.Placement) []Panel {
	var out []Panel
	for _, p := range r.panels {
		if !p.HasUI() {
			continue
		}
		if r.Placement(p.Name()) == placement {
			out = append(out, p)
		}
	}
	return out
}
