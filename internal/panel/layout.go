package panel

import (
	"log"

	"github.com/ytget/appshell/internal/model"
)

// State is the persisted state of one panel.
type State struct {
	Placement model.Placement `json:"placement"`
}

// LayoutState maps panel names to their persisted state.
type LayoutState map[string]State

// Clone returns an independent copy
func (l LayoutState) Clone() LayoutState {
	out := make(LayoutState, len(l))
	for name, st := range l {
		out[name] = st
	}
	return out
}

// Strategy selects how persisted layout is matched against the panel set.
type Strategy string

const (
	// ReconcileByCount reuses the persisted map verbatim when its size equals
	// the panel count and rebuilds it with defaults otherwise.
	ReconcileByCount Strategy = "count"

	// ReconcileByName keeps entries for names still registered, defaults new
	// names and drops entries of removed panels.
	ReconcileByName Strategy = "name"
)

// DefaultStrategy is used when none is configured
const DefaultStrategy = ReconcileByCount

// DefaultLayout returns a layout with every panel placed as a window
func DefaultLayout(names []string) LayoutState {
	layout := make(LayoutState, len(names))
	for _, name := range names {
		layout[name] = State{Placement: model.DefaultPlacement}
	}
	return layout
}

// Reconcile matches persisted layout against the freshly built panel names.
// A nil persisted map means no prior state exists.
func Reconcile(persisted LayoutState, names []string, strategy Strategy) LayoutState {
	if persisted == nil {
		return DefaultLayout(names)
	}

	switch strategy {
	case ReconcileByName:
		return reconcileByName(persisted, names)
	default:
		if len(persisted) != len(names) {
			log.Printf("panel: persisted layout has %d entries for %d panels, rebuilding", len(persisted), len(names))
			return DefaultLayout(names)
		}
		return sanitize(persisted.Clone())
	}
}

func reconcileByName(persisted LayoutState, names []string) LayoutState {
	layout := make(LayoutState, len(names))
	for _, name := range names {
		st, ok := persisted[name]
		if !ok || !st.Placement.IsValid() {
			st = State{Placement: model.DefaultPlacement}
		}
		layout[name] = st
	}
	if dropped := len(persisted) - countKnown(persisted, names); dropped > 0 {
		log.Printf("panel: dropped %d layout entries of removed panels", dropped)
	}
	return layout
}

func countKnown(persisted LayoutState, names []string) int {
	n := 0
	for _, name := range names {
		if _, ok := persisted[name]; ok {
			n++
		}
	}
	return n
}

// sanitize replaces unknown placement values written by other versions
func sanitize(layout LayoutState) LayoutState {
	for name, st := range layout {
		if !st.Placement.IsValid() {
			layout[name] = State{Placement: model.DefaultPlacement}
		}
	}
	return layout
}
