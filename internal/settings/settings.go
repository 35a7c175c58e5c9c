// Package settings models the settings modal: a navigation list on the left
// and a content area resolved from the current selection.
package settings

import "github.com/ytget/appshell/internal/model"

// Default values
const (
	DefaultMinWidthSidebar float32 = 200
	DefaultRightPanel              = true
)

// Settings is the persisted shell settings record.
type Settings struct {
	// Open reports whether the settings modal is shown
	Open bool `json:"open"`
	// MinWidthSidebar is the minimum side region width in pixels
	MinWidthSidebar float32 `json:"min_width_sidebar"`
	// RightPanel toggles the side region as a whole
	RightPanel bool `json:"right_panel"`
	// ShowInspection toggles the debug and inspection window
	ShowInspection bool `json:"show_inspection"`
	// Selected is the navigation cursor; it survives closing the modal
	Selected model.SelectedSetting `json:"selected_setting"`
}

// Default returns the settings of a fresh install
func Default() Settings {
	return Settings{
		MinWidthSidebar: DefaultMinWidthSidebar,
		RightPanel:      DefaultRightPanel,
		Selected:        model.General(),
	}
}

// Normalize repairs values a hand-edited or older state may carry
func (s *Settings) Normalize() {
	if s.MinWidthSidebar <= 0 {
		s.MinWidthSidebar = DefaultMinWidthSidebar
	}
	if s.Selected.IsZero() {
		s.Selected = model.General()
	}
}
