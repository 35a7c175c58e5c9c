//go:build !js

package acquire

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/appshell/internal/model"
)

// DefaultPicker returns the dialog for this target. Native builds use the OS
// dialog unless kind asks for the in-window one.
func DefaultPicker(kind model.PickerKind, window fyne.Window, extensions []string) Picker {
	if kind == model.PickerFyne {
		return &FynePicker{Window: window, Extensions: dotted(extensions)}
	}
	p := &NativePicker{}
	if len(extensions) > 0 {
		p.Filters = []Filter{{Description: "Supported files", Extensions: undotted(extensions)}}
	}
	return p
}
