//go:build js

package acquire

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/appshell/internal/model"
)

// DefaultPicker returns the in-window dialog; browsers have no native one.
func DefaultPicker(_ model.PickerKind, window fyne.Window, extensions []string) Picker {
	return &FynePicker{Window: window, Extensions: dotted(extensions)}
}
