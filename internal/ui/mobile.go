package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/appshell/internal/platform"
)

// MobileUI answers the layout questions that differ on phones and in the
// browser, where a second OS window cannot be opened.
type MobileUI struct {
	app    fyne.App
	mobile func() bool
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{
		app:    app,
		mobile: func() bool { return fyne.CurrentDevice().IsMobile() },
	}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.mobile()
}

// SupportsWindows reports whether floating panels get their own OS window
func (m *MobileUI) SupportsWindows() bool {
	return !m.IsMobileDevice() && platform.IsNative()
}

// InlineWindow wraps a floating panel shown inside the main window, with a
// close button in its header.
func (m *MobileUI) InlineWindow(title string, content fyne.CanvasObject, onClose func()) fyne.CanvasObject {
	closeBtn := widget.NewButton(IconClose, onClose)
	closeBtn.Importance = widget.LowImportance
	header := container.NewBorder(nil, nil, widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), closeBtn)
	if content == nil {
		content = widget.NewLabel(DashPlaceholder)
	}
	return widget.NewCard("", "", container.NewBorder(header, nil, nil, nil, content))
}
