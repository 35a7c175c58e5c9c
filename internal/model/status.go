package model

// Placement is where a panel is displayed.
type Placement string

const (
	// PlacementWindow renders the panel in its own dismissible floating window
	PlacementWindow Placement = "window"

	// PlacementSidebar renders the panel inside the shared side region
	PlacementSidebar Placement = "sidebar"

	// PlacementHidden renders nothing for the panel
	PlacementHidden Placement = "hidden"
)

// DefaultPlacement is assigned to every panel whenever layout state is rebuilt.
const DefaultPlacement = PlacementWindow

// String returns the string representation of Placement
func (p Placement) String() string {
	return string(p)
}

// Label returns the human-friendly selector label.
func (p Placement) Label() string {
	switch p {
	case PlacementWindow:
		return "Window"
	case PlacementSidebar:
		return "Sidebar"
	case PlacementHidden:
		return "None"
	default:
		return "Unknown"
	}
}

// IsValid reports whether p is one of the known placements
func (p Placement) IsValid() bool {
	return p == PlacementWindow || p == PlacementSidebar || p == PlacementHidden
}

// IsVisible returns true if the panel renders anywhere
func (p Placement) IsVisible() bool {
	return p == PlacementWindow || p == PlacementSidebar
}

// Placements returns every placement in selector order.
func Placements() []Placement {
	return []Placement{PlacementSidebar, PlacementWindow, PlacementHidden}
}

// AcquisitionState is the outcome of a single file acquisition attempt.
type AcquisitionState string

const (
	// AcquisitionNotSelected means the user cancelled the dialog
	AcquisitionNotSelected AcquisitionState = "NotSelected"

	// AcquisitionInProgress means the dialog is still open or the file is being read
	AcquisitionInProgress AcquisitionState = "InProgress"

	// AcquisitionNoRequest means no dialog request is outstanding
	AcquisitionNoRequest AcquisitionState = "NoActiveRequest"

	// AcquisitionReady means the bytes are fully available
	AcquisitionReady AcquisitionState = "Ready"
)

// String returns the string representation of AcquisitionState
func (s AcquisitionState) String() string {
	return string(s)
}

// IsFinished returns true once the request produced an outcome
func (s AcquisitionState) IsFinished() bool {
	return s == AcquisitionNotSelected || s == AcquisitionReady
}

// PickerKind selects the file dialog implementation.
type PickerKind string

const (
	// PickerNative uses the operating system dialog
	PickerNative PickerKind = "native"

	// PickerFyne uses the in-window dialog, the only one available on the web
	PickerFyne PickerKind = "fyne"
)
