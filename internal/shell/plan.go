package shell

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/appshell/internal/acquire"
	"github.com/ytget/appshell/internal/errorqueue"
	"github.com/ytget/appshell/internal/model"
	"github.com/ytget/appshell/internal/panel"
	"github.com/ytget/appshell/internal/settings"
)

// Region names one step of a frame.
type Region string

const (
	RegionTop        Region = "top"
	RegionSide       Region = "side"
	RegionCentral    Region = "central"
	RegionWindows    Region = "windows"
	RegionFiles      Region = "files"
	RegionInspection Region = "inspection"
	RegionSettings   Region = "settings"
	RegionErrors     Region = "errors"
)

// FrameInput carries what the windowing layer observed since the last frame.
type FrameInput struct {
	// Drops is the dropped-files list of this frame, usually empty
	Drops []acquire.DroppedFile
}

// PanelView is one rendered panel.
type PanelView struct {
	Name    string
	Content fyne.CanvasObject
}

// MenuPlan describes the File menu.
type MenuPlan struct {
	Quit    bool
	Open    bool
	Host    []*fyne.MenuItem
	RepoURL string
}

// SidePlan describes the side region: the host's own content followed by the
// sidebar panels in registration order.
type SidePlan struct {
	MinWidth float32
	Host     fyne.CanvasObject
	Panels   []PanelView
}

// SettingsPlan describes the open settings modal.
type SettingsPlan struct {
	Nav              []settings.NavEntry
	Selected         model.SelectedSetting
	Content          settings.Content
	Body             fyne.CanvasObject    // panel settings, ContentPanel only
	Rows             []settings.LayoutRow // ContentPanelLayout only
	SidebarSupported bool
	About            settings.About
	Footer           string
}

// ErrorsPlan describes the open error window.
type ErrorsPlan struct {
	Title  string
	Errors []*errorqueue.AppError
}

// InspectionPlan is the content of the debug window.
type InspectionPlan struct {
	Frame       uint64
	Acquisition model.AcquisitionState
	HasDrop     bool
	Errors      int
	Settings    settings.Settings
	Layout      panel.LayoutState
}

// FramePlan is the result of one frame. Order lists the regions in the order
// they were produced; optional regions are nil when not shown.
type FramePlan struct {
	Order []Region

	Menu       MenuPlan
	Top        fyne.CanvasObject
	Side       *SidePlan
	Central    fyne.CanvasObject
	Windows    []PanelView
	File       *model.File
	Repaint    bool
	Inspection *InspectionPlan
	Settings   *SettingsPlan
	Errors     *ErrorsPlan
}

func (p *FramePlan) add(r Region) {
	p.Order = append(p.Order, r)
}
