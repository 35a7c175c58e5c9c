package ui

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/appshell/internal/shell"
)

// ErrorPanel is the docked error window
type ErrorPanel struct {
	localization *Localization
	title        *widget.Label
	list         *fyne.Container
	object       fyne.CanvasObject
	key          string
}

// NewErrorPanel creates the error panel; onClose dismisses every error
func NewErrorPanel(localization *Localization, onClose func()) *ErrorPanel {
	p := &ErrorPanel{
		localization: localization,
		title:        widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		list:         container.NewVBox(),
	}

	closeBtn := widget.NewButton(IconClose, onClose)
	closeBtn.Importance = widget.LowImportance

	scroll := container.NewVScroll(p.list)
	scroll.SetMinSize(fyne.NewSize(0, ErrorPanelMaxHeight))

	header := container.NewBorder(nil, nil, p.title, closeBtn)
	p.object = widget.NewCard("", "", container.NewBorder(header, nil, nil, nil, scroll))
	return p
}

// Update shows the errors of plan, rebuilding the list only when it changed
func (p *ErrorPanel) Update(plan *shell.ErrorsPlan) {
	p.title.SetText(fmt.Sprintf("%s %s (%d)", IconError, plan.Title, len(plan.Errors)))

	lines := errorLines(plan, p.localization)
	key := strings.Join(lines, "\n")
	if key == p.key {
		return
	}
	p.key = key

	objs := make([]fyne.CanvasObject, 0, len(lines))
	for _, line := range lines {
		label := widget.NewLabel(line)
		label.Wrapping = fyne.TextWrapWord
		objs = append(objs, label)
	}
	p.list.Objects = objs
	p.list.Refresh()
}

// Object returns the panel widget
func (p *ErrorPanel) Object() fyne.CanvasObject {
	return p.object
}

func errorLines(plan *shell.ErrorsPlan, localization *Localization) []string {
	if len(plan.Errors) == 0 {
		return []string{localization.GetText(KeyNoErrors)}
	}
	lines := make([]string, 0, len(plan.Errors))
	for _, err := range plan.Errors {
		lines = append(lines, err.Error())
	}
	return lines
}

// InspectionPanel is the docked debug window
type InspectionPanel struct {
	localization *Localization
	text         *widget.Label
	object       fyne.CanvasObject
}

// NewInspectionPanel creates the inspection panel
func NewInspectionPanel(localization *Localization) *InspectionPanel {
	p := &InspectionPanel{
		localization: localization,
		text:         widget.NewLabel(""),
	}
	p.text.TextStyle = fyne.TextStyle{Monospace: true}
	p.object = widget.NewCard(IconBug+" "+localization.GetText(KeyInspection), "", p.text)
	return p
}

// Update shows the current shell internals
func (p *InspectionPanel) Update(plan *shell.InspectionPlan) {
	text := inspectionText(plan)
	if p.text.Text != text {
		p.text.SetText(text)
	}
}

// Object returns the panel widget
func (p *InspectionPanel) Object() fyne.CanvasObject {
	return p.object
}

func inspectionText(plan *shell.InspectionPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "frame: %d\n", plan.Frame)
	fmt.Fprintf(&b, "file: %s", plan.Acquisition)
	if plan.HasDrop {
		b.WriteString(MiddleDotSeparator + "drop queued")
	}
	fmt.Fprintf(&b, "\nerrors: %d\n", plan.Errors)
	fmt.Fprintf(&b, "settings: open=%v sidebar=%v min_width=%.0f selected=%s\n",
		plan.Settings.Open, plan.Settings.RightPanel, plan.Settings.MinWidthSidebar, plan.Settings.Selected)

	names := make([]string, 0, len(plan.Layout))
	for name := range plan.Layout {
		names = append(names, name)
	}
	sort.Strings(names)
	b.WriteString("layout:")
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%s", name, plan.Layout[name].Placement)
	}
	return b.String()
}
