package demo

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/appshell/internal/panel"
)

// Bucket choices offered by the Graph settings
var BucketOptions = []int{4, 8, 16}

func validBuckets(n int) bool {
	for _, b := range BucketOptions {
		if b == n {
			return true
		}
	}
	return false
}

// LogPanel lists the names of the received files, newest first
type LogPanel struct {
	app  *App
	list *widget.List
}

// NewLogPanel creates the Log panel
func NewLogPanel(a *App) *LogPanel {
	p := &LogPanel{app: a}
	p.list = widget.NewList(
		func() int { return len(a.state.History) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			history := a.state.History
			if id >= len(history) {
				return
			}
			obj.(*widget.Label).SetText(history[len(history)-1-id])
		},
	)
	return p
}

func (p *LogPanel) Name() string {
	return "Log"
}

func (p *LogPanel) HasUI() bool {
	return true
}

func (p *LogPanel) HasSettings() bool {
	return false
}

func (p *LogPanel) RenderUI(ctx panel.RenderContext) fyne.CanvasObject {
	return p.list
}

func (p *LogPanel) RenderSettings(ctx panel.RenderContext) fyne.CanvasObject {
	return nil
}

// Refresh redraws the list
func (p *LogPanel) Refresh() {
	p.list.Refresh()
}

// GraphPanel shows a byte histogram of the last file. It only has a view
// once a file was received.
type GraphPanel struct {
	app      *App
	bars     *fyne.Container
	settings fyne.CanvasObject
}

// NewGraphPanel creates the Graph panel
func NewGraphPanel(a *App) *GraphPanel {
	p := &GraphPanel{app: a, bars: container.NewVBox()}

	options := make([]string, 0, len(BucketOptions))
	for _, b := range BucketOptions {
		options = append(options, strconv.Itoa(b))
	}
	sel := widget.NewSelect(options, nil)
	sel.Selected = strconv.Itoa(a.state.Buckets)
	sel.OnChanged = func(v string) {
		if n, err := strconv.Atoi(v); err == nil && validBuckets(n) {
			a.state.Buckets = n
			p.Refresh()
		}
	}
	p.settings = container.NewVBox(widget.NewLabel("Buckets"), sel)
	return p
}

func (p *GraphPanel) Name() string {
	return "Graph"
}

func (p *GraphPanel) HasUI() bool {
	return p.app.last != nil
}

func (p *GraphPanel) HasSettings() bool {
	return true
}

func (p *GraphPanel) RenderUI(ctx panel.RenderContext) fyne.CanvasObject {
	return p.bars
}

func (p *GraphPanel) RenderSettings(ctx panel.RenderContext) fyne.CanvasObject {
	return p.settings
}

// Refresh recomputes the bars from the last file
func (p *GraphPanel) Refresh() {
	var data []byte
	if p.app.last != nil {
		data = p.app.last.Data
	}
	counts := Histogram(data, p.app.state.Buckets)
	total := len(data)

	objs := make([]fyne.CanvasObject, 0, len(counts))
	width := 256 / len(counts)
	for i, c := range counts {
		bar := widget.NewProgressBar()
		if total > 0 {
			bar.SetValue(float64(c) / float64(total))
		}
		bar.TextFormatter = func() string {
			return fmt.Sprintf("%d", c)
		}
		label := fmt.Sprintf("%02x-%02x", i*width, (i+1)*width-1)
		objs = append(objs, container.NewBorder(nil, nil, widget.NewLabel(label), nil, bar))
	}
	p.bars.Objects = objs
	p.bars.Refresh()
}

// Histogram counts the bytes of data in n equal ranges of the byte values
func Histogram(data []byte, n int) []int {
	if n <= 0 || 256%n != 0 {
		n = DefaultBuckets
	}
	counts := make([]int, n)
	width := 256 / n
	for _, b := range data {
		counts[int(b)/width]++
	}
	return counts
}

// HistogramString renders counts on one line
func HistogramString(counts []int) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, " ")
}
