//go:build !js

package acquire

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/sqweek/dialog"

	"github.com/ytget/appshell/internal/errorqueue"
	"github.com/ytget/appshell/internal/model"
)

// Filter restricts the dialog to a set of extensions (without the dot)
type Filter struct {
	Description string
	Extensions  []string
}

// NativePicker opens the operating system file dialog.
type NativePicker struct {
	Title    string
	StartDir string
	Filters  []Filter
}

// Pick implements Picker
func (p *NativePicker) Pick(ctx context.Context) (model.File, error) {
	if err := ctx.Err(); err != nil {
		return model.File{}, err
	}

	title := p.Title
	if title == "" {
		title = "Open"
	}
	builder := dialog.File().Title(title)
	for _, f := range p.Filters {
		builder = builder.Filter(f.Description, f.Extensions...)
	}
	if p.StartDir != "" {
		builder = builder.SetStartDir(p.StartDir)
	}

	path, err := builder.Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return model.File{}, ErrNotSelected
	}
	if err != nil {
		return model.File{}, errorqueue.Wrap("File dialog failed", err)
	}
	if path == "" {
		return model.File{}, errorqueue.New("Invalid file path")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("acquire: reading %s: %v", path, err)
		return model.File{}, errorqueue.FromError(err)
	}
	return model.File{Data: data, Path: path}, nil
}
