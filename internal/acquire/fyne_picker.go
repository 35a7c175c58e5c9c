package acquire

import (
	"context"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/appshell/internal/errorqueue"
	"github.com/ytget/appshell/internal/model"
)

// FynePicker shows Fyne's in-window file dialog. It works on every Fyne
// target, including the browser where no native dialog exists.
type FynePicker struct {
	Window     fyne.Window
	Extensions []string // e.g. ".png"; empty allows everything
}

type fyneOutcome struct {
	reader fyne.URIReadCloser
	err    error
}

// Pick implements Picker. The dialog is created on the UI thread; Pick
// itself waits on the caller's goroutine.
func (p *FynePicker) Pick(ctx context.Context) (model.File, error) {
	outcome := make(chan fyneOutcome, 1)

	fyne.Do(func() {
		d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			outcome <- fyneOutcome{reader: reader, err: err}
		}, p.Window)
		if len(p.Extensions) > 0 {
			d.SetFilter(storage.NewExtensionFileFilter(p.Extensions))
		}
		d.Show()
	})

	var o fyneOutcome
	select {
	case <-ctx.Done():
		return model.File{}, ctx.Err()
	case o = <-outcome:
	}

	if o.err != nil {
		return model.File{}, errorqueue.Wrap("File dialog failed", o.err)
	}
	if o.reader == nil {
		return model.File{}, ErrNotSelected
	}
	defer o.reader.Close()

	data, err := io.ReadAll(o.reader)
	if err != nil {
		return model.File{}, errorqueue.FromError(err)
	}

	path := o.reader.URI().Name()
	if o.reader.URI().Scheme() == "file" {
		path = o.reader.URI().Path()
	}
	return model.File{Data: data, Path: path}, nil
}
