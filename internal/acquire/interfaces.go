package acquire

import (
	"context"

	"fyne.io/fyne/v2"

	"github.com/ytget/appshell/internal/errorqueue"
	"github.com/ytget/appshell/internal/model"
)

// ErrNotSelected is returned by a Picker when the user cancels the dialog.
// It is transient and never reaches the visible error queue.
var ErrNotSelected = errorqueue.Transient("no file selected")

// Picker opens a file dialog and reads the chosen file fully into memory.
// Pick blocks until the dialog is closed and is always run off the UI thread.
type Picker interface {
	Pick(ctx context.Context) (model.File, error)
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func(ctx context.Context) (model.File, error)

// Pick calls f(ctx)
func (f PickerFunc) Pick(ctx context.Context) (model.File, error) {
	return f(ctx)
}

// DroppedFile is one entry of the host's dropped-files list. Natively Path is
// set; on the web the payload arrives in Bytes; Fyne drops may carry a URI
// that is not backed by a local path.
type DroppedFile struct {
	Name  string
	Path  string
	URI   fyne.URI
	Bytes []byte
}

// Acquirer defines the interface the shell driver uses.
type Acquirer interface {
	StartPick(ctx context.Context)
	Drop(files ...DroppedFile)
	Poll() (*model.File, error)
	Pending() bool
	Reset()
}
