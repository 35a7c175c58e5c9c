package acquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/google/uuid"

	"github.com/ytget/appshell/internal/errorqueue"
	"github.com/ytget/appshell/internal/model"
)

// result is what a dialog goroutine hands back
type result struct {
	file model.File
	err  error
}

// request is the one outstanding dialog request
type request struct {
	id     string
	done   chan result // capacity 1, written exactly once
	result *result     // set once received from done
}

// Pipeline implements Acquirer.
// All methods must be called from the UI thread; the only cross-goroutine
// boundary is request.done.
type Pipeline struct {
	picker  Picker
	pending *request
	drops   []DroppedFile

	readFile func(name string) ([]byte, error)
	openURI  func(u fyne.URI) (io.ReadCloser, error)
}

var _ Acquirer = (*Pipeline)(nil)

// NewPipeline creates a pipeline that opens dialogs with picker
func NewPipeline(picker Picker) *Pipeline {
	return &Pipeline{
		picker:   picker,
		readFile: os.ReadFile,
		openURI: func(u fyne.URI) (io.ReadCloser, error) {
			return storage.Reader(u)
		},
	}
}

// SetPicker replaces the dialog implementation, e.g. once a parent window exists
func (p *Pipeline) SetPicker(picker Picker) {
	p.picker = picker
}

// StartPick launches a dialog request in the background. A request that is
// still outstanding is abandoned: it runs to completion and its result is
// dropped.
func (p *Pipeline) StartPick(ctx context.Context) {
	if p.picker == nil {
		log.Printf("acquire: no picker configured, ignoring open request")
		return
	}
	if p.pending != nil {
		log.Printf("acquire: abandoning outstanding request %s", p.pending.id)
	}

	req := &request{
		id:   uuid.NewString(),
		done: make(chan result, 1),
	}
	p.pending = req
	log.Printf("acquire: starting dialog request %s", req.id)

	picker := p.picker
	go func() {
		file, err := picker.Pick(ctx)
		req.done <- result{file: file, err: err}
	}()
}

// Drop records the files the host reported this frame. An empty list keeps
// the previously recorded drop.
func (p *Pipeline) Drop(files ...DroppedFile) {
	if len(files) == 0 {
		return
	}
	p.drops = append(p.drops[:0], files...)
}

// Pending reports whether a dialog request is outstanding
func (p *Pipeline) Pending() bool {
	return p.pending != nil
}

// HasDrop reports whether a dropped file waits for the next poll
func (p *Pipeline) HasDrop() bool {
	return len(p.drops) > 0
}

// Reset clears the outstanding dialog request
func (p *Pipeline) Reset() {
	p.pending = nil
}

// State reports the outstanding request's state without consuming it.
// A failed request returns its error.
func (p *Pipeline) State() (model.AcquisitionState, error) {
	state, _, err := p.check()
	return state, err
}

// check receives the request result if it is available
func (p *Pipeline) check() (model.AcquisitionState, *model.File, error) {
	req := p.pending
	if req == nil {
		return model.AcquisitionNoRequest, nil, nil
	}
	if req.result == nil {
		select {
		case res := <-req.done:
			req.result = &res
		default:
			return model.AcquisitionInProgress, nil, nil
		}
	}

	res := req.result
	switch {
	case res.err == nil:
		file := res.file
		return model.AcquisitionReady, &file, nil
	case errors.Is(res.err, ErrNotSelected), errorqueue.IsTransient(res.err):
		return model.AcquisitionNotSelected, nil, nil
	default:
		return model.AcquisitionReady, nil, res.err
	}
}

// Poll returns a fully read file, nil when nothing is ready this frame, or
// the failure of the finished request or drop read. It never blocks.
// A dialog request dominates drops: while one is outstanding, drops wait.
func (p *Pipeline) Poll() (*model.File, error) {
	state, file, err := p.check()
	if err != nil {
		log.Printf("acquire: request %s failed: %v", p.pending.id, err)
		p.Reset()
		return nil, err
	}

	switch state {
	case model.AcquisitionInProgress:
		return nil, nil
	case model.AcquisitionReady:
		log.Printf("acquire: request %s ready (%d bytes)", p.pending.id, file.Len())
		p.Reset()
		return file, nil
	case model.AcquisitionNotSelected:
		log.Printf("acquire: request %s: no file selected", p.pending.id)
		p.Reset()
	}

	return p.takeDrop()
}

// takeDrop reads the first dropped file and discards the others
func (p *Pipeline) takeDrop() (*model.File, error) {
	if len(p.drops) == 0 {
		return nil, nil
	}
	dropped := p.drops[0]
	if len(p.drops) > 1 {
		log.Printf("acquire: %d dropped files, keeping the first", len(p.drops))
	}
	p.drops = nil

	file, err := p.readDropped(dropped)
	if err != nil {
		return nil, err
	}
	log.Printf("acquire: dropped file %s read (%d bytes)", file.GetDisplayName(), file.Len())
	return file, nil
}

// readDropped loads the payload from the path, the URI or the in-memory bytes
func (p *Pipeline) readDropped(dropped DroppedFile) (*model.File, error) {
	switch {
	case dropped.Path != "":
		data, err := p.readFile(dropped.Path)
		if err != nil {
			return nil, errorqueue.Wrap(fmt.Sprintf("Cannot read %s", dropped.Path), err)
		}
		return &model.File{Data: data, Path: dropped.Path}, nil

	case dropped.URI != nil:
		rc, err := p.openURI(dropped.URI)
		if err != nil {
			return nil, errorqueue.Wrap(fmt.Sprintf("Cannot open %s", dropped.URI.Name()), err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, errorqueue.Wrap(fmt.Sprintf("Cannot read %s", dropped.URI.Name()), err)
		}
		name := dropped.Name
		if name == "" {
			name = dropped.URI.Name()
		}
		return &model.File{Data: data, Path: name}, nil

	case dropped.Bytes != nil:
		data := make([]byte, len(dropped.Bytes))
		copy(data, dropped.Bytes)
		return &model.File{Data: data, Path: dropped.Name}, nil

	default:
		return nil, errorqueue.New("Invalid file path")
	}
}
