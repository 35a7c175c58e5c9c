package errorqueue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frame simulates one rendered frame where the user either keeps the window or closes it.
func frame(q *Queue, userCloses bool) bool {
	open := q.BeginFrame()
	if open && userCloses {
		open = false
	}
	q.EndFrame(open)
	return open
}

func TestQueue_RecordFiltersTransient(t *testing.T) {
	q := NewQueue()
	q.Record(nil)
	q.Record(Transient("no file selected"))
	assert.False(t, q.HasPending())

	q.Record(New("read failed"))
	q.Record(errors.New("host rejected file"))
	require.Equal(t, 2, q.Len())

	drained := q.Drain()
	assert.Equal(t, "read failed", drained[0].Message)
	assert.Equal(t, "host rejected file", drained[1].Message)

	// Drain does not clear
	assert.Equal(t, 2, q.Len())
}

func TestQueue_AutoOpensOncePerBatch(t *testing.T) {
	q := NewQueue()
	assert.False(t, frame(q, false), "empty queue must stay closed")

	q.Record(New("first"))
	opens := 0
	wasOpen := false
	for i := 0; i < 5; i++ {
		if i == 2 {
			q.Record(New("second"))
		}
		open := frame(q, false)
		if open && !wasOpen {
			opens++
		}
		wasOpen = open
	}
	assert.Equal(t, 1, opens)
	assert.Equal(t, 2, q.Len())
}

func TestQueue_DismissClearsEverything(t *testing.T) {
	q := NewQueue()
	q.Record(New("a"))
	q.Record(New("b"))
	require.True(t, frame(q, false))

	assert.False(t, frame(q, true))
	assert.Equal(t, 0, q.Len())
	assert.False(t, q.IsOpen())

	// a new batch auto-opens again
	q.Record(New("c"))
	assert.True(t, frame(q, false))
}

func TestQueue_ClosedWithoutErrorsStaysClosed(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 3; i++ {
		assert.False(t, frame(q, false))
	}
}

func TestQueue_SetOpenManually(t *testing.T) {
	q := NewQueue()
	q.SetOpen(true)
	assert.True(t, frame(q, false), "manually opened empty window stays open")

	q.SetOpen(false)
	q.EndFrame(q.IsOpen())
	assert.False(t, q.IsOpen())
}

func TestQueue_Reset(t *testing.T) {
	q := NewQueue()
	q.Record(New("a"))
	frame(q, false)

	q.Reset()
	assert.Equal(t, 0, q.Len())
	assert.False(t, q.IsOpen())

	q.Record(New("b"))
	assert.True(t, frame(q, false))
}

func TestQueue_ImplementsReporter(t *testing.T) {
	var r Reporter = NewQueue()
	r.Record(New("x"))
	assert.True(t, r.(*Queue).HasPending())
}
