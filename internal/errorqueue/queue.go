package errorqueue

import "log"

// Reporter accepts failures from any component that can fail.
type Reporter interface {
	Record(err error)
}

// Queue holds the recorded errors and the error window visibility.
//
// The window auto-opens once per batch: BeginFrame forces it open when it was
// closed on the previous frame and errors are pending. Closing it through
// EndFrame clears every record, not only the ones the user looked at.
// Queue is owned by the UI thread and is not safe for concurrent use.
type Queue struct {
	errors  []*AppError
	open    bool
	wasOpen bool
}

// NewQueue creates an empty, closed queue
func NewQueue() *Queue {
	return &Queue{}
}

// Title returns the error window title
func (q *Queue) Title() string {
	return "Errors"
}

// Record appends err unless it is nil or transient
func (q *Queue) Record(err error) {
	if err == nil {
		return
	}
	appErr := FromError(err)
	if appErr.Transient {
		log.Printf("errorqueue: dropping transient outcome: %s", appErr.Message)
		return
	}
	log.Printf("errorqueue: recorded: %v", appErr)
	q.errors = append(q.errors, appErr)
}

// HasPending reports whether any error is waiting to be shown
func (q *Queue) HasPending() bool {
	return len(q.errors) > 0
}

// Len returns the number of recorded errors
func (q *Queue) Len() int {
	return len(q.errors)
}

// Drain returns the recorded errors in insertion order without clearing them
func (q *Queue) Drain() []*AppError {
	out := make([]*AppError, len(q.errors))
	copy(out, q.errors)
	return out
}

// IsOpen reports whether the error window is visible this frame
func (q *Queue) IsOpen() bool {
	return q.open
}

// SetOpen shows or hides the error window directly, e.g. from a settings checkbox.
// Hiding takes effect on the next EndFrame.
func (q *Queue) SetOpen(open bool) {
	q.open = open
}

// BeginFrame applies the auto-open rule and reports whether the window is open.
func (q *Queue) BeginFrame() bool {
	if !q.wasOpen && q.HasPending() {
		q.open = true
	}
	return q.open
}

// EndFrame records the window state after rendering. open is false when the
// user dismissed the window this frame; the whole queue is then cleared.
func (q *Queue) EndFrame(open bool) {
	q.open = open
	if !q.open {
		if len(q.errors) > 0 {
			log.Printf("errorqueue: window dismissed, clearing %d error(s)", len(q.errors))
		}
		q.errors = nil
	}
	q.wasOpen = q.open
}

// Reset drops every record and closes the window
func (q *Queue) Reset() {
	q.errors = nil
	q.open = false
	q.wasOpen = false
}
