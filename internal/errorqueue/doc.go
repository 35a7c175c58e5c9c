package errorqueue

// Package errorqueue collects recoverable failures for the lifetime of the app
// and decides when the error window is shown. Components report through the
// Reporter interface they are handed; nothing here is process-global.
