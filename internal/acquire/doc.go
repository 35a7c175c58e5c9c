package acquire

// Package acquire merges the two ways a user hands the app a file, a file
// dialog and drag-and-drop, into one non-blocking per-frame Poll. Dialog
// requests run on their own goroutine and report through a single-slot
// channel; dropped files are read synchronously on the next poll.
