package shell

// Package shell implements the application shell driver. It owns the panel
// registry, the error queue, the file acquisition pipeline and the settings
// overlay, calls the host application's hooks in a fixed order once per
// frame, and persists the shell state around the host's own state.
