package platform

// Package platform contains OS/platform integration: target probes, saving
// files to disk or to a browser download, the native save dialog, and OS
// open/reveal helpers.
