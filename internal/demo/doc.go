package demo

// Package demo is a small host application for the shell: it keeps the files
// handed to it, previews the last one, and exposes a "Log" panel with the file
// history and a "Graph" panel with a byte histogram of the last file.
