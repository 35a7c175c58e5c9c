package ui

// Package ui contains the Fyne presentation layer of the shell. RootUI ticks
// the shell driver once per frame on the UI goroutine and renders the returned
// frame plan: main menu, top bar, central area with the side region, floating
// panel windows, the settings modal, and the docked error and inspection panels.
