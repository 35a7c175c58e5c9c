package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/appshell/internal/shell"
)

// IconResource wraps the host icon bytes, nil when the host has no icon
func IconResource(id shell.Identity) fyne.Resource {
	if len(id.Icon) == 0 {
		return nil
	}
	return fyne.NewStaticResource(id.Name+".png", id.Icon)
}
