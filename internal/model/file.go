package model

import (
	"path/filepath"
	"strings"
)

// File is a fully acquired file. Data is never partial.
type File struct {
	Data []byte
	Path string // path or bare file name on targets without a filesystem
}

// Len returns the payload size in bytes
func (f *File) Len() int {
	return len(f.Data)
}

// GetDisplayName returns the base name of Path, or "untitled"
func (f *File) GetDisplayName() string {
	if f.Path == "" {
		return "untitled"
	}
	// support both / and \ separators regardless of host OS
	parts := strings.FieldsFunc(f.Path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return filepath.Base(f.Path)
	}
	return parts[len(parts)-1]
}
