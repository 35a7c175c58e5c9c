//go:build !js

package platform

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// IsWeb reports whether the binary targets the browser
func IsWeb() bool {
	return false
}

// SaveFile writes data to path, replacing any existing file. Missing parent
// directories are created.
func SaveFile(data []byte, path string) error {
	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("cannot write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write file: %w", err)
	}
	log.Printf("platform: saved %d bytes to %s", len(data), path)
	return nil
}

// SavePath asks the user where to save, starting next to current. An empty
// string with a nil error means the dialog was cancelled.
func SavePath(current string) (string, error) {
	dir, name := saveDialogStart(current, defaultSaveDir())
	path, err := dialog.File().Title("Save").SetStartDir(dir).SetStartFile(name).Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("save dialog failed: %w", err)
	}
	return path, nil
}
