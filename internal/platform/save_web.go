//go:build js

package platform

import (
	"fmt"
	"log"
	"path/filepath"
	"syscall/js"
)

// IsWeb reports whether the binary targets the browser
func IsWeb() bool {
	return true
}

// SaveFile hands data to the browser as a download named after path
func SaveFile(data []byte, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot save file: %v", r)
		}
	}()

	name := filepath.Base(path)
	if name == "." || name == "/" || name == "" {
		name = DefaultFileName
	}

	array := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(array, data)
	blob := js.Global().Get("Blob").New([]any{array})

	url := js.Global().Get("URL").Call("createObjectURL", blob)
	defer js.Global().Get("URL").Call("revokeObjectURL", url)

	document := js.Global().Get("document")
	if document.IsUndefined() {
		return fmt.Errorf("cannot get the website document")
	}
	a := document.Call("createElement", "a")
	a.Call("setAttribute", "href", url)
	a.Call("setAttribute", "download", name)
	a.Call("click")

	log.Printf("platform: offered %d bytes as %s", len(data), name)
	return nil
}

// SavePath has no dialog in the browser; the download keeps current's name.
func SavePath(current string) (string, error) {
	if current == "" {
		return DefaultFileName, nil
	}
	return current, nil
}
