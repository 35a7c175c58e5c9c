package acquire

import "strings"

// dotted returns extensions in the ".ext" form Fyne filters expect
func dotted(extensions []string) []string {
	var out []string
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, strings.ToLower(ext))
	}
	return out
}

// undotted returns extensions in the bare "ext" form native dialogs expect
func undotted(extensions []string) []string {
	var out []string
	for _, ext := range dotted(extensions) {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	return out
}
