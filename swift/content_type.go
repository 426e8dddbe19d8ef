package swift

import (
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

const defaultContentType = "application/octet-stream"

// DetectContentType returns the MIME type for the file at path: by extension
// first, falling back to sniffing the content.
func DetectContentType(path string) string {
	if ext := filepath.Ext(path); ext != "" {
		if mimeType := mime.TypeByExtension(ext); mimeType != "" {
			return mimeType
		}
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return defaultContentType
	}
	return detected.String()
}
