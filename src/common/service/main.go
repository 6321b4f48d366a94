// Package common_service holds small helpers shared across handlers.
package common_service

import (
	"mime"
	"strings"
)

// knownExtensions pins extensions for the media types the Graph API serves,
// since mime.ExtensionsByType ordering depends on the platform mime tables.
var knownExtensions = map[string]string{
	"audio/aac":  "aac",
	"audio/amr":  "amr",
	"audio/mp4":  "m4a",
	"audio/mpeg": "mp3",
	"audio/ogg":  "ogg",

	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"text/plain": "txt",
	"video/3gp":  "3gp",
	"video/mp4":  "mp4",

	"application/msword":            "doc",
	"application/pdf":               "pdf",
	"application/vnd.ms-excel":      "xls",
	"application/vnd.ms-powerpoint": "ppt",

	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "xlsx",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   "docx",
}

// GetExtensionFromMimeType maps a MIME type to a file extension without the
// leading dot. Unknown types fall back to "bin".
func GetExtensionFromMimeType(mimeType string) string {
	base := mimeType
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		base = parsed
	}

	if ext, ok := knownExtensions[base]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(base); err == nil && len(exts) > 0 {
		return strings.TrimPrefix(exts[0], ".")
	}
	return "bin"
}
