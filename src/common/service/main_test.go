package common_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExtensionFromMimeType(t *testing.T) {
	cases := map[string]string{
		"image/jpeg":      "jpg",
		"image/png":       "png",
		"audio/mpeg":      "mp3",
		"audio/mp4":       "m4a",
		"video/mp4":       "mp4",
		"application/pdf": "pdf",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",

		// Parameters are stripped before the lookup.
		"text/plain; charset=utf-8": "txt",
		"audio/ogg; codecs=opus":    "ogg",

		// Unknown types fall back to a neutral extension.
		"application/x-nonexistent-subtype": "bin",
		"": "bin",
	}

	for mimeType, want := range cases {
		assert.Equal(t, want, GetExtensionFromMimeType(mimeType), mimeType)
	}
}
