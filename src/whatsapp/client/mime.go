package whatsapp_client

import (
	"fmt"
	"mime"
)

// supportedUploadTypes is the set of MIME types the media upload endpoint
// accepts, per the Cloud API media documentation.
var supportedUploadTypes = map[string]struct{}{
	"audio/aac":  {},
	"audio/amr":  {},
	"audio/mp4":  {},
	"audio/mpeg": {},
	"audio/ogg":  {},

	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"text/plain": {},
	"video/3gp":  {},
	"video/mp4":  {},

	"application/msword":            {},
	"application/pdf":               {},
	"application/vnd.ms-excel":      {},
	"application/vnd.ms-powerpoint": {},

	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
}

// ParseMimeType strips parameters from a Content-Type value, e.g.
// "audio/ogg; codecs=opus", and checks the base type against the set the
// media upload endpoint accepts.
func ParseMimeType(mimeType string) (string, error) {
	base, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return "", fmt.Errorf("parse mime type %q: %w", mimeType, err)
	}

	if _, ok := supportedUploadTypes[base]; !ok {
		return "", fmt.Errorf("mime type %q is not supported for upload", base)
	}
	return base, nil
}
