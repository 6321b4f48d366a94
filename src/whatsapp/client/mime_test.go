package whatsapp_client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMimeType(t *testing.T) {
	t.Run("AcceptsSupportedTypes", func(t *testing.T) {
		for _, mimeType := range []string{
			"image/jpeg",
			"application/pdf",
			"video/mp4",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		} {
			base, err := ParseMimeType(mimeType)
			require.NoError(t, err, mimeType)
			assert.Equal(t, mimeType, base)
		}
	})

	t.Run("StripsParameters", func(t *testing.T) {
		base, err := ParseMimeType("audio/ogg; codecs=opus")
		require.NoError(t, err)
		assert.Equal(t, "audio/ogg", base)
	})

	t.Run("RefusesUnsupportedTypes", func(t *testing.T) {
		_, err := ParseMimeType("image/gif")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "image/gif")
	})

	t.Run("RefusesGarbage", func(t *testing.T) {
		_, err := ParseMimeType("not a mime type at all;;;")
		assert.Error(t, err)
	})
}
