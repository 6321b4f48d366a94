package whatsapp_client

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadMedia(t *testing.T) {
	var gotPath, gotProduct, gotType, gotFilename, gotPartType, gotContent string

	// Failures surface through the response status so the assertions stay on
	// the test goroutine.
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotProduct = r.FormValue("messaging_product")
		gotType = r.FormValue("type")

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		gotFilename = header.Filename
		gotPartType = header.Header.Get("Content-Type")

		content, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotContent = string(content)

		_, _ = w.Write([]byte(`{"id":"1228026552389564"}`))
	})

	response, err := api.UploadMedia("photo.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "1228026552389564", response.ID)

	assert.Equal(t, "/v21.0/106540352242922/media", gotPath)
	assert.Equal(t, "whatsapp", gotProduct)
	assert.Equal(t, "image/jpeg", gotType)
	assert.Equal(t, "photo.jpg", gotFilename)
	assert.Equal(t, "image/jpeg", gotPartType)
	assert.Equal(t, "jpeg-bytes", gotContent)
}

func TestRetrieveMediaURL(t *testing.T) {
	var gotPath string

	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"1228026552389564","url":"https://lookaside.fbsbx.com/whatsapp_business/attachments/?mid=1228026552389564","mime_type":"image/jpeg","file_size":32768}`))
	})

	info, err := api.RetrieveMediaURL("1228026552389564")
	require.NoError(t, err)

	// Media ids are graph nodes, not phone number children.
	assert.Equal(t, "/v21.0/1228026552389564", gotPath)
	assert.Equal(t, "image/jpeg", info.MimeType)
	assert.EqualValues(t, 32768, info.FileSize)
	assert.NotEmpty(t, info.URL)
}

func TestDownloadMedia(t *testing.T) {
	t.Run("SendsBearerToken", func(t *testing.T) {
		var gotAuth string

		api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte("binary-bytes"))
		})

		raw, err := api.DownloadMedia(api.config.BaseURL + "/some/media")
		require.NoError(t, err)
		assert.Equal(t, []byte("binary-bytes"), raw)
		assert.Equal(t, "Bearer test-token", gotAuth)
	})

	t.Run("ExpiredURLBecomesStatusError", func(t *testing.T) {
		api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := api.DownloadMedia(api.config.BaseURL + "/some/media")

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.Code)
	})
}

func TestDeleteMedia(t *testing.T) {
	var gotMethod, gotPath string

	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	require.NoError(t, api.DeleteMedia("1228026552389564"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/v21.0/1228026552389564", gotPath)
}
