package whatsapp_client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MediaInfo is the Graph API description of an uploaded media item. URL
// stays valid for five minutes after retrieval.
type MediaInfo struct {
	ID               string `json:"id" example:"1228026552389564"`
	URL              string `json:"url" validate:"required" example:"https://lookaside.fbsbx.com/whatsapp_business/attachments/?mid=1228026552389564"`
	MimeType         string `json:"mime_type" example:"image/jpeg"`
	Sha256           string `json:"sha256,omitempty"`
	FileSize         int64  `json:"file_size" example:"32768"`
	MessagingProduct string `json:"messaging_product,omitempty" example:"whatsapp"`
}

// UploadResponse carries the media id assigned by the upload endpoint.
type UploadResponse struct {
	ID string `json:"id" example:"1228026552389564"`
}

// UploadMedia pushes a file to POST /{phone_number_id}/media. Uploaded
// media stays available for 30 days.
func (a *Api) UploadMedia(filename, mimeType string, content io.Reader) (UploadResponse, error) {
	var response UploadResponse

	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename),
	}
	header["Content-Type"] = []string{mimeType}

	part, err := writer.CreatePart(header)
	if err != nil {
		return response, fmt.Errorf("create multipart file part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return response, fmt.Errorf("copy media content: %w", err)
	}

	if err := writer.WriteField("type", mimeType); err != nil {
		return response, err
	}
	if err := writer.WriteField("messaging_product", "whatsapp"); err != nil {
		return response, err
	}
	if err := writer.Close(); err != nil {
		return response, err
	}

	req, err := http.NewRequest(http.MethodPost, a.phoneURL("/media"), buffer)
	if err != nil {
		return response, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	err = a.do(req, &response)
	return response, err
}

// RetrieveMediaURL resolves a media id into a temporary download URL.
func (a *Api) RetrieveMediaURL(mediaID string) (MediaInfo, error) {
	var info MediaInfo
	err := a.getJSON(a.graphURL(mediaID), &info)
	return info, err
}

// DownloadMedia fetches the media bytes from a URL returned by
// RetrieveMediaURL. The bearer token is required, plain GETs get an HTML
// error page instead of the binary.
func (a *Api) DownloadMedia(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.config.AccessToken)

	res, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read media body: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, newStatusError(res.StatusCode, res.Status, raw)
	}

	return raw, nil
}

// DeleteMedia removes an uploaded media item before its retention window
// ends.
func (a *Api) DeleteMedia(mediaID string) error {
	req, err := http.NewRequest(http.MethodDelete, a.graphURL(mediaID), nil)
	if err != nil {
		return err
	}

	return a.do(req, nil)
}
