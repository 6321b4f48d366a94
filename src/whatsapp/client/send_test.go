package whatsapp_client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	whatsapp_message_model "github.com/Altaway/wabridge-server/src/whatsapp/message/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApi(t *testing.T, handler http.HandlerFunc) *Api {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewWithClient(Config{
		AccessToken:   "test-token",
		PhoneNumberID: "106540352242922",
		AccountID:     "102290129340398",
		Version:       "v21.0",
		BaseURL:       server.URL,
	}, server.Client())
}

func TestSend(t *testing.T) {
	t.Run("ForcesMessagingProductAndDefaults", func(t *testing.T) {
		var gotPath, gotAuth, gotContentType string
		var gotBody map[string]any

		api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)

			_ = json.NewEncoder(w).Encode(whatsapp_message_model.SendResponse{
				MessagingProduct: "whatsapp",
				Messages:         []whatsapp_message_model.ResponseMessage{{ID: "wamid.TEST"}},
			})
		})

		response, err := api.Send(whatsapp_message_model.Message{
			// Deliberately wrong product: Send must overwrite it, the Cloud
			// API rejects everything else.
			MessagingProduct: "telegram",
			To:               "5511999999999",
			Type:             whatsapp_message_model.TextType,
			Text:             &whatsapp_message_model.Text{Body: "hello"},
		})
		require.NoError(t, err)

		assert.Equal(t, "/v21.0/106540352242922/messages", gotPath)
		assert.Equal(t, "Bearer test-token", gotAuth)
		assert.Equal(t, "application/json", gotContentType)

		assert.Equal(t, "whatsapp", gotBody["messaging_product"])
		assert.Equal(t, "individual", gotBody["recipient_type"])
		assert.Equal(t, "5511999999999", gotBody["to"])

		assert.Equal(t, "wamid.TEST", response.WamID())
	})

	t.Run("GraphErrorBecomesStatusError", func(t *testing.T) {
		api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"(#131030) Recipient phone number not in allowed list","type":"OAuthException","code":131030}}`))
		})

		_, err := api.Send(whatsapp_message_model.Message{
			To:   "5511999999999",
			Type: whatsapp_message_model.TextType,
			Text: &whatsapp_message_model.Text{Body: "hello"},
		})

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.Code)
		assert.Contains(t, statusErr.Error(), "400")
		require.NotNil(t, statusErr.Detail)
		assert.Equal(t, "OAuthException", statusErr.Detail.Type)
		assert.Equal(t, 131030, statusErr.Detail.Code)
	})

	t.Run("PlainErrorBodyIsKeptVerbatim", func(t *testing.T) {
		api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("upstream unavailable"))
		})

		_, err := api.Send(whatsapp_message_model.Message{
			To:   "5511999999999",
			Type: whatsapp_message_model.TextType,
			Text: &whatsapp_message_model.Text{Body: "hello"},
		})

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
		assert.Nil(t, statusErr.Detail)
		assert.Equal(t, "upstream unavailable", statusErr.Body)
		assert.Contains(t, statusErr.Error(), "503")
	})
}

func TestMarkAsRead(t *testing.T) {
	var gotBody map[string]any

	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	response, err := api.MarkAsRead("wamid.READ")
	require.NoError(t, err)
	assert.True(t, response.Success)

	assert.Equal(t, "whatsapp", gotBody["messaging_product"])
	assert.Equal(t, "read", gotBody["status"])
	assert.Equal(t, "wamid.READ", gotBody["message_id"])
	assert.NotContains(t, gotBody, "typing_indicator")
}

func TestSendTyping(t *testing.T) {
	var gotBody map[string]any

	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	response, err := api.SendTyping("wamid.TYPE")
	require.NoError(t, err)
	assert.True(t, response.Success)

	assert.Equal(t, "read", gotBody["status"])
	assert.Equal(t, "wamid.TYPE", gotBody["message_id"])

	indicator, ok := gotBody["typing_indicator"].(map[string]any)
	require.True(t, ok, "typing indicator must be present")
	assert.Equal(t, "text", indicator["type"])
}
