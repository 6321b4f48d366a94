package whatsapp_client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTemplates(t *testing.T) {
	t.Run("ListsTemplatesOfTheAccount", func(t *testing.T) {
		var gotPath, gotQuery string

		api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"data":[{"id":"594425479261596","name":"order_update","language":"en_US","status":"APPROVED","category":"UTILITY"}],"paging":{"cursors":{"before":"MAZDZD","after":"MjQZD"}}}`))
		})

		response, err := api.GetTemplates(TemplateQueryParams{Limit: 25, After: "MjQZD"})
		require.NoError(t, err)

		// Templates hang off the business account, not the phone number.
		assert.Equal(t, "/v21.0/102290129340398/message_templates", gotPath)
		assert.Equal(t, "after=MjQZD&limit=25", gotQuery)

		require.Len(t, response.Data, 1)
		assert.Equal(t, "order_update", response.Data[0].Name)
		assert.Equal(t, "APPROVED", response.Data[0].Status)
		require.NotNil(t, response.Paging)
		assert.Equal(t, "MjQZD", response.Paging.Cursors.After)
	})

	t.Run("OmitsEmptyCursorParams", func(t *testing.T) {
		var gotQuery string

		api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"data":[]}`))
		})

		_, err := api.GetTemplates(TemplateQueryParams{})
		require.NoError(t, err)
		assert.Empty(t, gotQuery)
	})
}
