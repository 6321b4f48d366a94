package webhook_middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerificationApp(token string) *fiber.App {
	app := fiber.New()
	app.Get("/webhook-in",
		MetaVerificationRequestToken(token),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).SendString(c.Query("hub.challenge"))
		},
	)
	return app
}

func verificationRequest(mode, verifyToken, challenge string) *http.Request {
	query := url.Values{}
	query.Set("hub.mode", mode)
	query.Set("hub.verify_token", verifyToken)
	query.Set("hub.challenge", challenge)
	return httptest.NewRequest(fiber.MethodGet, "/webhook-in?"+query.Encode(), nil)
}

func TestMetaVerificationRequestToken(t *testing.T) {
	t.Run("EchoesChallengeWhenTokenMatches", func(t *testing.T) {
		app := newVerificationApp("my-verify-token")

		res, err := app.Test(verificationRequest(SubscribeMode, "my-verify-token", "1158201444"))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, fiber.StatusOK, res.StatusCode)

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		assert.Equal(t, "1158201444", string(body))
	})

	t.Run("RefusesWrongToken", func(t *testing.T) {
		app := newVerificationApp("my-verify-token")

		res, err := app.Test(verificationRequest(SubscribeMode, "not-the-token", "1158201444"))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("RefusesWrongMode", func(t *testing.T) {
		app := newVerificationApp("my-verify-token")

		res, err := app.Test(verificationRequest("unsubscribe", "my-verify-token", "1158201444"))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("RefusesMissingQueryParams", func(t *testing.T) {
		app := newVerificationApp("my-verify-token")

		res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/webhook-in", nil))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("EmptyConfiguredTokenRefusesEveryHandshake", func(t *testing.T) {
		app := newVerificationApp("")

		// Even a request with an empty token must not pass: an unset secret
		// would otherwise accept every caller.
		res, err := app.Test(verificationRequest(SubscribeMode, "", "1158201444"))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})
}
