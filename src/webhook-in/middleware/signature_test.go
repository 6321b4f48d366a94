package webhook_middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSignatureApp(appSecret string) *fiber.App {
	app := fiber.New()
	app.Post("/webhook-in",
		VerifyMetaSignature(appSecret),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)
	return app
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func signedRequest(body, signature string) *http.Request {
	req := httptest.NewRequest(fiber.MethodPost, "/webhook-in", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	return req
}

func TestVerifyMetaSignature(t *testing.T) {
	const secret = "app-secret"
	const body = `{"object":"whatsapp_business_account","entry":[]}`

	t.Run("AcceptsValidSignature", func(t *testing.T) {
		app := newSignatureApp(secret)

		res, err := app.Test(signedRequest(body, signBody(secret, []byte(body))))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, fiber.StatusOK, res.StatusCode)
	})

	t.Run("RefusesTamperedBody", func(t *testing.T) {
		app := newSignatureApp(secret)

		signature := signBody(secret, []byte(body))
		res, err := app.Test(signedRequest(body+" ", signature))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("RefusesWrongSecret", func(t *testing.T) {
		app := newSignatureApp(secret)

		res, err := app.Test(signedRequest(body, signBody("other-secret", []byte(body))))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("RefusesMissingHeader", func(t *testing.T) {
		app := newSignatureApp(secret)

		res, err := app.Test(signedRequest(body, ""))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("RefusesDigestWithoutPrefix", func(t *testing.T) {
		app := newSignatureApp(secret)

		bare := strings.TrimPrefix(signBody(secret, []byte(body)), "sha256=")
		res, err := app.Test(signedRequest(body, bare))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})
}
