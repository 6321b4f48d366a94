package webhook_middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

// SignatureHeader carries the HMAC Meta computes over the raw request body.
const SignatureHeader = "X-Hub-Signature-256"

// VerifyMetaSignature authenticates webhook deliveries. Meta signs the raw
// request body with HMAC-SHA256 keyed by the app secret and sends the hex
// digest as X-Hub-Signature-256: sha256=<hex>. Requests with a missing or
// wrong signature are refused before any payload handling runs.
func VerifyMetaSignature(appSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get(SignatureHeader)
		digest, found := strings.CutPrefix(signature, "sha256=")
		if !found {
			pterm.DefaultLogger.Warn("Refusing webhook delivery without sha256 signature")
			return c.SendStatus(fiber.StatusForbidden)
		}

		mac := hmac.New(sha256.New, []byte(appSecret))
		mac.Write(c.Body())
		expected := hex.EncodeToString(mac.Sum(nil))

		// hmac.Equal keeps the comparison constant time.
		if !hmac.Equal([]byte(digest), []byte(expected)) {
			pterm.DefaultLogger.Warn("Refusing webhook delivery with invalid signature")
			return c.SendStatus(fiber.StatusForbidden)
		}

		return c.Next()
	}
}
