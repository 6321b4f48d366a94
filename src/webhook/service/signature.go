package webhook_service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/Altaway/wabridge-server/src/database"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	"github.com/gosimple/slug"
)

// SignatureHeaders signs a payload for a subscriber: the signature covers
// "<unix timestamp>.<body>" so receivers can reject replays.
func SignatureHeaders(secret string, payload []byte) (signature string, timestamp string) {
	timestamp = strconv.FormatInt(time.Now().Unix(), 10)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)

	signature = "sha256=" + hex.EncodeToString(mac.Sum(nil))
	return signature, timestamp
}

// VerifySignature checks a received signature against the secret, using a
// constant-time comparison. Receivers of this server's deliveries can use
// the same scheme.
func VerifySignature(secret string, payload []byte, timestamp, signature string) bool {
	expected, _ := signatureAt(secret, payload, timestamp)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func signatureAt(secret string, payload []byte, timestamp string) (string, string) {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil)), timestamp
}

// UniqueSlug derives a stable handle from the subscriber name, suffixing a
// counter on collisions.
func UniqueSlug(name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "webhook"
	}

	candidate := base
	for counter := 2; ; counter++ {
		var existing int64
		if err := database.DB.Model(&webhook_entity.Webhook{}).
			Where("slug = ?", candidate).
			Count(&existing).Error; err != nil {
			return "", err
		}
		if existing == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
