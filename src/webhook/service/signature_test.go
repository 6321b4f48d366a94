package webhook_service

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureHeaders(t *testing.T) {
	payload := []byte(`{"event":"receive:message"}`)

	signature, timestamp := SignatureHeaders("subscriber-secret", payload)

	assert.True(t, strings.HasPrefix(signature, "sha256="))
	_, err := strconv.ParseInt(timestamp, 10, 64)
	require.NoError(t, err, "timestamp must be unix seconds")

	t.Run("RoundTripVerifies", func(t *testing.T) {
		assert.True(t, VerifySignature("subscriber-secret", payload, timestamp, signature))
	})

	t.Run("TamperedPayloadFails", func(t *testing.T) {
		tampered := []byte(`{"event":"receive:status"}`)
		assert.False(t, VerifySignature("subscriber-secret", tampered, timestamp, signature))
	})

	t.Run("WrongSecretFails", func(t *testing.T) {
		assert.False(t, VerifySignature("other-secret", payload, timestamp, signature))
	})

	t.Run("ShiftedTimestampFails", func(t *testing.T) {
		// The timestamp is part of the signed input, so replaying the
		// signature under another timestamp must fail.
		assert.False(t, VerifySignature("subscriber-secret", payload, timestamp+"1", signature))
	})
}
