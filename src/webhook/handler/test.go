package webhook_handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/validators"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	webhook_service "github.com/Altaway/wabridge-server/src/webhook/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TestWebhookRequest selects the webhook to test and an optional payload.
type TestWebhookRequest struct {
	WebhookID uuid.UUID `json:"webhook_id" validate:"required"`
	Payload   any       `json:"payload,omitempty"`
}

// TestWebhookResponse reports the outcome of one synchronous test delivery.
type TestWebhookResponse struct {
	Success      bool              `json:"success"`
	StatusCode   int               `json:"status_code,omitempty"`
	Response     any               `json:"response,omitempty"`
	ResponseBody string            `json:"response_body,omitempty"`
	DurationMs   int64             `json:"duration_ms"`
	HeadersSent  map[string]string `json:"headers_sent"`
	Error        string            `json:"error,omitempty"`
}

// TestWebhook sends a test payload to a webhook and returns the result.
//
//	@Summary		Test a webhook
//	@Description	Sends a test payload to the specified webhook URL synchronously and returns the response details. The delivery queue is bypassed.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TestWebhookRequest				true	"Test request"
//	@Success		200		{object}	TestWebhookResponse				"Test result"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request body"
//	@Failure		404		{object}	common_model.DescriptiveError	"Webhook not found"
//	@Failure		500		{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/webhook/test [post]
//	@Security		ApiKeyAuth
func TestWebhook(c *fiber.Ctx) error {
	var req TestWebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	var webhook webhook_entity.Webhook
	if err := database.DB.Where("id = ?", req.WebhookID).First(&webhook).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(
			common_model.NewApiError("webhook not found", err, "database").Send(),
		)
	}

	payload := req.Payload
	if payload == nil {
		payload = map[string]any{
			"test":       true,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"webhook_id": webhook.ID.String(),
			"event":      string(webhook.Event),
			"message":    "This is a test webhook delivery from wabridge",
		}
	}

	result := executeTestWebhook(&webhook, payload)

	return c.Status(fiber.StatusOK).JSON(result)
}

func executeTestWebhook(webhook *webhook_entity.Webhook, payload any) TestWebhookResponse {
	result := TestWebhookResponse{
		HeadersSent: make(map[string]string),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		result.Error = "Failed to marshal payload: " + err.Error()
		return result
	}

	method := webhook.HttpMethod
	if method == "" {
		method = http.MethodPost
	}

	req, err := http.NewRequest(method, webhook.Url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		result.Error = "Failed to create request: " + err.Error()
		return result
	}

	req.Header.Set("Content-Type", "application/json")
	result.HeadersSent["Content-Type"] = "application/json"

	req.Header.Set("X-Wabridge-Test", "true")
	result.HeadersSent["X-Wabridge-Test"] = "true"

	req.Header.Set("X-Wabridge-Event", string(webhook.Event))
	result.HeadersSent["X-Wabridge-Event"] = string(webhook.Event)

	if webhook.Authorization != "" {
		req.Header.Set("Authorization", webhook.Authorization)
		result.HeadersSent["Authorization"] = "[REDACTED]"
	}

	if webhook.SigningEnabled && webhook.SigningSecret != "" {
		signature, timestamp := webhook_service.SignatureHeaders(webhook.SigningSecret, jsonPayload)
		req.Header.Set("X-Wabridge-Signature", signature)
		req.Header.Set("X-Wabridge-Timestamp", timestamp)
		result.HeadersSent["X-Wabridge-Signature"] = signature
		result.HeadersSent["X-Wabridge-Timestamp"] = timestamp
	}

	timeout := 30 * time.Second
	if webhook.Timeout != nil && *webhook.Timeout > 0 {
		timeout = time.Duration(*webhook.Timeout) * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	req = req.WithContext(ctx)

	client := &http.Client{}
	startTime := time.Now()
	resp, err := client.Do(req)
	result.DurationMs = time.Since(startTime).Milliseconds()

	if err != nil {
		result.Error = "Request failed: " + err.Error()
		result.Success = false
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		result.Error = "Failed to read response: " + err.Error()
		return result
	}

	result.ResponseBody = string(bodyBytes)

	var jsonResponse any
	if err := json.Unmarshal(bodyBytes, &jsonResponse); err == nil {
		result.Response = jsonResponse
	}

	return result
}
