package webhook_service

import (
	"fmt"
	"time"

	"github.com/Altaway/wabridge-server/src/database"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	webhook_model "github.com/Altaway/wabridge-server/src/webhook/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnqueueDelivery queues one payload for one subscriber. Inactive
// subscribers are skipped silently; duplicate idempotency keys are treated
// as already enqueued.
func EnqueueDelivery(webhook *webhook_entity.Webhook, payload any, eventType webhook_model.Event) error {
	return EnqueueDeliveryWithKey(webhook, payload, eventType, generateIdempotencyKey(webhook.ID, eventType))
}

// EnqueueDeliveryWithKey queues a payload under a caller-chosen idempotency
// key, so retried producers never enqueue the same event twice.
func EnqueueDeliveryWithKey(webhook *webhook_entity.Webhook, payload any, eventType webhook_model.Event, idempotencyKey string) error {
	if !webhook.IsActive {
		return nil
	}

	var existing int64
	if err := database.DB.Model(&webhook_entity.WebhookDelivery{}).
		Where("idempotency_key = ?", idempotencyKey).
		Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to check existing delivery: %w", err)
	}
	if existing > 0 {
		return nil
	}

	now := time.Now()
	delivery := webhook_entity.WebhookDelivery{
		WebhookID:      webhook.ID,
		IdempotencyKey: idempotencyKey,
		Payload:        payload,
		EventType:      eventType,
		Status:         webhook_model.DeliveryStatusPending,
		AttemptCount:   0,
		MaxAttempts:    webhook.MaxRetries + 1,
		NextAttemptAt:  &now,
	}

	if err := database.DB.Create(&delivery).Error; err != nil {
		return fmt.Errorf("failed to create delivery: %w", err)
	}

	return nil
}

func generateIdempotencyKey(webhookID uuid.UUID, eventType webhook_model.Event) string {
	// The random UUID keeps identical payloads at the same instant apart.
	return fmt.Sprintf("%s:%s:%d:%s", webhookID, eventType, time.Now().UnixNano(), uuid.New())
}

// GetPendingDeliveries claims up to limit deliveries whose next attempt is
// due, oldest first, with their subscriber preloaded.
func GetPendingDeliveries(limit int) ([]webhook_entity.WebhookDelivery, error) {
	var deliveries []webhook_entity.WebhookDelivery
	now := time.Now()

	err := database.DB.
		Where("status IN ?", []webhook_model.DeliveryStatus{
			webhook_model.DeliveryStatusPending,
			webhook_model.DeliveryStatusAttempted,
		}).
		Where("next_attempt_at <= ?", now).
		Preload("Webhook").
		Order("next_attempt_at ASC").
		Limit(limit).
		Find(&deliveries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending deliveries: %w", err)
	}

	return deliveries, nil
}

// UpdateDeliveryStatus records the outcome of one attempt and schedules the
// next one with exponential backoff, or finishes the delivery.
func UpdateDeliveryStatus(delivery *webhook_entity.WebhookDelivery, success bool, httpCode int, responseBody string, errMsg string) error {
	return updateDeliveryStatus(delivery, success, httpCode, responseBody, errMsg, database.DB)
}

func updateDeliveryStatus(delivery *webhook_entity.WebhookDelivery, success bool, httpCode int, responseBody string, errMsg string, db *gorm.DB) error {
	now := time.Now()
	delivery.LastAttemptAt = &now
	delivery.AttemptCount++

	if httpCode > 0 {
		delivery.LastHttpCode = &httpCode
	}
	if responseBody != "" {
		delivery.LastResponseBody = &responseBody
	}
	if errMsg != "" {
		delivery.LastError = &errMsg
	}

	switch {
	case success:
		delivery.Status = webhook_model.DeliveryStatusSucceeded
		delivery.NextAttemptAt = nil
	case delivery.AttemptCount >= delivery.MaxAttempts:
		delivery.Status = webhook_model.DeliveryStatusDeadLetter
		delivery.NextAttemptAt = nil
	default:
		delivery.Status = webhook_model.DeliveryStatusAttempted
		nextAttempt := now.Add(NextBackoffDelay(delivery.Webhook, delivery.AttemptCount))
		delivery.NextAttemptAt = &nextAttempt
	}

	return db.Save(delivery).Error
}

// NextBackoffDelay computes base * 2^(attempt-1), capped at one hour. The
// base comes from the subscriber's retry_delay_ms, defaulting to a second.
func NextBackoffDelay(webhook *webhook_entity.Webhook, attemptCount int) time.Duration {
	baseDelay := time.Second
	if webhook != nil && webhook.RetryDelayMs > 0 {
		baseDelay = time.Duration(webhook.RetryDelayMs) * time.Millisecond
	}
	if attemptCount < 1 {
		attemptCount = 1
	}

	delay := baseDelay * time.Duration(1<<uint(attemptCount-1))
	if maxDelay := time.Hour; delay > maxDelay || delay <= 0 {
		delay = maxDelay
	}
	return delay
}
