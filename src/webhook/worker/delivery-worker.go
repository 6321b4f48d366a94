package webhook_worker

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Altaway/wabridge-server/src/database"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	webhook_service "github.com/Altaway/wabridge-server/src/webhook/service"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

const (
	// PollInterval is how often the worker checks for due deliveries.
	PollInterval = 5 * time.Second
	// PoolSize caps concurrent delivery attempts.
	PoolSize = 10
	// BatchSize caps the deliveries claimed per poll.
	BatchSize = 50
	// MaxResponseBytes bounds how much of a subscriber response is stored.
	MaxResponseBytes = 64 * 1024
)

// DeliveryWorker drains the webhook delivery queue in the background.
type DeliveryWorker struct {
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	httpClient *http.Client
}

// NewDeliveryWorker builds a stopped worker.
func NewDeliveryWorker() *DeliveryWorker {
	ctx, cancel := context.WithCancel(context.Background())
	return &DeliveryWorker{
		ctx:    ctx,
		cancel: cancel,
		httpClient: &http.Client{
			// Default bound, tightened per request by the subscriber timeout.
			Timeout: 30 * time.Second,
		},
	}
}

// Start begins polling for due deliveries.
func (w *DeliveryWorker) Start() {
	w.wg.Add(1)
	go w.run()
	pterm.DefaultLogger.Info("Webhook delivery worker started")
}

// Stop cancels the poll loop and waits for in-flight attempts.
func (w *DeliveryWorker) Stop() {
	pterm.DefaultLogger.Info("Stopping webhook delivery worker...")
	w.cancel()
	w.wg.Wait()
	pterm.DefaultLogger.Info("Webhook delivery worker stopped")
}

func (w *DeliveryWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.processPendingDeliveries()
		}
	}
}

func (w *DeliveryWorker) processPendingDeliveries() {
	deliveries, err := webhook_service.GetPendingDeliveries(BatchSize)
	if err != nil {
		pterm.DefaultLogger.Error("Failed to get pending deliveries: " + err.Error())
		return
	}

	if len(deliveries) == 0 {
		return
	}

	g, ctx := errgroup.WithContext(w.ctx)
	g.SetLimit(PoolSize)

	for i := range deliveries {
		delivery := &deliveries[i]
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				w.processDelivery(delivery)
				return nil
			}
		})
	}

	if err := g.Wait(); err != nil && err != context.Canceled {
		pterm.DefaultLogger.Error("Error processing deliveries: " + err.Error())
	}
}

func (w *DeliveryWorker) processDelivery(delivery *webhook_entity.WebhookDelivery) {
	if delivery.Webhook == nil {
		var webhook webhook_entity.Webhook
		if err := database.DB.First(&webhook, "id = ?", delivery.WebhookID).Error; err != nil {
			pterm.DefaultLogger.Error("Failed to load webhook: " + err.Error())
			webhook_service.UpdateDeliveryStatus(delivery, false, 0, "", err.Error())
			return
		}
		delivery.Webhook = &webhook
	}

	httpCode, responseBody, err := w.executeDelivery(delivery)

	success := err == nil && httpCode >= 200 && httpCode < 300

	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	if updateErr := webhook_service.UpdateDeliveryStatus(delivery, success, httpCode, responseBody, errMsg); updateErr != nil {
		pterm.DefaultLogger.Error("Failed to update delivery status: " + updateErr.Error())
	}
}

// executeDelivery performs one HTTP attempt against the subscriber.
func (w *DeliveryWorker) executeDelivery(delivery *webhook_entity.WebhookDelivery) (int, string, error) {
	webhook := delivery.Webhook

	jsonPayload, err := json.Marshal(delivery.Payload)
	if err != nil {
		return 0, "", err
	}

	method := webhook.HttpMethod
	if method == "" {
		method = http.MethodPost
	}

	req, err := http.NewRequest(method, webhook.Url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return 0, "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Wabridge-Delivery-ID", delivery.ID.String())
	req.Header.Set("X-Wabridge-Event", string(delivery.EventType))
	req.Header.Set("X-Wabridge-Attempt", strconv.Itoa(delivery.AttemptCount+1))

	if webhook.Authorization != "" {
		req.Header.Set("Authorization", webhook.Authorization)
	}

	if webhook.SigningEnabled && webhook.SigningSecret != "" {
		signature, timestamp := webhook_service.SignatureHeaders(webhook.SigningSecret, jsonPayload)
		req.Header.Set("X-Wabridge-Signature", signature)
		req.Header.Set("X-Wabridge-Timestamp", timestamp)
	}

	timeout := 30 * time.Second
	if webhook.Timeout != nil && *webhook.Timeout > 0 {
		timeout = time.Duration(*webhook.Timeout) * time.Second
	}

	ctx, cancel := context.WithTimeout(w.ctx, timeout)
	defer cancel()
	req = req.WithContext(ctx)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return resp.StatusCode, "", err
	}

	return resp.StatusCode, string(bodyBytes), nil
}
