package webhook_service

import (
	"sync"

	whatsapp_webhook_model "github.com/Altaway/wabridge-server/src/whatsapp/webhook/model"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// Event names the webhook notification kinds handlers can subscribe to.
type Event string

const (
	// MessageEvent fires for changes that carry inbound messages.
	MessageEvent Event = "message"
	// StatusEvent fires for changes that carry delivery status updates.
	StatusEvent Event = "status"
)

// Handler processes the value of one webhook change. Every handler
// subscribed to the same change receives the same value.
type Handler func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error

// Registry fans webhook changes out to the handlers subscribed per event.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Event][]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Event][]Handler)}
}

// On subscribes handlers to an event. Subscriptions are append only.
func (r *Registry) On(event Event, handlers ...Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[event] = append(r.handlers[event], handlers...)
}

// Dispatch walks the payload and runs the subscribed handlers concurrently.
// The boolean reports whether the payload belongs to a WhatsApp Business
// Account at all. Handling is all-or-nothing per payload: Dispatch waits for
// every handler and returns the first error.
func (r *Registry) Dispatch(c *fiber.Ctx, body *whatsapp_webhook_model.Body) (bool, error) {
	if body == nil || body.Object != whatsapp_webhook_model.Object {
		return false, nil
	}

	r.mu.RLock()
	messageHandlers := r.handlers[MessageEvent]
	statusHandlers := r.handlers[StatusEvent]
	r.mu.RUnlock()

	var eg errgroup.Group
	for _, entry := range body.Entry {
		for _, change := range entry.Changes {
			if change.Field != whatsapp_webhook_model.MessagesField {
				continue
			}
			value := &change.Value
			if value.Messages != nil {
				for _, handler := range messageHandlers {
					eg.Go(func() error { return handler(c, value) })
				}
			}
			if value.Statuses != nil {
				for _, handler := range statusHandlers {
					eg.Go(func() error { return handler(c, value) })
				}
			}
		}
	}

	return true, eg.Wait()
}
