package websocket_model

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/pterm/pterm"
)

// clientSlot owns the write side of one connection. Writes are serialized
// per connection because the underlying conn rejects concurrent writers.
type clientSlot[Data any] struct {
	client  Client[Data]
	writeMu sync.Mutex
}

// Channel is a broadcast hub. Data identifies clients, T is the payload
// type, K is the map key clients register under.
type Channel[Data any, T any, K comparable] struct {
	mu      sync.RWMutex
	clients map[K]*clientSlot[Data]
}

func CreateChannel[Data any, T any, K comparable]() *Channel[Data, T, K] {
	return &Channel[Data, T, K]{clients: make(map[K]*clientSlot[Data])}
}

// AppendClient registers a connection under key, replacing any previous
// connection registered under the same key.
func (ch *Channel[Data, T, K]) AppendClient(client Client[Data], key K) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	ch.clients[key] = &clientSlot[Data]{client: client}
}

// RemoveClient unregisters the connection under key. The connection itself
// is closed by its subscription loop, not here.
func (ch *Channel[Data, T, K]) RemoveClient(key K) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	delete(ch.clients, key)
}

// Count returns the number of registered connections.
func (ch *Channel[Data, T, K]) Count() int {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	return len(ch.clients)
}

// BroadcastJsonMultithread marshals data once and writes it to every
// registered connection concurrently, blocking until all writes finish.
// Write failures are logged and left for the subscription loop to reap.
func (ch *Channel[Data, T, K]) BroadcastJsonMultithread(data T) {
	payload, err := json.Marshal(data)
	if err != nil {
		pterm.DefaultLogger.Error("Unable to marshal websocket broadcast payload: " + err.Error())
		return
	}

	ch.mu.RLock()
	defer ch.mu.RUnlock()

	var wg sync.WaitGroup
	for _, slot := range ch.clients {
		wg.Add(1)
		go func(slot *clientSlot[Data]) {
			defer wg.Done()

			slot.writeMu.Lock()
			defer slot.writeMu.Unlock()

			if err := slot.client.Connection.WriteMessage(websocket.TextMessage, payload); err != nil {
				pterm.DefaultLogger.Warn("Unable to write websocket broadcast: " + err.Error())
			}
		}(slot)
	}
	wg.Wait()
}
