// Package websocket_model implements the broadcast hubs behind the
// realtime streams. A Channel fans one payload out to every subscribed
// connection; a ClientPool hands out the keys that identify connections.
package websocket_model

// Heartbeat literals. Clients send Ping as a text frame and the stream
// answers Pong on the same connection.
const (
	Ping = "ping"
	Pong = "pong"
)
