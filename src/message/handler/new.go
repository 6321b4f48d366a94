package message_handler

import (
	"sync"

	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	user_entity "github.com/Altaway/wabridge-server/src/user/entity"
	websocket_model "github.com/Altaway/wabridge-server/src/websocket/model"
	"github.com/gofiber/contrib/websocket"
)

// newMessageClientPool maintains all WebSocket clients connected for new messages
var (
	newMessageClientPool = websocket_model.CreateClientPool()
	NewMessageChannel    = websocket_model.CreateChannel[websocket_model.ClientID, message_entity.Message, string]()
)

// NewMessageSubscription upgrades the connection to WebSocket and streams new WhatsApp messages.
//
//	@Summary		Subscribe to new messages
//	@Description	Establishes a WebSocket connection and streams incoming and outgoing WhatsApp messages in real-time.
//	@Tags			Message Websocket
//	@Accept			json
//	@Produce		json
//	@Success		101	{string}	string							"WebSocket connection established"
//	@Failure		400	{object}	common_model.DescriptiveError	"Invalid connection request"
//	@Failure		401	{object}	common_model.DescriptiveError	"Unauthorized"
//	@Failure		500	{object}	common_model.DescriptiveError	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/websocket/message/new [get]
func NewMessageSubscription(ctx *websocket.Conn) {
	defer ctx.Close()

	user := ctx.Locals("user").(*user_entity.User) // This must be paired with the WebsocketUserMiddleware. Otherwise will panic.

	clientID := newMessageClientPool.CreateID(user.ID)
	client := websocket_model.Client[websocket_model.ClientID]{
		Connection: ctx,
		Data:       *clientID,
	}
	NewMessageChannel.AppendClient(client, clientID.String())

	// Configuring disconnection
	defer func() {
		var deleteWg sync.WaitGroup

		deleteWg.Add(1)
		go func() {
			defer deleteWg.Done()
			newMessageClientPool.DeleteID(*clientID)
		}()

		deleteWg.Add(1)
		go func() {
			defer deleteWg.Done()
			NewMessageChannel.RemoveClient(client.Data.String())
		}()

		deleteWg.Wait()
	}()

	for {
		// Read message from WebSocket
		msgType, data, err := ctx.ReadMessage()
		if err != nil {
			break // connection closed or other error
		}

		// Only handle text frames; ignore others
		if msgType == websocket.TextMessage && string(data) == websocket_model.Ping {
			// Answer on the same connection
			if writeErr := ctx.WriteMessage(websocket.TextMessage, []byte(websocket_model.Pong)); writeErr != nil {
				break // stop if the write fails
			}
		}
	}
}
