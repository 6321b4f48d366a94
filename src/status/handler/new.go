package status_handler

import (
	"sync"

	status_entity "github.com/Altaway/wabridge-server/src/status/entity"
	user_entity "github.com/Altaway/wabridge-server/src/user/entity"
	websocket_model "github.com/Altaway/wabridge-server/src/websocket/model"
	"github.com/gofiber/contrib/websocket"
)

var (
	newStatusClientPool = websocket_model.CreateClientPool()
	NewStatusChannel    = websocket_model.CreateChannel[websocket_model.ClientID, status_entity.Status, string]()
)

// NewStatusSubscription establishes a WebSocket connection to receive real-time status updates.
//
//	@Summary		Subscribe to status updates
//	@Description	Upgrades the HTTP connection to a WebSocket stream to receive real-time message status updates.
//	@Tags			Status Websocket
//	@Accept			json
//	@Produce		json
//	@Success		101	{string}	string							"WebSocket connection established"
//	@Failure		400	{object}	common_model.DescriptiveError	"Invalid WebSocket handshake"
//	@Failure		401	{object}	common_model.DescriptiveError	"Unauthorized"
//	@Failure		500	{object}	common_model.DescriptiveError	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/websocket/status/new [get]
func NewStatusSubscription(ctx *websocket.Conn) {
	defer ctx.Close()

	user := ctx.Locals("user").(*user_entity.User) // This must be paired with the WebsocketUserMiddleware. Otherwise will panic.

	clientID := newStatusClientPool.CreateID(user.ID)
	client := websocket_model.Client[websocket_model.ClientID]{
		Connection: ctx,
		Data:       *clientID,
	}
	NewStatusChannel.AppendClient(client, clientID.String())

	defer func() {
		var deleteWg sync.WaitGroup

		deleteWg.Add(1)
		go func() {
			defer deleteWg.Done()
			newStatusClientPool.DeleteID(*clientID)
		}()

		deleteWg.Add(1)
		go func() {
			defer deleteWg.Done()
			NewStatusChannel.RemoveClient(client.Data.String())
		}()

		deleteWg.Wait()
	}()

	for {
		msgType, data, err := ctx.ReadMessage()
		if err != nil {
			break
		}

		if msgType == websocket.TextMessage && string(data) == websocket_model.Ping {
			if writeErr := ctx.WriteMessage(websocket.TextMessage, []byte(websocket_model.Pong)); writeErr != nil {
				break
			}
		}
	}
}
