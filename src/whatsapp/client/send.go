package whatsapp_client

import (
	whatsapp_message_model "github.com/Altaway/wabridge-server/src/whatsapp/message/model"
)

// Send delivers one message through POST /{phone_number_id}/messages. The
// messaging product literal and the recipient type default are forced
// before the request leaves, so callers cannot produce a rejected body.
func (a *Api) Send(message whatsapp_message_model.Message) (whatsapp_message_model.SendResponse, error) {
	message.SetDefault()

	var response whatsapp_message_model.SendResponse
	err := a.postJSON(a.phoneURL("/messages"), message, &response)
	return response, err
}

// MarkAsRead flags an inbound message as read on the user's device.
func (a *Api) MarkAsRead(wamID string) (whatsapp_message_model.StatusResponse, error) {
	body := whatsapp_message_model.NewReadStatus(wamID)

	var response whatsapp_message_model.StatusResponse
	err := a.postJSON(a.phoneURL("/messages"), body, &response)
	return response, err
}

// SendTyping marks the message as read and shows the typing indicator. The
// indicator stays on until a message is sent or 25 seconds pass.
func (a *Api) SendTyping(wamID string) (whatsapp_message_model.StatusResponse, error) {
	body := whatsapp_message_model.NewTypingStatus(wamID)

	var response whatsapp_message_model.StatusResponse
	err := a.postJSON(a.phoneURL("/messages"), body, &response)
	return response, err
}
