package whatsapp_message_model

// Reaction is the payload for reaction messages. An empty Emoji removes a
// previous reaction.
type Reaction struct {
	MessageID string `json:"message_id" validate:"required" example:"wamid.HBgMNTUxMTk5OTk5OTk5FQIAERgSOEI1RkY3QkND"`
	Emoji     string `json:"emoji" example:"\U0001F44D"`
}
