package whatsapp_webhook_model

// Error is the failure shape attached to messages, statuses and values.
type Error struct {
	Code      int    `json:"code" example:"131051"`
	Title     string `json:"title" example:"Unsupported message type"`
	Message   string `json:"message,omitempty"`
	ErrorData *struct {
		Details string `json:"details,omitempty"`
	} `json:"error_data,omitempty"`
}
