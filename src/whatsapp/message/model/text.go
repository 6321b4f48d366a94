package whatsapp_message_model

// Text is the payload for text messages.
type Text struct {
	Body string `json:"body" validate:"required" example:"Hello from the API"`
	// PreviewURL asks WhatsApp to render a link preview for URLs in Body.
	PreviewURL bool `json:"preview_url,omitempty" example:"false"`
}
