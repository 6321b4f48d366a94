package whatsapp_message_model

// Media is the shared payload for image, audio, document, sticker and video
// messages. Either ID (uploaded media) or Link must be set.
type Media struct {
	ID   string `json:"id,omitempty" example:"1228026552389564"`
	Link string `json:"link,omitempty" example:"https://cdn.example.com/invoice.pdf"`
	// Caption is ignored by the API for audio and sticker messages.
	Caption string `json:"caption,omitempty" example:"March invoice"`
	// Filename only applies to document messages.
	Filename string `json:"filename,omitempty" example:"invoice.pdf"`
}
