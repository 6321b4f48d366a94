package whatsapp_message_model

// ReadStatus marks an inbound message as read, optionally showing a typing
// indicator while a reply is being prepared.
type ReadStatus struct {
	MessagingProduct string           `json:"messaging_product" example:"whatsapp"`
	Status           string           `json:"status" example:"read"`
	MessageID        string           `json:"message_id" validate:"required" example:"wamid.HBgMNTUxMTk5OTk5OTk5FQIAERgSOEI1RkY3QkND"`
	TypingIndicator  *TypingIndicator `json:"typing_indicator,omitempty"`
}

// TypingIndicator shows the typing ellipsis to the recipient.
type TypingIndicator struct {
	Type string `json:"type" example:"text"`
}

// NewReadStatus builds the mark-as-read body for a received message.
func NewReadStatus(wamID string) ReadStatus {
	return ReadStatus{
		MessagingProduct: MessagingProduct,
		Status:           "read",
		MessageID:        wamID,
	}
}

// NewTypingStatus builds the mark-as-read body that also turns the typing
// indicator on.
func NewTypingStatus(wamID string) ReadStatus {
	status := NewReadStatus(wamID)
	status.TypingIndicator = &TypingIndicator{Type: "text"}
	return status
}

// StatusResponse is the Cloud API reply to a status update.
type StatusResponse struct {
	Success bool `json:"success" example:"true"`
}
