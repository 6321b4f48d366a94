package whatsapp_message_model

// SendResponse is the Cloud API reply to a successful send.
type SendResponse struct {
	MessagingProduct string            `json:"messaging_product" example:"whatsapp"`
	Contacts         []ResponseContact `json:"contacts"`
	Messages         []ResponseMessage `json:"messages"`
}

// ResponseContact echoes the requested recipient and its canonical wa id.
type ResponseContact struct {
	Input string `json:"input" example:"5511999999999"`
	WaID  string `json:"wa_id" example:"5511999999999"`
}

// ResponseMessage carries the wam id assigned to the accepted message.
type ResponseMessage struct {
	ID string `json:"id" example:"wamid.HBgMNTUxMTk5OTk5OTk5FQIAERgSOEI1RkY3QkND"`
}

// WamID returns the id of the first accepted message, empty when the API
// accepted nothing.
func (r *SendResponse) WamID() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].ID
}

// ErrorResponse is the Graph API error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a Graph API failure.
type ErrorDetail struct {
	Message      string `json:"message" example:"(#131030) Recipient phone number not in allowed list"`
	Type         string `json:"type" example:"OAuthException"`
	Code         int    `json:"code" example:"131030"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	ErrorData    *struct {
		MessagingProduct string `json:"messaging_product,omitempty"`
		Details          string `json:"details,omitempty"`
	} `json:"error_data,omitempty"`
	FbtraceID string `json:"fbtrace_id,omitempty" example:"AbCdEfGh123"`
}
