package whatsapp_webhook_model

// StatusKind enumerates the delivery states Meta reports for a sent message.
type StatusKind string

const (
	StatusSent      StatusKind = "sent"
	StatusDelivered StatusKind = "delivered"
	StatusRead      StatusKind = "read"
	StatusFailed    StatusKind = "failed"
)

// Status is one delivery state transition of an outbound message.
type Status struct {
	ID           string        `json:"id" example:"wamid.HBgMNTUxMTk5OTk5OTk5FQIAERgSOEI1RkY3QkND"`
	Status       StatusKind    `json:"status" example:"delivered"`
	Timestamp    string        `json:"timestamp" example:"1714071912"`
	RecipientID  string        `json:"recipient_id" example:"5511999999999"`
	Conversation *Conversation `json:"conversation,omitempty"`
	Pricing      *Pricing      `json:"pricing,omitempty"`
	Errors       *[]Error      `json:"errors,omitempty"`
}

// Conversation identifies the billing conversation the message belongs to.
type Conversation struct {
	ID                  string `json:"id" example:"8e61b112cb85f1f3a0f64dcd93b06a3f"`
	ExpirationTimestamp string `json:"expiration_timestamp,omitempty"`
	Origin              *struct {
		Type string `json:"type" example:"service"`
	} `json:"origin,omitempty"`
}

// Pricing describes how the conversation is billed.
type Pricing struct {
	Billable     bool   `json:"billable"`
	PricingModel string `json:"pricing_model" example:"CBP"`
	Category     string `json:"category" example:"service"`
}
