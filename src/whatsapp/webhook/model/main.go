// Package whatsapp_webhook_model holds the Cloud API webhook payload
// shapes. Optional collections are pointers so handlers can distinguish an
// absent section from an empty one.
package whatsapp_webhook_model

// Object is the only webhook object this server subscribes to.
const Object = "whatsapp_business_account"

// MessagesField marks the changes that carry message and status events.
const MessagesField = "messages"

// Body is the envelope Meta posts to the webhook endpoint.
type Body struct {
	Object string  `json:"object" example:"whatsapp_business_account"`
	Entry  []Entry `json:"entry"`
}

// Entry groups the changes of one WhatsApp Business Account.
type Entry struct {
	ID      string   `json:"id" example:"102290129340398"`
	Changes []Change `json:"changes"`
}

// Change is one notification inside an entry.
type Change struct {
	Field string `json:"field" example:"messages"`
	Value Value  `json:"value"`
}

// Value is the payload of a messages-field change. At most one of Messages
// and Statuses is present per change.
type Value struct {
	MessagingProduct string     `json:"messaging_product" example:"whatsapp"`
	Metadata         Metadata   `json:"metadata"`
	Contacts         *[]Contact `json:"contacts,omitempty"`
	Messages         *[]Message `json:"messages,omitempty"`
	Statuses         *[]Status  `json:"statuses,omitempty"`
	Errors           *[]Error   `json:"errors,omitempty"`
}

// Metadata identifies the business phone number that received the event.
type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number" example:"15550000000"`
	PhoneNumberID      string `json:"phone_number_id" example:"106540352242922"`
}

// Contact is the sender profile attached to inbound messages.
type Contact struct {
	Profile Profile `json:"profile"`
	WaID    string  `json:"wa_id" example:"5511999999999"`
}

// Profile carries the public profile data of a contact.
type Profile struct {
	Name string `json:"name" example:"Ada Lovelace"`
}
