// Package whatsapp_message_model holds the Cloud API wire shapes for
// outbound messages. A Message is a tagged union: Type discriminates which
// single payload field is populated.
package whatsapp_message_model

// MessagingProduct is the only product the Cloud API accepts.
const MessagingProduct = "whatsapp"

// RecipientType qualifies the destination of a message.
type RecipientType string

const (
	Individual RecipientType = "individual"
	Group      RecipientType = "group"
)

// Type discriminates the message union.
type Type string

const (
	TextType        Type = "text"
	ImageType       Type = "image"
	AudioType       Type = "audio"
	DocumentType    Type = "document"
	StickerType     Type = "sticker"
	VideoType       Type = "video"
	LocationType    Type = "location"
	ContactsType    Type = "contacts"
	InteractiveType Type = "interactive"
	TemplateType    Type = "template"
	ReactionType    Type = "reaction"
)

// Message is the outbound request body for POST /{phone_number_id}/messages.
// Exactly one payload field matching Type should be set.
type Message struct {
	MessagingProduct string        `json:"messaging_product" validate:"omitempty,eq=whatsapp" example:"whatsapp"`
	RecipientType    RecipientType `json:"recipient_type,omitempty" validate:"omitempty,oneof=individual group" example:"individual"`
	To               string        `json:"to" validate:"required" example:"5511999999999"`
	Type             Type          `json:"type" validate:"required,oneof=text image audio document sticker video location contacts interactive template reaction" example:"text"`

	Text        *Text        `json:"text,omitempty"`
	Image       *Media       `json:"image,omitempty"`
	Audio       *Media       `json:"audio,omitempty"`
	Document    *Media       `json:"document,omitempty"`
	Sticker     *Media       `json:"sticker,omitempty"`
	Video       *Media       `json:"video,omitempty"`
	Location    *Location    `json:"location,omitempty"`
	Contacts    []Contact    `json:"contacts,omitempty"`
	Interactive *Interactive `json:"interactive,omitempty"`
	Template    *Template    `json:"template,omitempty"`
	Reaction    *Reaction    `json:"reaction,omitempty"`

	// Context turns the message into a reply to a previous one.
	Context *Context `json:"context,omitempty"`
}

// Context references the message being replied to.
type Context struct {
	MessageID string `json:"message_id" example:"wamid.HBgMNTUxMTk5OTk5OTk5FQIAERgSOEI1RkY3QkND"`
}

// SetDefault forces the product literal and fills the recipient type.
// The Cloud API rejects any other messaging_product, so the field is
// overwritten even when set by the caller.
func (m *Message) SetDefault() {
	m.MessagingProduct = MessagingProduct
	if m.RecipientType == "" {
		m.RecipientType = Individual
	}
}
