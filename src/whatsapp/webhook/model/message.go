package whatsapp_webhook_model

// Message is one inbound message event. Type discriminates which payload
// field is populated.
type Message struct {
	From      string `json:"from" example:"5511999999999"`
	ID        string `json:"id" example:"wamid.HBgMNTUxMTk5OTk5OTk5FQIAEhgUM0FGRjYwQzM5RjA1OEM1RDdEMDQA"`
	Timestamp string `json:"timestamp" example:"1714071907"`
	Type      string `json:"type" example:"text"`

	Text        *Text               `json:"text,omitempty"`
	Image       *Media              `json:"image,omitempty"`
	Audio       *Media              `json:"audio,omitempty"`
	Video       *Media              `json:"video,omitempty"`
	Document    *Media              `json:"document,omitempty"`
	Sticker     *Media              `json:"sticker,omitempty"`
	Location    *Location           `json:"location,omitempty"`
	Contacts    *[]SharedContact    `json:"contacts,omitempty"`
	Interactive *Interactive        `json:"interactive,omitempty"`
	Button      *Button             `json:"button,omitempty"`
	Reaction    *Reaction           `json:"reaction,omitempty"`
	Order       *Order              `json:"order,omitempty"`
	System      *System             `json:"system,omitempty"`
	Referral    *Referral           `json:"referral,omitempty"`
	Context     *Context            `json:"context,omitempty"`
	Errors      *[]Error            `json:"errors,omitempty"`
}

// Text carries the body of a text message.
type Text struct {
	Body string `json:"body" example:"Hi, I need help with my order"`
}

// Media describes inbound media. The binary must be fetched separately
// through the media endpoints while the id is still valid.
type Media struct {
	ID       string `json:"id" example:"1228026552389564"`
	MimeType string `json:"mime_type" example:"image/jpeg"`
	Sha256   string `json:"sha256,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
	Animated bool   `json:"animated,omitempty"`
	Voice    bool   `json:"voice,omitempty"`
}

// Location is an inbound location pin.
type Location struct {
	Latitude  float64 `json:"latitude" example:"-23.55052"`
	Longitude float64 `json:"longitude" example:"-46.633309"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
	URL       string  `json:"url,omitempty"`
}

// SharedContact is a contact card forwarded by the user.
type SharedContact struct {
	Name *struct {
		FormattedName string `json:"formatted_name"`
		FirstName     string `json:"first_name,omitempty"`
		LastName      string `json:"last_name,omitempty"`
	} `json:"name,omitempty"`
	Phones []struct {
		Phone string `json:"phone,omitempty"`
		Type  string `json:"type,omitempty"`
		WaID  string `json:"wa_id,omitempty"`
	} `json:"phones,omitempty"`
	Emails []struct {
		Email string `json:"email,omitempty"`
		Type  string `json:"type,omitempty"`
	} `json:"emails,omitempty"`
	Org *struct {
		Company string `json:"company,omitempty"`
	} `json:"org,omitempty"`
}

// Interactive carries button and list replies.
type Interactive struct {
	Type        string       `json:"type" example:"button_reply"`
	ButtonReply *ButtonReply `json:"button_reply,omitempty"`
	ListReply   *ListReply   `json:"list_reply,omitempty"`
}

// ButtonReply is the answer to a reply-button message.
type ButtonReply struct {
	ID    string `json:"id" example:"btn-yes"`
	Title string `json:"title" example:"Yes"`
}

// ListReply is the answer to a list picker message.
type ListReply struct {
	ID          string `json:"id" example:"row-1"`
	Title       string `json:"title" example:"Morning slot"`
	Description string `json:"description,omitempty"`
}

// Button is the answer to a template quick-reply button.
type Button struct {
	Text    string `json:"text" example:"Confirm"`
	Payload string `json:"payload" example:"confirm-order"`
}

// Reaction is an emoji reaction to a previous message.
type Reaction struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji,omitempty"`
}

// Order carries catalog purchases.
type Order struct {
	CatalogID    string `json:"catalog_id"`
	Text         string `json:"text,omitempty"`
	ProductItems []struct {
		ProductRetailerID string `json:"product_retailer_id"`
		Quantity          string `json:"quantity"`
		ItemPrice         string `json:"item_price"`
		Currency          string `json:"currency"`
	} `json:"product_items,omitempty"`
}

// System notifies phone number or identity changes.
type System struct {
	Body     string `json:"body,omitempty"`
	NewWaID  string `json:"new_wa_id,omitempty"`
	WaID     string `json:"wa_id,omitempty"`
	Type     string `json:"type,omitempty"`
	Customer string `json:"customer,omitempty"`
}

// Referral is set when the conversation started from an ad or post.
type Referral struct {
	SourceURL  string `json:"source_url,omitempty"`
	SourceID   string `json:"source_id,omitempty"`
	SourceType string `json:"source_type,omitempty"`
	Headline   string `json:"headline,omitempty"`
	Body       string `json:"body,omitempty"`
	MediaType  string `json:"media_type,omitempty"`
}

// Context links a reply to the message it answers.
type Context struct {
	From      string `json:"from,omitempty"`
	ID        string `json:"id,omitempty"`
	Forwarded bool   `json:"forwarded,omitempty"`
	ReferredProduct *struct {
		CatalogID         string `json:"catalog_id"`
		ProductRetailerID string `json:"product_retailer_id"`
	} `json:"referred_product,omitempty"`
}
