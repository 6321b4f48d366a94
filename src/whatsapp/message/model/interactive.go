package whatsapp_message_model

// InteractiveKind discriminates interactive message payloads.
type InteractiveKind string

const (
	InteractiveButton      InteractiveKind = "button"
	InteractiveList        InteractiveKind = "list"
	InteractiveProduct     InteractiveKind = "product"
	InteractiveProductList InteractiveKind = "product_list"
)

// Interactive is the payload for interactive messages (reply buttons and
// list pickers).
type Interactive struct {
	Type   InteractiveKind    `json:"type" validate:"required,oneof=button list product product_list" example:"button"`
	Header *InteractiveHeader `json:"header,omitempty"`
	Body   *InteractiveBody   `json:"body,omitempty"`
	Footer *InteractiveFooter `json:"footer,omitempty"`
	Action *InteractiveAction `json:"action,omitempty"`
}

type InteractiveHeader struct {
	Type     string `json:"type" example:"text"`
	Text     string `json:"text,omitempty"`
	Image    *Media `json:"image,omitempty"`
	Video    *Media `json:"video,omitempty"`
	Document *Media `json:"document,omitempty"`
}

type InteractiveBody struct {
	Text string `json:"text" validate:"required"`
}

type InteractiveFooter struct {
	Text string `json:"text" validate:"required"`
}

// InteractiveAction carries the buttons or the list sections, depending on
// the interactive kind.
type InteractiveAction struct {
	Button            string              `json:"button,omitempty"`
	Buttons           []InteractiveReply  `json:"buttons,omitempty"`
	Sections          []Section           `json:"sections,omitempty"`
	CatalogID         string              `json:"catalog_id,omitempty"`
	ProductRetailerID string              `json:"product_retailer_id,omitempty"`
}

type InteractiveReply struct {
	Type  string       `json:"type" example:"reply"`
	Reply *ReplyButton `json:"reply,omitempty"`
}

type ReplyButton struct {
	ID    string `json:"id" validate:"required" example:"btn-yes"`
	Title string `json:"title" validate:"required" example:"Yes"`
}

type Section struct {
	Title        string        `json:"title,omitempty"`
	Rows         []SectionRow  `json:"rows,omitempty"`
	ProductItems []ProductItem `json:"product_items,omitempty"`
}

type SectionRow struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
}

type ProductItem struct {
	ProductRetailerID string `json:"product_retailer_id"`
}
