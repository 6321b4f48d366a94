package whatsapp_message_model

// Template is the payload for template messages.
type Template struct {
	Name       string              `json:"name" validate:"required" example:"order_update"`
	Language   TemplateLanguage    `json:"language" validate:"required"`
	Components []TemplateComponent `json:"components,omitempty"`
}

type TemplateLanguage struct {
	Code string `json:"code" validate:"required" example:"en_US"`
	// Policy is always deterministic for the Cloud API.
	Policy string `json:"policy,omitempty" example:"deterministic"`
}

type TemplateComponent struct {
	Type       string              `json:"type" validate:"required,oneof=header body button" example:"body"`
	SubType    string              `json:"sub_type,omitempty" example:"quick_reply"`
	Index      *int                `json:"index,omitempty"`
	Parameters []TemplateParameter `json:"parameters,omitempty"`
}

type TemplateParameter struct {
	Type     string             `json:"type" validate:"required" example:"text"`
	Text     string             `json:"text,omitempty"`
	Payload  string             `json:"payload,omitempty"`
	Image    *Media             `json:"image,omitempty"`
	Document *Media             `json:"document,omitempty"`
	Video    *Media             `json:"video,omitempty"`
	Currency *TemplateCurrency  `json:"currency,omitempty"`
	DateTime *TemplateDateTime  `json:"date_time,omitempty"`
}

type TemplateCurrency struct {
	FallbackValue string `json:"fallback_value" example:"R$12,30"`
	Code          string `json:"code" example:"BRL"`
	Amount1000    int    `json:"amount_1000" example:"12300"`
}

type TemplateDateTime struct {
	FallbackValue string `json:"fallback_value" example:"February 25, 1977"`
}
