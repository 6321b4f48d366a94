package whatsapp_client

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// TemplateQueryParams pages through the account's message templates.
type TemplateQueryParams struct {
	Limit  int    `query:"limit" json:"limit" validate:"omitempty,gte=1,lte=100" example:"25"`
	After  string `query:"after" json:"after" validate:"omitempty"`
	Before string `query:"before" json:"before" validate:"omitempty"`
}

// MessageTemplate is one approved (or pending) template definition.
type MessageTemplate struct {
	ID         string            `json:"id" example:"594425479261596"`
	Name       string            `json:"name" example:"order_update"`
	Language   string            `json:"language" example:"en_US"`
	Status     string            `json:"status" example:"APPROVED"`
	Category   string            `json:"category" example:"UTILITY"`
	Components []json.RawMessage `json:"components,omitempty"`
}

// GetTemplateResponse is the paginated template listing.
type GetTemplateResponse struct {
	Data   []MessageTemplate `json:"data"`
	Paging *TemplatePaging   `json:"paging,omitempty"`
}

// TemplatePaging carries the Graph API cursor pair.
type TemplatePaging struct {
	Cursors struct {
		Before string `json:"before" example:"MAZDZD"`
		After  string `json:"after" example:"MjQZD"`
	} `json:"cursors"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// GetTemplates lists the templates of the business account with cursor
// pagination.
func (a *Api) GetTemplates(query TemplateQueryParams) (GetTemplateResponse, error) {
	var response GetTemplateResponse

	params := url.Values{}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.After != "" {
		params.Set("after", query.After)
	}
	if query.Before != "" {
		params.Set("before", query.Before)
	}

	endpoint := a.accountURL("/message_templates")
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	err := a.getJSON(endpoint, &response)
	return response, err
}
