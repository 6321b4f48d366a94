// Package whatsapp_client talks to the Meta Graph API for one business
// phone number. Construct an Api with New and share it: methods never
// mutate the configuration.
package whatsapp_client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://graph.facebook.com"

// Config carries the credentials and addressing for one phone number.
type Config struct {
	// AccessToken is the system user bearer token.
	AccessToken string
	// PhoneNumberID scopes message and media sends.
	PhoneNumberID string
	// AccountID is the WhatsApp Business Account id, used for templates.
	AccountID string
	// Version is the Graph API version, e.g. v21.0.
	Version string
	// BaseURL defaults to the public Graph API host.
	BaseURL string
}

// Api is a Cloud API client bound to one Config.
type Api struct {
	config Config
	client *http.Client
}

// New builds an Api with a default HTTP client.
func New(config Config) *Api {
	return NewWithClient(config, &http.Client{Timeout: 30 * time.Second})
}

// NewWithClient builds an Api that sends through the given HTTP client.
func NewWithClient(config Config, client *http.Client) *Api {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &Api{config: config, client: client}
}

// PhoneNumberID exposes the configured phone number id.
func (a *Api) PhoneNumberID() string {
	return a.config.PhoneNumberID
}

// phoneURL renders {base}/{version}/{phone_number_id}{path}.
func (a *Api) phoneURL(path string) string {
	return fmt.Sprintf("%s/%s/%s%s", a.config.BaseURL, a.config.Version, a.config.PhoneNumberID, path)
}

// accountURL renders {base}/{version}/{account_id}{path}.
func (a *Api) accountURL(path string) string {
	return fmt.Sprintf("%s/%s/%s%s", a.config.BaseURL, a.config.Version, a.config.AccountID, path)
}

// graphURL renders {base}/{version}/{id} for nodes outside both scopes,
// e.g. media ids.
func (a *Api) graphURL(id string) string {
	return fmt.Sprintf("%s/%s/%s", a.config.BaseURL, a.config.Version, id)
}

func (a *Api) postJSON(url string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return a.do(req, out)
}

func (a *Api) getJSON(url string, out any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	return a.do(req, out)
}

// do executes the request with the bearer token and decodes the response
// into out. Non-2xx replies become a *StatusError.
func (a *Api) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+a.config.AccessToken)

	res, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(res.StatusCode, res.Status, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response body: %w", err)
	}
	return nil
}
