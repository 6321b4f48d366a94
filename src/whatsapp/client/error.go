package whatsapp_client

import (
	"encoding/json"
	"fmt"

	whatsapp_message_model "github.com/Altaway/wabridge-server/src/whatsapp/message/model"
)

// StatusError is returned whenever the Graph API replies with a non-2xx
// status. Code always carries the numeric HTTP status.
type StatusError struct {
	Code   int
	Status string
	Body   string
	// Detail is filled when the body parses as a Graph error envelope.
	Detail *whatsapp_message_model.ErrorDetail
}

func (e *StatusError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf(
			"whatsapp cloud api request failed with status %d (%s): %s",
			e.Code, e.Detail.Type, e.Detail.Message,
		)
	}
	return fmt.Sprintf("whatsapp cloud api request failed with status %d: %s", e.Code, e.Body)
}

func newStatusError(code int, status string, body []byte) *StatusError {
	statusErr := &StatusError{
		Code:   code,
		Status: status,
		Body:   string(body),
	}

	var envelope whatsapp_message_model.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		statusErr.Detail = &envelope.Error
	}

	return statusErr
}
