// Package validators owns the process-wide validator instance and the
// custom rules for WhatsApp payloads.
package validators

import (
	"regexp"

	whatsapp_message_model "github.com/Altaway/wabridge-server/src/whatsapp/message/model"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// waPhone matches the digits-only phone numbers the Cloud API expects,
// optionally prefixed with +.
var waPhone = regexp.MustCompile(`^\+?[0-9]{5,20}$`)

// languageCode matches BCP-47 style codes like en, en_US or pt_BR.
var languageCode = regexp.MustCompile(`^[a-z]{2,3}(_[A-Z]{2})?$`)

func InitValidators() {
	validate = validator.New()

	validate.RegisterValidation("wa_phone", func(fl validator.FieldLevel) bool {
		return waPhone.MatchString(fl.Field().String())
	})

	validate.RegisterValidation("language_code", func(fl validator.FieldLevel) bool {
		return languageCode.MatchString(fl.Field().String())
	})

	validate.RegisterStructValidation(messagePayloadValidation, whatsapp_message_model.Message{})
}

// messagePayloadValidation rejects messages whose payload field does not
// match the declared type.
func messagePayloadValidation(sl validator.StructLevel) {
	message := sl.Current().Interface().(whatsapp_message_model.Message)

	populated := map[whatsapp_message_model.Type]bool{
		whatsapp_message_model.TextType:        message.Text != nil,
		whatsapp_message_model.ImageType:       message.Image != nil,
		whatsapp_message_model.AudioType:       message.Audio != nil,
		whatsapp_message_model.DocumentType:    message.Document != nil,
		whatsapp_message_model.StickerType:     message.Sticker != nil,
		whatsapp_message_model.VideoType:       message.Video != nil,
		whatsapp_message_model.LocationType:    message.Location != nil,
		whatsapp_message_model.ContactsType:    len(message.Contacts) > 0,
		whatsapp_message_model.InteractiveType: message.Interactive != nil,
		whatsapp_message_model.TemplateType:    message.Template != nil,
		whatsapp_message_model.ReactionType:    message.Reaction != nil,
	}

	if !populated[message.Type] {
		sl.ReportError(message.Type, "type", "Type", "payload_matches_type", "")
	}
}

// Validator returns the shared instance used by every handler.
func Validator() *validator.Validate {
	return validate
}
