package media_handler

import (
	"errors"
	"strconv"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	common_service "github.com/Altaway/wabridge-server/src/common/service"
	"github.com/Altaway/wabridge-server/src/integration/whatsapp"
	"github.com/Altaway/wabridge-server/src/validators"
	whatsapp_client "github.com/Altaway/wabridge-server/src/whatsapp/client"
	"github.com/gofiber/fiber/v2"
)

// GetWhatsAppMediaURL retrieves a temporary download URL for a WhatsApp media item.
//
//	@Summary		Get WhatsApp media URL
//	@Description	Uses the WhatsApp API to retrieve a temporary media download URL. This URL expires in 5 minutes.
//	@Tags			Media
//	@Accept			json
//	@Produce		json
//	@Param			mediaID	path		string							true	"Media ID"
//	@Success		200		{object}	whatsapp_client.MediaInfo		"Media information with download URL"
//	@Failure		400		{object}	common_model.DescriptiveError	"Missing or invalid media ID"
//	@Failure		500		{object}	common_model.DescriptiveError	"Failed to retrieve media URL"
//	@Security		ApiKeyAuth
//	@Router			/media/whatsapp/{mediaID} [get]
func GetWhatsAppMediaURL(ctx *fiber.Ctx) error {
	mediaID := ctx.Params("mediaID")
	if mediaID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("media ID is required", errors.New("no media ID provided"), "handler").Send(),
		)
	}

	mediaInfo, err := whatsapp.WabaApi.RetrieveMediaURL(mediaID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("failed to retrieve media URL", err, "whatsapp_client").Send(),
		)
	}

	return ctx.Status(fiber.StatusOK).JSON(mediaInfo)
}

// DownloadWhatsAppMedia downloads a media file directly from WhatsApp using its media ID.
//
//	@Summary		Download WhatsApp media
//	@Description	Downloads media using a temporary URL retrieved via the WhatsApp API.
//	@Tags			Media
//	@Accept			json
//	@Produce		application/octet-stream
//	@Param			mediaID	path		string							true	"Media ID"
//	@Success		200		{file}		binary							"Downloaded media file"
//	@Failure		400		{object}	common_model.DescriptiveError	"Missing or invalid media ID"
//	@Failure		500		{object}	common_model.DescriptiveError	"Failed to download media"
//	@Security		ApiKeyAuth
//	@Router			/media/whatsapp/download/{mediaID} [get]
func DownloadWhatsAppMedia(ctx *fiber.Ctx) error {
	mediaID := ctx.Params("mediaID")
	if mediaID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("media ID is required", errors.New("no media ID provided"), "handler").Send(),
		)
	}

	mediaInfo, err := whatsapp.WabaApi.RetrieveMediaURL(mediaID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("failed to retrieve media URL", err, "whatsapp_client").Send(),
		)
	}

	mediaBytes, err := whatsapp.WabaApi.DownloadMedia(mediaInfo.URL)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("failed to download media", err, "whatsapp_client").Send(),
		)
	}

	ctx.Set("Content-Type", mediaInfo.MimeType)
	ctx.Set("Content-Disposition", "attachment; filename="+mediaID+"."+common_service.GetExtensionFromMimeType(mediaInfo.MimeType))
	ctx.Set("Content-Length", strconv.FormatInt(mediaInfo.FileSize, 10))

	return ctx.Send(mediaBytes)
}

// DownloadFromMediaInfo downloads media based on information in the request body.
//
//	@Summary		Download media from MediaInfo
//	@Description	Receives MediaInfo JSON, validates it, downloads the media from the provided URL, and streams it.
//	@Tags			Media
//	@Accept			json
//	@Produce		application/octet-stream
//	@Param			mediaInfo	body		whatsapp_client.MediaInfo		true	"Media Info with URL and metadata"
//	@Success		200			{file}		binary							"Downloaded media file"
//	@Failure		400			{object}	common_model.DescriptiveError	"Invalid MediaInfo"
//	@Failure		500			{object}	common_model.DescriptiveError	"Failed to download media"
//	@Security		ApiKeyAuth
//	@Router			/media/whatsapp/media-info/download [post]
func DownloadFromMediaInfo(ctx *fiber.Ctx) error {
	var mediaInfo whatsapp_client.MediaInfo
	if err := ctx.BodyParser(&mediaInfo); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(&mediaInfo); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	mediaBytes, err := whatsapp.WabaApi.DownloadMedia(mediaInfo.URL)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("failed to download media", err, "whatsapp_client").Send(),
		)
	}

	ctx.Set("Content-Type", mediaInfo.MimeType)
	ctx.Set("Content-Disposition", "attachment; filename="+mediaInfo.ID+"."+common_service.GetExtensionFromMimeType(mediaInfo.MimeType))
	ctx.Set("Content-Length", strconv.FormatInt(mediaInfo.FileSize, 10))

	return ctx.Send(mediaBytes)
}

// UploadWhatsAppMedia uploads a media file to WhatsApp.
//
//	@Summary		Upload media file
//	@Description	Uploads a media file to WhatsApp. Files remain available for up to 30 days unless deleted earlier.
//	@Tags			Media
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file							true	"Media file"
//	@Param			type	formData	string							true	"MIME type of the media file"
//	@Success		200		{object}	whatsapp_client.UploadResponse	"Media ID returned from WhatsApp"
//	@Failure		400		{object}	common_model.DescriptiveError	"Missing file or MIME type"
//	@Failure		415		{object}	common_model.DescriptiveError	"Unsupported media type"
//	@Failure		500		{object}	common_model.DescriptiveError	"Failed to upload media"
//	@Security		ApiKeyAuth
//	@Router			/media/whatsapp/upload [post]
func UploadWhatsAppMedia(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("file is required", err, "handler").Send(),
		)
	}

	mimeType := ctx.FormValue("type")
	if mimeType == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("MIME type is required", errors.New("no type provided"), "handler").Send(),
		)
	}

	supportedMimeType, err := whatsapp_client.ParseMimeType(mimeType)
	if err != nil {
		return ctx.Status(fiber.StatusUnsupportedMediaType).JSON(
			common_model.NewApiError("unsupported MIME type", err, "whatsapp_client").Send(),
		)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to open file", err, "handler").Send(),
		)
	}
	defer file.Close()

	mediaID, err := whatsapp.WabaApi.UploadMedia(fileHeader.Filename, supportedMimeType, file)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("failed to upload media", err, "whatsapp_client").Send(),
		)
	}

	return ctx.Status(fiber.StatusOK).JSON(mediaID)
}

// DeleteWhatsAppMedia removes an uploaded media item.
//
//	@Summary		Delete WhatsApp media
//	@Description	Deletes an uploaded media item before its 30 day retention window ends.
//	@Tags			Media
//	@Param			mediaID	path		string							true	"Media ID"
//	@Success		204		{string}	string							"No content"
//	@Failure		400		{object}	common_model.DescriptiveError	"Missing or invalid media ID"
//	@Failure		500		{object}	common_model.DescriptiveError	"Failed to delete media"
//	@Security		ApiKeyAuth
//	@Router			/media/whatsapp/{mediaID} [delete]
func DeleteWhatsAppMedia(ctx *fiber.Ctx) error {
	mediaID := ctx.Params("mediaID")
	if mediaID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("media ID is required", errors.New("no media ID provided"), "handler").Send(),
		)
	}

	if err := whatsapp.WabaApi.DeleteMedia(mediaID); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("failed to delete media", err, "whatsapp_client").Send(),
		)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
