package webhook_handler

import (
	"fmt"
	"sync"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	message_service "github.com/Altaway/wabridge-server/src/message/service"
	"github.com/Altaway/wabridge-server/src/repository"
	status_entity "github.com/Altaway/wabridge-server/src/status/entity"
	status_handler "github.com/Altaway/wabridge-server/src/status/handler"
	status_model "github.com/Altaway/wabridge-server/src/status/model"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	webhook_out_model "github.com/Altaway/wabridge-server/src/webhook/model"
	webhook_service "github.com/Altaway/wabridge-server/src/webhook/service"
	whatsapp_webhook_model "github.com/Altaway/wabridge-server/src/whatsapp/webhook/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// StatusCallback persists the delivery status updates of one webhook change
// and notifies subscribers after commit.
func StatusCallback(ctx *fiber.Ctx, value *whatsapp_webhook_model.Value) error {
	if value.Statuses == nil {
		return nil
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	statuses, err := handleStatuses(value, tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	go func() {
		for _, status := range statuses {
			go status_handler.NewStatusChannel.BroadcastJsonMultithread(status)
			go webhook_service.SendAllByQuery(
				webhook_entity.Webhook{
					Event: webhook_out_model.ReceiveWhatsAppMessageStatus,
				},
				status,
			)
		}
	}()

	return nil
}

// Returns the created status updates. A status whose wam id matches no
// stored message is kept with a null message id so nothing Meta reports is
// lost; statuses of blocked contacts are dropped without failing the batch.
func handleStatuses(value *whatsapp_webhook_model.Value, tx *gorm.DB) ([]status_entity.Status, error) {
	var statuses []status_entity.Status
	var statMu sync.Mutex
	var eg errgroup.Group

	for _, status := range *value.Statuses {
		eg.Go(func() error {
			wamID := status.ID

			msgs, err := message_service.GetWamID(
				wamID,
				message_entity.Message{},
				&common_model.Paginate{
					Offset: 0,
					Limit:  1,
				},
				&common_model.DateOrder{
					CreatedAtOrder: common_model.Asc,
				},
				nil,
				tx,
			)
			if err != nil {
				return err
			}

			var msgID *uuid.UUID
			if len(msgs) > 0 {
				msg := msgs[0]

				blocked := false
				if msg.From != nil {
					blocked = msg.From.Blocked
				} else if msg.To != nil {
					blocked = msg.To.Blocked
				}
				if blocked {
					return nil
				}
				msgID = &msg.ID
			}

			s, err := repository.Create(
				status_entity.Status{
					StatusFields: status_model.StatusFields{
						WamID:     wamID,
						MessageID: msgID,
					},
					ProductData: &status_model.ProductData{
						Status: &status,
					},
				},
				tx,
			)
			if err != nil {
				return err
			}
			statMu.Lock()
			statuses = append(statuses, s)
			statMu.Unlock()
			return nil
		})
	}

	err := eg.Wait()
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Error while handling status updates: %s", err.Error()),
		)
	}

	return statuses, err
}
