package message_service

import (
	"fmt"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	message_model "github.com/Altaway/wabridge-server/src/message/model"
	"github.com/Altaway/wabridge-server/src/repository"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Expression MUST match the functional GIN index:
// idx_messages_search_trgm_unaccent ON immutable_unaccent(
//
//	COALESCE(sender_data::text, '') || ' ' || COALESCE(receiver_data::text, '') || ' ' || COALESCE(product_data::text, '')
//
// ) gin_trgm_ops
const searchableExpr = "immutable_unaccent((" +
	"COALESCE(sender_data::text, '') || ' ' || " +
	"COALESCE(receiver_data::text, '') || ' ' || " +
	"COALESCE(product_data::text, '')" +
	"))"

// Query for messages with content across sender/receiver/product using trigram GIN.
func ContentLike(
	likeText string,
	entity message_entity.Message,
	pagination *common_model.Paginate,
	order common_model.Orderable,
	whereable common_model.Whereable,
	db *gorm.DB,
) ([]message_entity.Message, error) {
	if db == nil {
		db = database.DB.Model(&entity)
	}

	db = db.
		Joins("From").
		Joins("To").
		// IMPORTANT: apply immutable_unaccent to BOTH sides so the index can be used
		Where(searchableExpr+" ILIKE immutable_unaccent(?)", likeText)

	return repository.GetPaginated(entity, pagination, order, whereable, "messages", db)
}

// Query for messages with content on a specific column (sender_data / receiver_data / product_data).
func ContentKeyLike(
	pattern string, // caller may pass "%term%" or we can build it externally
	key message_model.JsonMessageKey,
	entity message_entity.Message,
	pagination *common_model.Paginate,
	order common_model.Orderable,
	whereable common_model.Whereable,
	db *gorm.DB,
) ([]message_entity.Message, error) {
	if db == nil {
		db = database.DB.Model(&entity)
	}

	// Build expression: immutable_unaccent(COALESCE(<key>::text,''))
	// The key is validated upstream; quoting keeps the interpolation inert
	// either way without detaching the per-column indexes.
	expr := fmt.Sprintf("immutable_unaccent(COALESCE(%s::text, ''))", pq.QuoteIdentifier(string(key)))

	db = db.
		Joins("From").
		Joins("To").
		Where(expr+" ILIKE immutable_unaccent(?)", pattern)

	return repository.GetPaginated(entity, pagination, order, whereable, "messages", db)
}

// Count version of ContentLike (uses the same indexed expression)
func CountContentLike(
	likeText string,
	entity message_entity.Message,
	order common_model.Orderable,
	whereable common_model.Whereable,
	db *gorm.DB,
) (int64, error) {
	if db == nil {
		db = database.DB.Model(&entity)
	}

	db = db.
		Joins("From").
		Joins("To").
		Where(searchableExpr+" ILIKE immutable_unaccent(?)", likeText)

	return repository.Count(entity, order, whereable, "messages", db)
}
