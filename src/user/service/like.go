package user_service

import (
	"fmt"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/repository"
	user_entity "github.com/Altaway/wabridge-server/src/user/entity"
	user_model "github.com/Altaway/wabridge-server/src/user/model"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ContentKeyLike lists users whose key column matches the pattern, accent and
// case insensitively. The key must already be validated against
// user_model.SearchableUserColumn because it is interpolated into the
// expression.
func ContentKeyLike(
	likeText string,
	key user_model.SearchableUserColumn,
	entity user_entity.User,
	pagination *common_model.Paginate,
	order common_model.Orderable,
	whereable common_model.Whereable,
	db *gorm.DB,
) ([]user_entity.User, error) {
	if db == nil {
		db = database.DB.Model(&entity)
	}

	// Quoting keeps the interpolation inert even if the validation layer
	// ever grows a hole. Quoted and bare column names parse to the same
	// expression, so the trigram indexes still apply.
	expr := fmt.Sprintf("immutable_unaccent(COALESCE(%s::text, ''))", pq.QuoteIdentifier(string(key)))

	db = db.
		Where(expr+" ILIKE immutable_unaccent(?)", likeText)

	users, err := repository.GetPaginated(
		entity,
		pagination,
		order,
		whereable,
		"",
		db,
	)
	return users, err
}
