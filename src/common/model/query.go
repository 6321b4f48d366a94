package common_model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Orderable appends ORDER BY clauses, optionally scoped by a table prefix.
type Orderable interface {
	Order(db *gorm.DB, prefix string) *gorm.DB
}

// Whereable appends WHERE clauses, optionally scoped by a table prefix.
type Whereable interface {
	Where(db *gorm.DB, prefix string) *gorm.DB
}

// Paginate windows list queries. A zero limit means no limit.
type Paginate struct {
	Limit  int `query:"limit" json:"limit" validate:"omitempty,gte=0" example:"20"`
	Offset int `query:"offset" json:"offset" validate:"omitempty,gte=0" example:"0"`
}

// Paginate applies the window to the query.
func (p *Paginate) Paginate(db *gorm.DB) *gorm.DB {
	if p == nil {
		return db
	}
	if p.Limit > 0 {
		db = db.Limit(p.Limit)
	}
	if p.Offset > 0 {
		db = db.Offset(p.Offset)
	}
	return db
}

// OrderDirection is either asc or desc.
type OrderDirection string

const (
	Asc  OrderDirection = "asc"
	Desc OrderDirection = "desc"
)

// DateOrder orders rows by their audit timestamps.
type DateOrder struct {
	CreatedAtOrder OrderDirection `query:"created_at_order" json:"created_at_order" validate:"omitempty,oneof=asc desc" example:"desc"`
	UpdatedAtOrder OrderDirection `query:"updated_at_order" json:"updated_at_order" validate:"omitempty,oneof=asc desc" example:"asc"`
}

func (o *DateOrder) Order(db *gorm.DB, prefix string) *gorm.DB {
	if o == nil {
		return db
	}
	if o.CreatedAtOrder != "" {
		db = db.Order(fmt.Sprintf("%s %s", prefixColumn("created_at", prefix), o.CreatedAtOrder))
	}
	if o.UpdatedAtOrder != "" {
		db = db.Order(fmt.Sprintf("%s %s", prefixColumn("updated_at", prefix), o.UpdatedAtOrder))
	}
	return db
}

// DateWhere filters rows by audit timestamp ranges. Bounds are inclusive.
type DateWhere struct {
	CreatedAtGeq *time.Time `query:"created_at_geq" json:"created_at_geq" validate:"omitempty"`
	CreatedAtLeq *time.Time `query:"created_at_leq" json:"created_at_leq" validate:"omitempty"`
	UpdatedAtGeq *time.Time `query:"updated_at_geq" json:"updated_at_geq" validate:"omitempty"`
	UpdatedAtLeq *time.Time `query:"updated_at_leq" json:"updated_at_leq" validate:"omitempty"`
}

func (w *DateWhere) Where(db *gorm.DB, prefix string) *gorm.DB {
	if w == nil {
		return db
	}
	if w.CreatedAtGeq != nil {
		db = db.Where(prefixColumn("created_at", prefix)+" >= ?", w.CreatedAtGeq)
	}
	if w.CreatedAtLeq != nil {
		db = db.Where(prefixColumn("created_at", prefix)+" <= ?", w.CreatedAtLeq)
	}
	if w.UpdatedAtGeq != nil {
		db = db.Where(prefixColumn("updated_at", prefix)+" >= ?", w.UpdatedAtGeq)
	}
	if w.UpdatedAtLeq != nil {
		db = db.Where(prefixColumn("updated_at", prefix)+" <= ?", w.UpdatedAtLeq)
	}
	return db
}

// DateWhereWithDeletedAt extends DateWhere to soft-deleted rows.
type DateWhereWithDeletedAt struct {
	DateWhere
	DeletedAtGeq *time.Time `query:"deleted_at_geq" json:"deleted_at_geq" validate:"omitempty"`
	DeletedAtLeq *time.Time `query:"deleted_at_leq" json:"deleted_at_leq" validate:"omitempty"`
}

func (w *DateWhereWithDeletedAt) Where(db *gorm.DB, prefix string) *gorm.DB {
	if w == nil {
		return db
	}
	db = w.DateWhere.Where(db, prefix)
	if w.DeletedAtGeq != nil {
		db = db.Unscoped().Where(prefixColumn("deleted_at", prefix)+" >= ?", w.DeletedAtGeq)
	}
	if w.DeletedAtLeq != nil {
		db = db.Unscoped().Where(prefixColumn("deleted_at", prefix)+" <= ?", w.DeletedAtLeq)
	}
	return db
}

func prefixColumn(column, prefix string) string {
	if prefix == "" {
		return column
	}
	return prefix + "." + column
}
