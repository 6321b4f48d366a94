// Package repository holds the generic gorm access helpers shared by every
// feature. Entities are matched by their non-zero fields, so callers compose
// filters by filling the entity struct and the query helper types.
package repository

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"gorm.io/gorm"
)

// Create inserts the entity and returns it with generated columns filled.
func Create[Entity any](entity Entity, db *gorm.DB) (Entity, error) {
	err := db.Create(&entity).Error
	return entity, err
}

// First returns the first row matching the non-zero fields of entity.
func First[Entity any](entity Entity, db *gorm.DB) (Entity, error) {
	var found Entity
	err := db.Where(&entity).First(&found).Error
	return found, err
}

// Updates applies the non-zero fields of data to the rows matched by where
// and returns the reloaded row.
func Updates[Entity any](data Entity, where *Entity, db *gorm.DB) (Entity, error) {
	tx := db.Model(where).Where(where).Updates(data)
	if tx.Error != nil {
		return data, tx.Error
	}
	if tx.RowsAffected == 0 {
		return data, gorm.ErrRecordNotFound
	}

	var updated Entity
	err := db.Where(where).First(&updated).Error
	return updated, err
}

// DeleteWhere removes the rows matched by the non-zero fields of where.
func DeleteWhere[Entity any](where *Entity, db *gorm.DB) (int64, error) {
	var entity Entity
	tx := db.Where(where).Delete(&entity)
	return tx.RowsAffected, tx.Error
}

// GetPaginated lists the rows matching entity plus the extra filters,
// windowed by paging and sorted by order. Prefix scopes the audit columns
// when the query joins other tables.
func GetPaginated[Entity any](
	entity Entity,
	paging *common_model.Paginate,
	order common_model.Orderable,
	where common_model.Whereable,
	prefix string,
	db *gorm.DB,
) ([]Entity, error) {
	entities := []Entity{}

	tx := db.Model(&entity).Where(&entity)
	if where != nil {
		tx = where.Where(tx, prefix)
	}
	if order != nil {
		tx = order.Order(tx, prefix)
	}
	tx = paging.Paginate(tx)

	err := tx.Find(&entities).Error
	return entities, err
}

// Count returns the number of rows matching entity plus the extra filters.
// The db argument must already carry the model, e.g. db.Model(&Entity{}).
func Count[Entity any](
	entity Entity,
	order common_model.Orderable,
	where common_model.Whereable,
	prefix string,
	db *gorm.DB,
) (int64, error) {
	var total int64

	tx := db.Where(&entity)
	if where != nil {
		tx = where.Where(tx, prefix)
	}
	if order != nil {
		tx = order.Order(tx, prefix)
	}

	err := tx.Count(&total).Error
	return total, err
}
