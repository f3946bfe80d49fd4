package dbutil

import (
	"gorm.io/gorm"
)

// FindOne returns the first row matched by db, or nil when there is none.
// A missing row is not an error.
func FindOne[T any](db *gorm.DB) (*T, error) {
	var item T
	result := db.Limit(1).Find(&item)
	if result.Error != nil {
		return nil, WrapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

// FindAll returns every row matched by db; the slice is never nil.
func FindAll[T any](db *gorm.DB) ([]T, error) {
	items := make([]T, 0)
	if err := db.Find(&items).Error; err != nil {
		return nil, WrapError(err)
	}
	return items, nil
}
