package database

import (
	"gorm.io/gorm"
)

// OrderByName sorts records by their name column, ascending. The directory
// view relies on the database for ordering and never re-sorts client-side.
func OrderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}
