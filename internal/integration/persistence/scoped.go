package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// update writes every column of value to the row matching id and userID.
// notFound is returned when no live row matches.
func update(ctx context.Context, db *gorm.DB, value any, userID, id uuid.UUID, notFound error) error {
	result := db.WithContext(ctx).
		Model(value).
		Where("id = ? AND user_id = ?", id, userID).
		Select("*").
		Omit("created_at", "deleted_at").
		Updates(value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

// remove soft-deletes the row matching id and userID.
func remove(ctx context.Context, db *gorm.DB, value any, userID, id uuid.UUID, notFound error) error {
	result := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}
