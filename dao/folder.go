package dao

import (
	"context"

	"Woorigil/models"

	"gorm.io/gorm"
)

type Folders struct {
	Repo[models.Folder]
}

func NewFolders(db *gorm.DB) *Folders {
	return &Folders{Repo: NewRepo[models.Folder](db)}
}

// ListByUser loads the user's entire folder set in one query; the tree is
// built in memory from it.
func (f *Folders) ListByUser(ctx context.Context, userID int64) ([]models.Folder, error) {
	var folders []models.Folder
	err := f.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&folders).Error
	return folders, err
}

// FindOwned scopes the lookup to the owner; a cross-user id behaves like a
// missing row.
func (f *Folders) FindOwned(ctx context.Context, id, userID int64) (*models.Folder, error) {
	return f.FindByWhere(ctx, "id = ? AND user_id = ?", id, userID)
}

func (f *Folders) Update(ctx context.Context, id int64, updates map[string]any) error {
	return f.Db.WithContext(ctx).
		Model(&models.Folder{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteSubtree removes a folder together with its precomputed descendant ids
// in one transaction.
func (f *Folders) DeleteSubtree(ctx context.Context, userID int64, ids []int64) error {
	return f.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("user_id = ? AND id IN ?", userID, ids).
			Delete(&models.Folder{}).Error
	})
}
