package dao

import (
	"context"

	"Woorigil/models"

	"gorm.io/gorm"
)

type Diaries struct {
	Repo[models.Diary]
}

func NewDiaries(db *gorm.DB) *Diaries {
	return &Diaries{Repo: NewRepo[models.Diary](db)}
}

// ListAccessible returns diaries the user owns plus diaries shared with them,
// newest first.
func (d *Diaries) ListAccessible(ctx context.Context, userID int64) ([]models.Diary, error) {
	var diaries []models.Diary
	err := d.Db.WithContext(ctx).
		Model(&models.Diary{}).
		Joins("LEFT JOIN diary_users ON diary_users.diary_id = diaries.id").
		Where("diaries.user_id = ? OR diary_users.user_id = ?", userID, userID).
		Group("diaries.id").
		Order("diaries.created_at DESC").
		Find(&diaries).Error
	return diaries, err
}

func (d *Diaries) Update(ctx context.Context, id int64, updates map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Diary{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete removes the diary and its share rows together.
func (d *Diaries) Delete(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("diary_id = ?", id).Delete(&models.DiaryUser{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Diary{}).Error
	})
}
