package dao

import (
	"context"
	"errors"
	"time"

	"Woorigil/models"

	"gorm.io/gorm"
)

type DiaryUsers struct {
	Repo[models.DiaryUser]
}

func NewDiaryUsers(db *gorm.DB) *DiaryUsers {
	return &DiaryUsers{Repo: NewRepo[models.DiaryUser](db)}
}

// FindOrCreate makes sharing idempotent on the (user, diary) pair. The role
// of an existing share is left untouched.
func (d *DiaryUsers) FindOrCreate(ctx context.Context, diaryID, userID int64, role string) (*models.DiaryUser, error) {
	existing, err := d.FindByWhere(ctx, "diary_id = ? AND user_id = ?", diaryID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	du := &models.DiaryUser{
		DiaryID:   diaryID,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := d.Create(ctx, du); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return d.FindByWhere(ctx, "diary_id = ? AND user_id = ?", diaryID, userID)
		}
		return nil, err
	}
	return du, nil
}

func (d *DiaryUsers) DeleteByPair(ctx context.Context, diaryID, userID int64) error {
	return d.DeleteByWhere(ctx, "diary_id = ? AND user_id = ?", diaryID, userID)
}

func (d *DiaryUsers) ListByDiary(ctx context.Context, diaryID int64) ([]models.DiaryUser, error) {
	return d.FindAllByWhere(ctx, "diary_id = ?", diaryID)
}

func (d *DiaryUsers) HasAccess(ctx context.Context, diaryID, userID int64) (bool, error) {
	return d.IsExist(ctx, "diary_id = ? AND user_id = ?", diaryID, userID)
}
