package dao

import (
	"context"
	"time"

	"Woorigil/models"

	"gorm.io/gorm"
)

type CoupleInvitations struct {
	Repo[models.CoupleInvitation]
}

func NewCoupleInvitations(db *gorm.DB) *CoupleInvitations {
	return &CoupleInvitations{Repo: NewRepo[models.CoupleInvitation](db)}
}

// FindLiveByInviter returns the inviter's newest consumable invitation, if any.
func (d *CoupleInvitations) FindLiveByInviter(ctx context.Context, inviterID int64) (*models.CoupleInvitation, error) {
	var inv models.CoupleInvitation
	err := d.Db.WithContext(ctx).
		Where("inviter_id = ? AND used = false AND expires_at > ?", inviterID, time.Now()).
		Order("created_at DESC").
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (d *CoupleInvitations) FindByToken(ctx context.Context, token string) (*models.CoupleInvitation, error) {
	return d.FindByWhere(ctx, "token = ?", token)
}
