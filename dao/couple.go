package dao

import (
	"context"
	"time"

	"Woorigil/models"

	"gorm.io/gorm"
)

type Couples struct {
	Repo[models.Couple]
}

func NewCouples(db *gorm.DB) *Couples {
	return &Couples{Repo: NewRepo[models.Couple](db)}
}

func (c *Couples) FindForUser(ctx context.Context, userID int64) (*models.Couple, error) {
	return c.FindByWhere(ctx, "user1_id = ? OR user2_id = ?", userID, userID)
}

func (c *Couples) IsCoupled(ctx context.Context, userID int64) (bool, error) {
	return c.IsExist(ctx, "user1_id = ? OR user2_id = ?", userID, userID)
}

// CreateConsuming writes the couple row and marks the invitation used in one
// transaction, so an invitation can never be consumed without its couple and
// vice versa.
func (c *Couples) CreateConsuming(ctx context.Context, couple *models.Couple, invitationID int64) error {
	return c.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		couple.CreatedAt = time.Now()
		couple.UpdatedAt = time.Now()
		if err := tx.Create(couple).Error; err != nil {
			return err
		}
		res := tx.Model(&models.CoupleInvitation{}).
			Where("id = ? AND used = false", invitationID).
			Updates(map[string]any{"used": true, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (c *Couples) Delete(ctx context.Context, id int64) error {
	return c.DeleteByWhere(ctx, "id = ?", id)
}
