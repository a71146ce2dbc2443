package dao

import (
	"errors"

	"Woorigil/models"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

type PlaceLikes struct {
	Repo[models.PlaceLike]
}

func NewPlaceLikes(db *gorm.DB) *PlaceLikes {
	return &PlaceLikes{Repo: NewRepo[models.PlaceLike](db)}
}

// Toggle flips the like state for (userID, placeID) and keeps likes_count in
// step inside one transaction. Returns the resulting state and counter.
func (d *PlaceLikes) Toggle(ctx context.Context, placeID, userID int64) (liked bool, likesCount int, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var like models.PlaceLike
		findErr := tx.Where("place_id = ? AND user_id = ?", placeID, userID).
			First(&like).Error

		switch {
		case findErr == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Place{}).
				Where("id = ? AND likes_count > 0", placeID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error; err != nil {
				return err
			}
			liked = false

		case errors.Is(findErr, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.PlaceLike{PlaceID: placeID, UserID: userID}).Error; err != nil {
				// A concurrent toggle hit the unique index first; treat as liked.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					liked = true
					return nil
				}
				return err
			}
			if err := tx.Model(&models.Place{}).
				Where("id = ?", placeID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
				return err
			}
			liked = true

		default:
			return findErr
		}

		var place models.Place
		if err := tx.Select("likes_count").Where("id = ?", placeID).First(&place).Error; err != nil {
			return err
		}
		likesCount = place.LikesCount
		return nil
	})
	return liked, likesCount, err
}

func (d *PlaceLikes) IsLiked(ctx context.Context, placeID, userID int64) (bool, error) {
	return d.IsExist(ctx, "place_id = ? AND user_id = ?", placeID, userID)
}
