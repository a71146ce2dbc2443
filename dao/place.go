package dao

import (
	"context"
	"errors"
	"time"

	"Woorigil/models"

	"gorm.io/gorm"
)

type Places struct {
	Repo[models.Place]
}

func NewPlaces(db *gorm.DB) *Places {
	return &Places{Repo: NewRepo[models.Place](db)}
}

func (p *Places) ListByUser(ctx context.Context, userID int64) ([]models.Place, error) {
	var places []models.Place
	err := p.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&places).Error
	return places, err
}

func (p *Places) FindOwned(ctx context.Context, id, userID int64) (*models.Place, error) {
	return p.FindByWhere(ctx, "id = ? AND user_id = ?", id, userID)
}

// IncrementViews bumps the counter atomically in the store; no row lock is
// taken at the application level.
func (p *Places) IncrementViews(ctx context.Context, id int64) error {
	return p.Db.WithContext(ctx).
		Model(&models.Place{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

// FindOrCreate deduplicates per user by naver_place_id when present,
// otherwise always inserts.
func (p *Places) FindOrCreate(ctx context.Context, tx *gorm.DB, seed *models.Place) (*models.Place, error) {
	if tx == nil {
		tx = p.Db
	}
	if seed.NaverPlaceID != "" {
		var existing models.Place
		err := tx.WithContext(ctx).
			Where("user_id = ? AND naver_place_id = ?", seed.UserID, seed.NaverPlaceID).
			First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	seed.CreatedAt = time.Now()
	seed.UpdatedAt = time.Now()
	if err := tx.WithContext(ctx).Create(seed).Error; err != nil {
		return nil, err
	}
	return seed, nil
}

// Search filters the shared place pool by keyword and category. Gorm
// parameterizes the LIKE patterns; ordering favours well-liked places.
func (p *Places) Search(ctx context.Context, query, category string, limit int) ([]models.Place, error) {
	db := p.Db.WithContext(ctx).Model(&models.Place{})

	if category != "" {
		db = db.Where("category LIKE ?", "%"+category+"%")
	}
	if query != "" {
		pattern := "%" + query + "%"
		db = db.Where("name LIKE ? OR address LIKE ? OR road_address LIKE ?",
			pattern, pattern, pattern)
	}

	var places []models.Place
	err := db.Order("likes_count DESC, created_at DESC").Limit(limit).Find(&places).Error
	return places, err
}

// Categories returns the distinct main categories across all places.
func (p *Places) Categories(ctx context.Context) ([]string, error) {
	var raw []string
	err := p.Db.WithContext(ctx).
		Model(&models.Place{}).
		Where("category IS NOT NULL AND category <> ''").
		Distinct().
		Pluck("category", &raw).Error
	return raw, err
}

// Popular returns the top places by views + 3*likes.
func (p *Places) Popular(ctx context.Context, limit int) ([]models.Place, error) {
	var places []models.Place
	err := p.Db.WithContext(ctx).
		Model(&models.Place{}).
		Order("(views_count + likes_count * 3) DESC").
		Limit(limit).
		Find(&places).Error
	return places, err
}

// ListLikedByUser returns places the user liked, most recent like first.
func (p *Places) ListLikedByUser(ctx context.Context, userID int64) ([]models.Place, error) {
	var places []models.Place
	err := p.Db.WithContext(ctx).
		Model(&models.Place{}).
		Joins("JOIN place_likes ON place_likes.place_id = places.id").
		Where("place_likes.user_id = ?", userID).
		Order("place_likes.created_at DESC").
		Find(&places).Error
	return places, err
}
