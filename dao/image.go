package dao

import (
	"context"

	"Woorigil/models"

	"gorm.io/gorm"
)

type Images struct {
	Repo[models.Image]
}

func NewImages(db *gorm.DB) *Images {
	return &Images{Repo: NewRepo[models.Image](db)}
}

func (d *Images) CreateImage(ctx context.Context, img *models.Image) error {
	return d.Create(ctx, img)
}

func (d *Images) FindByPublicID(ctx context.Context, publicID string) (*models.Image, error) {
	return d.FindByWhere(ctx, "public_id = ?", publicID)
}

func (d *Images) DeleteByID(ctx context.Context, id int64) error {
	return d.DeleteByWhere(ctx, "id = ?", id)
}
