package dao

import (
	"context"
	"errors"
	"time"

	"Woorigil/models"
	"Woorigil/pkg/snowflake"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{Repo: NewRepo[models.User](db)}
}

// GetOrCreateByProviderUID resolves the user for an OAuth identity, creating
// one on first login. Races on the unique (provider, uid) index fall back to
// a re-read.
func (u *Users) GetOrCreateByProviderUID(ctx context.Context, provider, uid, email, name, profileImage string) (*models.User, error) {
	user, err := u.FindByWhere(ctx, "provider = ? AND uid = ?", provider, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.User{
		ID:           snowflake.GenUserID(),
		Provider:     provider,
		UID:          uid,
		Email:        email,
		Name:         name,
		ProfileImage: profileImage,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	err = u.Create(ctx, user)
	if err == nil {
		return user, nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return u.FindByWhere(ctx, "provider = ? AND uid = ?", provider, uid)
	}
	return nil, err
}
