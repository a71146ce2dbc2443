package models

import "time"

// CoupleInvitation is a one-shot invite link. It is consumable while unused
// and before expiry; expiry is checked at accept time, nothing sweeps rows.
type CoupleInvitation struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	InviterID int64     `gorm:"column:inviter_id;not null;index" json:"inviter_id"`
	Token     string    `gorm:"column:token;type:varchar(64);not null;uniqueIndex" json:"token"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index" json:"expires_at"`
	Used      bool      `gorm:"column:used;not null;default:false" json:"used"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (i CoupleInvitation) TableName() string { return "couple_invitations" }

// Consumable reports whether the invitation can still be accepted.
func (i CoupleInvitation) Consumable(now time.Time) bool {
	return !i.Used && now.Before(i.ExpiresAt)
}
