package models

import "time"

const (
	DiaryRoleOwner  = "owner"
	DiaryRoleEditor = "editor"
	DiaryRoleViewer = "viewer"
)

// DiaryUser shares a diary with a user, unique per pair.
type DiaryUser struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:uk_user_diary,unique,priority:1" json:"user_id"`
	DiaryID   int64     `gorm:"column:diary_id;not null;index:uk_user_diary,unique,priority:2;index" json:"diary_id"`
	Role      string    `gorm:"column:role;type:varchar(10);not null;default:viewer" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (du DiaryUser) TableName() string { return "diary_users" }

func ValidDiaryRole(role string) bool {
	return role == DiaryRoleOwner || role == DiaryRoleEditor || role == DiaryRoleViewer
}
