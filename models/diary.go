package models

import "time"

// Diary belongs to its author; other users gain access through DiaryUser rows.
type Diary struct {
	ID           int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID       int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Title        string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content      string    `gorm:"column:content;type:text" json:"content"`
	ThumbnailKey string    `gorm:"column:thumbnail_key;type:varchar(255)" json:"thumbnail_key"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (d Diary) TableName() string { return "diaries" }

func (d Diary) OwnedBy(userID int64) bool { return d.UserID == userID }
