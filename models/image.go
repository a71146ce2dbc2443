package models

import "time"

// Image is an uploaded file stored in OSS. UserID nil means an anonymous
// upload; PublicID is the non-enumerable id exposed in URLs.
type Image struct {
	ID          int64     `gorm:"column:id;primary_key" json:"id"`
	UserID      *int64    `gorm:"column:user_id;index" json:"user_id"`
	PublicID    string    `gorm:"column:public_id;type:varchar(32);not null;uniqueIndex" json:"public_id"`
	Purpose     string    `gorm:"column:purpose;type:varchar(50)" json:"purpose"`
	OssKey      string    `gorm:"column:oss_key;type:varchar(255);not null" json:"oss_key"`
	ContentType string    `gorm:"column:content_type;type:varchar(50)" json:"content_type"`
	Width       int       `gorm:"column:width" json:"width"`
	Height      int       `gorm:"column:height" json:"height"`
	ByteSize    int64     `gorm:"column:byte_size" json:"byte_size"`
	CreatedAt   time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (i Image) TableName() string { return "images" }
