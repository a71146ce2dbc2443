package models

import "time"

// User is created on first OAuth login. Identity is (provider, uid).
type User struct {
	ID           int64     `gorm:"column:id;primary_key" json:"id"`
	Provider     string    `gorm:"column:provider;type:varchar(20);not null;index:uk_provider_uid,unique,priority:1" json:"provider"`
	UID          string    `gorm:"column:uid;type:varchar(191);not null;index:uk_provider_uid,unique,priority:2" json:"uid"`
	Email        string    `gorm:"column:email;type:varchar(255);index" json:"email"`
	Name         string    `gorm:"column:name;type:varchar(100)" json:"name"`
	ProfileImage string    `gorm:"column:profile_image;type:varchar(512)" json:"profile_image"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (u User) TableName() string { return "users" }
