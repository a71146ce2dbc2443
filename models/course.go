package models

import "time"

// Course is an ordered multi-stop itinerary.
type Course struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (c Course) TableName() string { return "courses" }
