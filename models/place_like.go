package models

import "time"

// PlaceLike is one user's like on one place, unique per pair. places.likes_count
// is maintained in the same transaction as the toggle.
type PlaceLike struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	PlaceID   int64     `gorm:"column:place_id;not null;index:uk_place_user,unique,priority:1" json:"place_id"`
	UserID    int64     `gorm:"column:user_id;not null;index:uk_place_user,unique,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (l PlaceLike) TableName() string { return "place_likes" }
