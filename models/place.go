package models

import (
	"time"

	"gorm.io/datatypes"
)

// Place is a saved location. NaverPlaceID deduplicates saves per user; the
// raw search item that produced the place is kept in SourcePayload.
type Place struct {
	ID            int64          `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID        int64          `gorm:"column:user_id;not null;index:uk_user_naver,unique,priority:1" json:"user_id"`
	NaverPlaceID  string         `gorm:"column:naver_place_id;type:varchar(128);index:uk_user_naver,unique,priority:2" json:"naver_place_id"`
	Name          string         `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Address       string         `gorm:"column:address;type:varchar(255)" json:"address"`
	RoadAddress   string         `gorm:"column:road_address;type:varchar(255)" json:"road_address"`
	Latitude      float64        `gorm:"column:latitude;type:decimal(10,7);not null" json:"latitude"`
	Longitude     float64        `gorm:"column:longitude;type:decimal(10,7);not null" json:"longitude"`
	Category      string         `gorm:"column:category;type:varchar(100)" json:"category"`
	Telephone     string         `gorm:"column:telephone;type:varchar(30)" json:"telephone"`
	NaverMapURL   string         `gorm:"column:naver_map_url;type:varchar(512)" json:"naver_map_url"`
	ViewsCount    int            `gorm:"column:views_count;not null;default:0" json:"views_count"`
	LikesCount    int            `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	SourcePayload datatypes.JSON `gorm:"column:source_payload" json:"source_payload"`
	CreatedAt     time.Time      `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (p Place) TableName() string { return "places" }
