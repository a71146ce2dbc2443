package models

import "time"

// CoursePlace orders one place inside one course. PlaceID is nullable so a
// deleted place leaves the course intact.
type CoursePlace struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	CourseID  int64     `gorm:"column:course_id;not null;index:idx_course_position,priority:1" json:"course_id"`
	PlaceID   *int64    `gorm:"column:place_id;index" json:"place_id"`
	Position  int       `gorm:"column:position;not null;index:idx_course_position,priority:2" json:"position"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (cp CoursePlace) TableName() string { return "course_places" }
