package models

import "time"

// Folder is one node of a user's folder tree. ParentID nil means root.
// Depth, path and descendants are computed in memory, never stored.
type Folder struct {
	ID          int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID      int64     `gorm:"column:user_id;not null;index:idx_user_parent,priority:1" json:"user_id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null;index" json:"name"`
	ParentID    *int64    `gorm:"column:parent_id;index:idx_user_parent,priority:2" json:"parent_id"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (f Folder) TableName() string { return "folders" }

func (f Folder) Root() bool { return f.ParentID == nil }
