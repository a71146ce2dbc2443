package models

import "time"

// Couple links two users. Rows always satisfy user1_id < user2_id so one
// pair can never exist twice in either order.
type Couple struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	User1ID   int64     `gorm:"column:user1_id;not null;index:uk_couple_pair,unique,priority:1" json:"user1_id"`
	User2ID   int64     `gorm:"column:user2_id;not null;index:uk_couple_pair,unique,priority:2;index" json:"user2_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (c Couple) TableName() string { return "couples" }

// PartnerID returns the other member of the pair, or 0 when userID is not in
// the couple.
func (c Couple) PartnerID(userID int64) int64 {
	switch userID {
	case c.User1ID:
		return c.User2ID
	case c.User2ID:
		return c.User1ID
	}
	return 0
}

func (c Couple) IncludesUser(userID int64) bool {
	return c.User1ID == userID || c.User2ID == userID
}

// NormalizePair orders a pair of user ids smaller-first.
func NormalizePair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}
