package types

import "time"

type CreateDiaryReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type UpdateDiaryReq struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type ShareDiaryReq struct {
	UserID int64  `json:"userId" binding:"required"`
	Role   string `json:"role"`
}

type UnshareDiaryReq struct {
	UserID int64 `json:"userId" binding:"required"`
}

type DiaryResp struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	OwnerID      int64     `json:"ownerId"`
	Role         string    `json:"role"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type DiaryShareResp struct {
	DiaryID int64  `json:"diaryId"`
	UserID  int64  `json:"userId"`
	Role    string `json:"role"`
}
