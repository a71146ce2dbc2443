package types

import "time"

type CreatePlaceReq struct {
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address"`
	RoadAddress  string  `json:"roadAddress"`
	Category     string  `json:"category"`
	Telephone    string  `json:"telephone"`
	Latitude     float64 `json:"latitude" binding:"required"`
	Longitude    float64 `json:"longitude" binding:"required"`
	NaverPlaceID string  `json:"naverPlaceId"`
	NaverMapURL  string  `json:"naverMapUrl"`
}

type PlaceResp struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	RoadAddress  string    `json:"roadAddress"`
	Category     string    `json:"category"`
	Telephone    string    `json:"telephone"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	NaverPlaceID string    `json:"naverPlaceId,omitempty"`
	NaverMapURL  string    `json:"naverMapUrl,omitempty"`
	ViewsCount   int       `json:"viewsCount"`
	LikesCount   int       `json:"likesCount"`
	Liked        bool      `json:"liked"`
	CreatedAt    time.Time `json:"createdAt"`
}

type LikeToggleResp struct {
	PlaceID    int64 `json:"placeId"`
	Liked      bool  `json:"liked"`
	LikesCount int   `json:"likesCount"`
}

// MySearchReq filters the user's own saved places.
type MySearchReq struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	Type     string `form:"type"`
	Limit    int    `form:"limit"`
}
