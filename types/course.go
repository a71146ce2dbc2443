package types

import "time"

type CreateCourseReq struct {
	Name   string          `json:"name" binding:"required"`
	Places []CourseStopReq `json:"places" binding:"required,min=1"`
}

// CourseStopReq seeds one stop; stops referring to an already-saved place by
// naverPlaceId are deduplicated against it.
type CourseStopReq struct {
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

type CourseResp struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PlacesCount int       `json:"placesCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CourseDetailResp struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"createdAt"`
	Places    []CourseStopResp `json:"places"`
}

type CourseStopResp struct {
	Position  int     `json:"position"`
	PlaceID   int64   `json:"placeId"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
