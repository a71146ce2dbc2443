package types

// SearchPlaceItem is the normalized shape both search providers map into.
type SearchPlaceItem struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Telephone   string  `json:"telephone"`
	Address     string  `json:"address"`
	RoadAddress string  `json:"roadAddress"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	MapURL      string  `json:"mapUrl"`
}

type SearchResp struct {
	Query string            `json:"query"`
	Total int               `json:"total"`
	Items []SearchPlaceItem `json:"items"`
}
