package geo

import (
	"fmt"
	"strconv"
)

// Korean peninsula bounding box, used to reject junk coordinates before any
// provider call is made.
const (
	MinLat = 33.0
	MaxLat = 43.0
	MinLng = 124.0
	MaxLng = 132.0
)

// FromFixedPoint converts a provider fixed-point coordinate (decimal degrees
// scaled by 10^7, e.g. Naver local search mapx/mapy) to decimal degrees.
func FromFixedPoint(coord string) float64 {
	v, err := strconv.ParseFloat(coord, 64)
	if err != nil {
		return 0
	}
	return v / 1e7
}

// InKorea reports whether the point falls inside the national bounding box.
func InKorea(lat, lng float64) bool {
	return lat >= MinLat && lat <= MaxLat && lng >= MinLng && lng <= MaxLng
}

// FormatDistance renders meters as "750m" below 1km and "1.2km" above.
func FormatDistance(meters int) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1fkm", float64(meters)/1000.0)
	}
	return fmt.Sprintf("%dm", meters)
}

// FormatMinutes renders minutes as "45분" or "1시간 30분" once an hour is
// reached.
func FormatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%d시간 %d분", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%d분", minutes)
}

// FormatWon renders an amount with thousands separators, e.g. "12,500원".
func FormatWon(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		out = append([]byte{'-'}, out...)
	}
	return string(out) + "원"
}
