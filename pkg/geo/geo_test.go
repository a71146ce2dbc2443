package geo

import "testing"

func TestFromFixedPoint(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"373566190", 37.356619},
		{"1270102129", 127.0102129},
		{"", 0},
		{"garbage", 0},
	}
	for _, tc := range cases {
		if got := FromFixedPoint(tc.in); got != tc.want {
			t.Errorf("FromFixedPoint(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInKorea(t *testing.T) {
	cases := []struct {
		lat, lng float64
		want     bool
	}{
		{37.5665, 126.9780, true}, // Seoul
		{33.4996, 126.5312, true}, // Jeju
		{32.9, 126.9, false},      // too far south
		{37.5, 123.0, false},      // too far west
		{44.0, 127.0, false},
	}
	for _, tc := range cases {
		if got := InKorea(tc.lat, tc.lng); got != tc.want {
			t.Errorf("InKorea(%v, %v) = %v, want %v", tc.lat, tc.lng, got, tc.want)
		}
	}
}

func TestFormatDistance(t *testing.T) {
	cases := []struct {
		meters int
		want   string
	}{
		{999, "999m"},
		{1000, "1.0km"},
		{1250, "1.2km"},
		{12345, "12.3km"},
		{0, "0m"},
	}
	for _, tc := range cases {
		if got := FormatDistance(tc.meters); got != tc.want {
			t.Errorf("FormatDistance(%d) = %q, want %q", tc.meters, got, tc.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0분"},
		{45, "45분"},
		{59, "59분"},
		{60, "1시간 0분"},
		{95, "1시간 35분"},
		{150, "2시간 30분"},
	}
	for _, tc := range cases {
		if got := FormatMinutes(tc.minutes); got != tc.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestFormatWon(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{0, "0원"},
		{950, "950원"},
		{1250, "1,250원"},
		{1234567, "1,234,567원"},
	}
	for _, tc := range cases {
		if got := FormatWon(tc.amount); got != tc.want {
			t.Errorf("FormatWon(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
