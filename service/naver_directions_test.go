package service

import (
	"testing"
)

const drivingFixture = `{
	"code": 0,
	"message": "길찾기를 성공하였습니다.",
	"route": {
		"traoptimal": [
			{
				"summary": {
					"distance": 12880,
					"duration": 1521000,
					"tollFare": 1000,
					"taxiFare": 14500,
					"fuelPrice": 1580
				},
				"path": [[127.1058342, 37.3597080], [127.1050280, 37.3590000], [127.0276368, 37.4979517]],
				"section": [
					{"name": "경부고속도로", "distance": 8000, "congestion": 2, "speed": 65}
				]
			}
		]
	}
}`

func TestParseDrivingResponse(t *testing.T) {
	route, err := parseDrivingResponse([]byte(drivingFixture), "traoptimal")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if route.Summary.Distance != 12880 {
		t.Errorf("distance = %d", route.Summary.Distance)
	}
	if route.Summary.Duration != 1521000 {
		t.Errorf("duration = %d", route.Summary.Duration)
	}
	// 1521000ms -> 25.35min -> rounds to 25
	if route.Summary.DurationText != "25분" {
		t.Errorf("durationText = %q, want 25분", route.Summary.DurationText)
	}
	if route.Summary.DistanceText != "12.9km" {
		t.Errorf("distanceText = %q, want 12.9km", route.Summary.DistanceText)
	}
	if route.Summary.TollFare != 1000 || route.Summary.FuelPrice != 1580 {
		t.Errorf("fares = %+v", route.Summary)
	}
	if len(route.Path) != 3 {
		t.Errorf("path points = %d, want 3", len(route.Path))
	}
	if len(route.Sections) != 1 || route.Sections[0].Name != "경부고속도로" {
		t.Errorf("sections = %+v", route.Sections)
	}
}

func TestParseDrivingResponseProviderError(t *testing.T) {
	body := `{"code": 1, "message": "출발지와 도착지가 동일합니다."}`
	if _, err := parseDrivingResponse([]byte(body), "traoptimal"); err == nil {
		t.Fatal("provider error code should fail the parse")
	}
}

func TestParseDrivingResponseNoRoute(t *testing.T) {
	body := `{"code": 0, "route": {"traoptimal": []}}`
	if _, err := parseDrivingResponse([]byte(body), "traoptimal"); err == nil {
		t.Fatal("empty route should fail the parse")
	}
}

func TestResolveRouteOption(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "traoptimal", false},
		{"fastest", "trafast", false},
		{"comfortable", "tracomfort", false},
		{"optimal", "traoptimal", false},
		{"avoid_toll", "traavoidtoll", false},
		{"avoid_car_only", "traavoidcaronly", false},
		{"scenic", "", true},
	}
	for _, tt := range tests {
		got, err := resolveRouteOption(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("resolveRouteOption(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("resolveRouteOption(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
