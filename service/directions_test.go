package service

import (
	"testing"

	"Woorigil/types"
)

func transitSegment(index, totalTime, distance, payment int) types.CourseSegment {
	return types.CourseSegment{
		Index: index,
		Transit: &types.TransitResult{
			Paths: []types.TransitPath{
				{TotalTime: totalTime, TotalDistance: distance, Payment: payment},
				// a second, slower path must never enter the sums
				{TotalTime: totalTime * 2, TotalDistance: distance * 2, Payment: payment * 2},
			},
		},
	}
}

func TestSummarizeTransit(t *testing.T) {
	segments := []types.CourseSegment{
		transitSegment(1, 25, 9000, 1450),
		transitSegment(2, 25, 4500, 1250),
	}
	got := summarizeTransit(segments)

	if got.TotalTime != 50 {
		t.Errorf("totalTime = %d, want 50", got.TotalTime)
	}
	if got.TotalTimeText != "50분" {
		t.Errorf("totalTimeText = %q", got.TotalTimeText)
	}
	if got.TotalDistance != 13500 || got.TotalDistanceText != "13.5km" {
		t.Errorf("distance = %d %q", got.TotalDistance, got.TotalDistanceText)
	}
	if got.TotalFare != 2700 || got.TotalFareText != "2,700원" {
		t.Errorf("fare = %d %q", got.TotalFare, got.TotalFareText)
	}
}

func TestSummarizeTransitSkipsErroredSegments(t *testing.T) {
	segments := []types.CourseSegment{
		transitSegment(1, 30, 10000, 1450),
		{Index: 2, Error: "Route not found"},
		{Index: 3, Transit: &types.TransitResult{}}, // no paths
	}
	got := summarizeTransit(segments)
	if got.TotalTime != 30 || got.TotalFare != 1450 {
		t.Errorf("errored segments leaked into the sums: %+v", got)
	}
}

func TestSummarizeDriving(t *testing.T) {
	segments := []types.CourseSegment{
		{Index: 1, Driving: &types.DrivingRoute{Summary: types.DrivingSummary{
			Duration: 1800000, Distance: 21000, TollFare: 1000, FuelPrice: 2400,
		}}},
		{Index: 2, Driving: &types.DrivingRoute{Summary: types.DrivingSummary{
			Duration: 2100000, Distance: 18000, TollFare: 0, FuelPrice: 2100,
		}}},
		{Index: 3, Error: "provider returned 500"},
	}
	got := summarizeDriving(segments)

	// 3900000ms = 65min
	if got.TotalTime != 65 {
		t.Errorf("totalTime = %d, want 65", got.TotalTime)
	}
	if got.TotalTimeText != "1시간 5분" {
		t.Errorf("totalTimeText = %q, want 1시간 5분", got.TotalTimeText)
	}
	if got.TotalDistance != 39000 {
		t.Errorf("totalDistance = %d", got.TotalDistance)
	}
	if got.TotalTollFare != 1000 || got.TotalFuelPrice != 4500 {
		t.Errorf("fares = %+v", got)
	}
}

func TestValidateEndpoints(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	ok := types.DirectionsReq{
		StartLat: f(37.36), StartLng: f(127.10),
		EndLat: f(37.50), EndLng: f(127.02),
	}
	if _, _, err := validateEndpoints(ok); err != nil {
		t.Errorf("valid coords rejected: %v", err)
	}

	missing := types.DirectionsReq{StartLat: f(37.36), StartLng: f(127.10), EndLat: f(37.50)}
	if _, _, err := validateEndpoints(missing); err == nil {
		t.Error("missing end_lng should fail")
	}

	// Tokyo is outside the service bounding box
	outside := types.DirectionsReq{
		StartLat: f(35.68), StartLng: f(139.69),
		EndLat: f(37.50), EndLng: f(127.02),
	}
	if _, _, err := validateEndpoints(outside); err == nil {
		t.Error("out-of-range coordinates should fail before any network call")
	}
}

func TestParseWaypoints(t *testing.T) {
	got, err := parseWaypoints("37.40,127.10|37.45,127.05")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(got) != 2 || got[0].Lat != 37.40 || got[1].Lng != 127.05 {
		t.Errorf("waypoints = %+v", got)
	}

	if _, err := parseWaypoints("37.40|127.10"); err == nil {
		t.Error("malformed pair should fail")
	}
	if _, err := parseWaypoints("51.50,-0.12"); err == nil {
		t.Error("out-of-box waypoint should fail")
	}
	if got, err := parseWaypoints(""); err != nil || got != nil {
		t.Error("empty waypoints should be a no-op")
	}
}
