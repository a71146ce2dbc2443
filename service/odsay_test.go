package service

import (
	"testing"

	"Woorigil/types"
)

const transitFixture = `{
	"result": {
		"searchType": 0,
		"path": [
			{
				"pathType": 1,
				"info": {
					"totalTime": 45,
					"totalDistance": 18200,
					"payment": 1550,
					"busTransitCount": 0,
					"subwayTransitCount": 2
				},
				"subPath": [
					{"trafficType": 3, "distance": 420, "sectionTime": 6},
					{
						"trafficType": 1, "distance": 9800, "sectionTime": 18,
						"stationCount": 7,
						"startName": "정자", "startX": 127.1083, "startY": 37.3670,
						"endName": "강남", "endX": 127.0276, "endY": 37.4979,
						"lane": [{"name": "수도권 신분당선", "subwayCode": 109}]
					},
					{"trafficType": 3, "distance": 150, "sectionTime": 3},
					{
						"trafficType": 1, "distance": 7800, "sectionTime": 15,
						"stationCount": 5,
						"startName": "강남", "startX": 127.0276, "startY": 37.4979,
						"endName": "잠실", "endX": 127.1000, "endY": 37.5133,
						"lane": [{"name": "수도권 2호선", "subwayCode": 2}]
					},
					{"trafficType": 3, "distance": 300, "sectionTime": 3}
				]
			}
		]
	}
}`

func TestParseTransitResponse(t *testing.T) {
	result, err := parseTransitResponse([]byte(transitFixture))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(result.Paths) != 1 {
		t.Fatalf("paths = %d, want 1", len(result.Paths))
	}

	path := result.Paths[0]
	if path.TotalTime != 45 || path.TotalDistance != 18200 || path.Payment != 1550 {
		t.Errorf("totals = %+v", path)
	}
	// 0 bus + 2 subway boardings = 1 transfer
	if path.TransferCount != 1 {
		t.Errorf("transferCount = %d, want 1", path.TransferCount)
	}
	if len(path.Legs) != 5 {
		t.Fatalf("legs = %d, want 5", len(path.Legs))
	}

	modes := []string{"walk", "subway", "walk", "subway", "walk"}
	for i, want := range modes {
		if path.Legs[i].Mode != want {
			t.Errorf("leg %d mode = %q, want %q", i, path.Legs[i].Mode, want)
		}
	}

	subway := path.Legs[1]
	if subway.Lane == nil || subway.Lane.Name != "수도권 신분당선" || subway.Lane.SubwayCode != 109 {
		t.Errorf("lane = %+v", subway.Lane)
	}
	if subway.StartName != "정자" || subway.EndName != "강남" || subway.StationCount != 7 {
		t.Errorf("subway leg = %+v", subway)
	}
	if subway.StartLat == nil || *subway.StartLat != 37.3670 {
		t.Errorf("subway startLat = %v", subway.StartLat)
	}

	// walking legs have no provider coordinates until inference runs
	if path.Legs[0].StartLat != nil || path.Legs[2].EndLat != nil {
		t.Error("walk legs should start without coordinates")
	}
}

func TestParseTransitResponseErrorShapes(t *testing.T) {
	arrayShape := `{"error": [{"code": "3", "message": "출발지 정류장이 없습니다."}]}`
	if _, err := parseTransitResponse([]byte(arrayShape)); err == nil {
		t.Error("array error shape should fail")
	}

	objectShape := `{"error": {"msg": "검색 결과가 없습니다.", "code": "-98"}}`
	if _, err := parseTransitResponse([]byte(objectShape)); err == nil {
		t.Error("object error shape should fail")
	}
}

func TestComputeTransferCount(t *testing.T) {
	tests := []struct {
		bus, subway, want int
	}{
		{0, 2, 1},
		{1, 1, 1},
		{2, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 0}, // pure-walk itinerary must clamp, not go negative
		{3, 2, 4},
	}
	for _, tt := range tests {
		if got := computeTransferCount(tt.bus, tt.subway); got != tt.want {
			t.Errorf("computeTransferCount(%d, %d) = %d, want %d", tt.bus, tt.subway, got, tt.want)
		}
	}
}

func TestInferWalkCoords(t *testing.T) {
	origin := Coord{Lat: 37.3600, Lng: 127.1050}
	dest := Coord{Lat: 37.5140, Lng: 127.1020}

	result, err := parseTransitResponse([]byte(transitFixture))
	if err != nil {
		t.Fatal(err)
	}
	legs := result.Paths[0].Legs
	inferWalkCoords(legs, origin, dest)

	first := legs[0]
	if first.StartLat == nil || *first.StartLat != origin.Lat {
		t.Errorf("first walk start = %v, want trip origin", first.StartLat)
	}
	if first.EndLat == nil || *first.EndLat != 37.3670 {
		t.Errorf("first walk end = %v, want next leg start", first.EndLat)
	}

	middle := legs[2]
	if middle.StartLat == nil || *middle.StartLat != 37.4979 {
		t.Errorf("middle walk start = %v, want previous leg end", middle.StartLat)
	}
	if middle.EndLat == nil || *middle.EndLat != 37.4979 {
		t.Errorf("middle walk end = %v, want next leg start", middle.EndLat)
	}
	if middle.StartName != "강남" || middle.EndName != "강남" {
		t.Errorf("middle walk names = %q -> %q", middle.StartName, middle.EndName)
	}

	last := legs[4]
	if last.StartLat == nil || *last.StartLat != 37.5133 {
		t.Errorf("last walk start = %v, want previous leg end", last.StartLat)
	}
	if last.EndLat == nil || *last.EndLat != dest.Lat {
		t.Errorf("last walk end = %v, want trip destination", last.EndLat)
	}
}

// Consecutive walking legs cannot borrow coordinates from each other; the
// inner endpoints stay nil and downstream consumers skip them.
func TestInferWalkCoordsConsecutiveWalks(t *testing.T) {
	legs := []types.TransitLeg{
		{Mode: "walk"},
		{Mode: "walk"},
		{
			Mode:     "subway",
			StartLat: floatPtr(37.49), StartLng: floatPtr(127.02),
			EndLat: floatPtr(37.51), EndLng: floatPtr(127.10),
		},
	}
	origin := Coord{Lat: 37.36, Lng: 127.10}
	dest := Coord{Lat: 37.52, Lng: 127.11}

	inferWalkCoords(legs, origin, dest)

	if legs[0].StartLat == nil || *legs[0].StartLat != origin.Lat {
		t.Error("first walk should anchor to the trip origin")
	}
	if legs[0].EndLat != nil {
		t.Error("walk followed by a walk must keep a nil end")
	}
	if legs[1].StartLat != nil {
		t.Error("walk preceded by a walk must keep a nil start")
	}
	if legs[1].EndLat == nil || *legs[1].EndLat != 37.49 {
		t.Error("second walk should borrow the subway leg's start")
	}
}

func TestParseLaneGeometry(t *testing.T) {
	body := `{
		"result": {
			"lane": [
				{"section": [
					{"graphPos": [{"x": 127.1083, "y": 37.3670}, {"x": 127.1000, "y": 37.4000}]},
					{"graphPos": [{"x": 127.0500, "y": 37.4500}]}
				]}
			]
		}
	}`
	geom := parseLaneGeometry([]byte(body))
	if len(geom) != 3 {
		t.Fatalf("points = %d, want 3", len(geom))
	}
	if geom[0][0] != 127.1083 || geom[0][1] != 37.3670 {
		t.Errorf("first point = %v", geom[0])
	}
}
