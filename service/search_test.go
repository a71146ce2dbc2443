package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"Woorigil/config"
)

const localSearchFixture = `{
	"total": 2,
	"items": [
		{
			"title": "스타벅스 <b>강남</b>점",
			"category": "카페,디저트>커피전문점",
			"description": "",
			"telephone": "02-1234-5678",
			"address": "서울특별시 강남구 역삼동 825",
			"roadAddress": "서울특별시 강남구 강남대로 390",
			"mapx": "1270274560",
			"mapy": "375012030"
		},
		{
			"title": "분당 <b>카페</b>거리",
			"category": "카페,디저트",
			"description": "조용한 <b>카페</b>",
			"telephone": "",
			"address": "경기도 성남시 분당구",
			"roadAddress": "",
			"mapx": "1271054328",
			"mapy": "373566190"
		}
	]
}`

const geocodeFixture = `{
	"status": "OK",
	"addresses": [
		{
			"roadAddress": "경기도 성남시 분당구 불정로 6",
			"jibunAddress": "경기도 성남시 분당구 정자동 178-1",
			"x": "127.1054328",
			"y": "37.3595963"
		}
	]
}`

func TestParseLocalSearch(t *testing.T) {
	items := parseLocalSearch([]byte(localSearchFixture))
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}

	first := items[0]
	if first.Title != "스타벅스 강남점" {
		t.Errorf("emphasis tags not stripped: %q", first.Title)
	}
	if first.Latitude != 37.5012030 {
		t.Errorf("latitude = %v, want 37.5012030", first.Latitude)
	}
	if first.Longitude != 127.0274560 {
		t.Errorf("longitude = %v, want 127.0274560", first.Longitude)
	}
	if first.MapURL == "" {
		t.Error("map url missing")
	}

	// fixed-point conversion spot check
	if items[1].Latitude != 37.3566190 {
		t.Errorf("latitude = %v, want 37.3566190", items[1].Latitude)
	}
	if items[1].Description != "조용한 카페" {
		t.Errorf("description tags not stripped: %q", items[1].Description)
	}
}

func TestParseGeocode(t *testing.T) {
	items := parseGeocode([]byte(geocodeFixture))
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	got := items[0]
	if got.Category != searchCategoryAddress {
		t.Errorf("category = %q, want %q", got.Category, searchCategoryAddress)
	}
	if got.Telephone != "" || got.Description != "" {
		t.Error("geocoded addresses carry no telephone or description")
	}
	if got.Latitude != 37.3595963 || got.Longitude != 127.1054328 {
		t.Errorf("coords = %v,%v", got.Latitude, got.Longitude)
	}
}

// The geocoder must be consulted iff local search comes back empty.
func TestSearchFallsBackOnlyWhenLocalEmpty(t *testing.T) {
	var localCalls, geocodeCalls int

	local := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		localCalls++
		if r.URL.Query().Get("query") == "성남시 분당구 불정로 6" {
			w.Write([]byte(`{"total":0,"items":[]}`))
			return
		}
		w.Write([]byte(localSearchFixture))
	}))
	defer local.Close()

	geocoder := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geocodeCalls++
		w.Write([]byte(geocodeFixture))
	}))
	defer geocoder.Close()

	svc := &SearchService{
		Config: &config.Config{
			Naver:      &config.Naver{SearchURL: local.URL},
			NaverCloud: &config.NaverCloud{GeocodeURL: geocoder.URL},
		},
	}

	resp := svc.SearchPlaces(context.Background(), "스타벅스", 5)
	if len(resp.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(resp.Items))
	}
	if geocodeCalls != 0 {
		t.Fatalf("geocoder called %d times for a non-empty local result", geocodeCalls)
	}

	resp = svc.SearchPlaces(context.Background(), "성남시 분당구 불정로 6", 5)
	if geocodeCalls != 1 {
		t.Fatalf("geocoder calls = %d, want 1", geocodeCalls)
	}
	if len(resp.Items) != 1 || resp.Items[0].Category != searchCategoryAddress {
		t.Fatalf("fallback items = %+v", resp.Items)
	}
	if localCalls != 2 {
		t.Fatalf("local calls = %d, want 2", localCalls)
	}
}

func TestSearchDegradesToEmptyOnProviderFailure(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	svc := &SearchService{
		Config: &config.Config{
			Naver:      &config.Naver{SearchURL: broken.URL},
			NaverCloud: &config.NaverCloud{GeocodeURL: broken.URL},
		},
	}

	resp := svc.SearchPlaces(context.Background(), "아무거나", 3)
	if resp == nil || len(resp.Items) != 0 {
		t.Fatalf("provider failure should degrade to an empty list, got %+v", resp)
	}
}

func TestDisplayClamp(t *testing.T) {
	var gotDisplay string
	local := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDisplay = r.URL.Query().Get("display")
		w.Write([]byte(localSearchFixture))
	}))
	defer local.Close()

	svc := &SearchService{
		Config: &config.Config{
			Naver:      &config.Naver{SearchURL: local.URL},
			NaverCloud: &config.NaverCloud{},
		},
	}

	svc.SearchPlaces(context.Background(), "카페", 99)
	if gotDisplay != "5" {
		t.Errorf("display = %s, want clamped to 5", gotDisplay)
	}
	svc.SearchPlaces(context.Background(), "카페", 0)
	if gotDisplay != "1" {
		t.Errorf("display = %s, want clamped to 1", gotDisplay)
	}
}
