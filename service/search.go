package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"Woorigil/config"
	"Woorigil/dao/cache"
	"Woorigil/pkg/geo"
	"Woorigil/pkg/log"
	"Woorigil/types"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var _ ISearchService = (*SearchService)(nil)

type ISearchService interface {
	SearchPlaces(ctx context.Context, query string, display int) *types.SearchResp
}

// SearchService proxies Naver local search, with the Naver Cloud geocoder as
// a fallback for address-looking queries. Provider failures never surface to
// the caller; they degrade to an empty list.
type SearchService struct {
	Config *config.Config
	Cache  *cache.PlaceCache

	httpClient *http.Client
}

const searchCategoryAddress = "주소"

var emphasisReplacer = strings.NewReplacer("<b>", "", "</b>", "", "&amp;", "&")

func (s *SearchService) client() *http.Client {
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return s.httpClient
}

func (s *SearchService) SearchPlaces(ctx context.Context, query string, display int) *types.SearchResp {
	if display < 1 {
		display = 1
	}
	if display > 5 {
		display = 5
	}

	resp := &types.SearchResp{Query: query, Items: []types.SearchPlaceItem{}}

	if s.Cache != nil {
		var cached types.SearchResp
		if ok, err := s.Cache.GetSearch(ctx, query, display, &cached); err == nil && ok {
			return &cached
		}
	}

	items, err := s.localSearch(ctx, query, display)
	if err != nil {
		log.L.Warn("naver local search failed", zap.String("query", query), zap.Error(err))
		return resp
	}

	// An empty local result usually means the query was a postal address.
	if len(items) == 0 {
		items, err = s.geocode(ctx, query)
		if err != nil {
			log.L.Warn("geocode fallback failed", zap.String("query", query), zap.Error(err))
			return resp
		}
	}

	resp.Items = items
	resp.Total = len(items)
	if s.Cache != nil {
		if err := s.Cache.SetSearch(ctx, query, display, resp); err != nil {
			log.L.Warn("search cache set failed", zap.Error(err))
		}
	}
	return resp
}

func (s *SearchService) localSearch(ctx context.Context, query string, display int) ([]types.SearchPlaceItem, error) {
	u := fmt.Sprintf("%s?query=%s&display=%d",
		s.Config.Naver.SearchURL, url.QueryEscape(query), display)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Naver-Client-Id", s.Config.Naver.ClientID)
	req.Header.Set("X-Naver-Client-Secret", s.Config.Naver.ClientSecret)

	body, err := doJSON(s.client(), req)
	if err != nil {
		return nil, err
	}
	return parseLocalSearch(body), nil
}

func (s *SearchService) geocode(ctx context.Context, query string) ([]types.SearchPlaceItem, error) {
	u := fmt.Sprintf("%s?query=%s", s.Config.NaverCloud.GeocodeURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-ncp-apigw-api-key-id", s.Config.NaverCloud.ClientID)
	req.Header.Set("x-ncp-apigw-api-key", s.Config.NaverCloud.ClientSecret)

	body, err := doJSON(s.client(), req)
	if err != nil {
		return nil, err
	}
	return parseGeocode(body), nil
}

// parseLocalSearch maps a Naver local search payload to the normalized place
// shape. mapx/mapy are fixed-point integers scaled by 10^7.
func parseLocalSearch(body []byte) []types.SearchPlaceItem {
	raw := gjson.GetBytes(body, "items")
	items := make([]types.SearchPlaceItem, 0, int(raw.Get("#").Int()))

	raw.ForEach(func(_, item gjson.Result) bool {
		title := stripEmphasis(item.Get("title").String())
		lat := geo.FromFixedPoint(item.Get("mapy").String())
		lng := geo.FromFixedPoint(item.Get("mapx").String())

		items = append(items, types.SearchPlaceItem{
			Title:       title,
			Category:    item.Get("category").String(),
			Description: stripEmphasis(item.Get("description").String()),
			Telephone:   item.Get("telephone").String(),
			Address:     item.Get("address").String(),
			RoadAddress: item.Get("roadAddress").String(),
			Latitude:    lat,
			Longitude:   lng,
			MapURL:      naverMapURL(title, lat, lng),
		})
		return true
	})
	return items
}

// parseGeocode maps geocoder addresses to the same place shape; category is
// pinned to the address marker and there is no telephone or description.
func parseGeocode(body []byte) []types.SearchPlaceItem {
	raw := gjson.GetBytes(body, "addresses")
	items := make([]types.SearchPlaceItem, 0, int(raw.Get("#").Int()))

	raw.ForEach(func(_, addr gjson.Result) bool {
		title := addr.Get("roadAddress").String()
		if title == "" {
			title = addr.Get("jibunAddress").String()
		}
		lat, _ := strconv.ParseFloat(addr.Get("y").String(), 64)
		lng, _ := strconv.ParseFloat(addr.Get("x").String(), 64)

		items = append(items, types.SearchPlaceItem{
			Title:       title,
			Category:    searchCategoryAddress,
			Address:     addr.Get("jibunAddress").String(),
			RoadAddress: addr.Get("roadAddress").String(),
			Latitude:    lat,
			Longitude:   lng,
			MapURL:      naverMapURL(title, lat, lng),
		})
		return true
	})
	return items
}

func stripEmphasis(s string) string {
	return emphasisReplacer.Replace(s)
}

func naverMapURL(title string, lat, lng float64) string {
	return fmt.Sprintf("https://map.naver.com/p/search/%s?c=%.7f,%.7f,15,0,0,0,dh",
		url.PathEscape(title), lng, lat)
}

func doJSON(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
