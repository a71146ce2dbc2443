package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"Woorigil/config"
	"Woorigil/pkg/log"
	"Woorigil/pkg/response"
	"Woorigil/types"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/sourcegraph/conc/iter"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ODsay traffic type codes.
const (
	trafficSubway = 1
	trafficBus    = 2
	trafficWalk   = 3
)

// Transit path type filter: 0 all, 1 subway only, 2 bus only.
const (
	PathTypeAll    = 0
	PathTypeSubway = 1
	PathTypeBus    = 2
)

var _ ITransitService = (*TransitService)(nil)

type ITransitService interface {
	SearchRoute(ctx context.Context, origin, dest Coord, pathType int) (*types.TransitResult, error)
	EnrichGeometry(ctx context.Context, origin, dest Coord, path *types.TransitPath)
}

// TransitService wraps the ODsay public transit search API. Driving is the
// geometry fallback for bus legs whose lane lookup comes back empty.
type TransitService struct {
	Config  *config.Config
	Driving IDrivingService

	httpClient *http.Client
}

// laneCache memoizes lane geometry per line segment; lines do not move, so
// entries never expire.
var laneCache = cmap.New[[][]float64]()

func (s *TransitService) client() *http.Client {
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return s.httpClient
}

func (s *TransitService) SearchRoute(ctx context.Context, origin, dest Coord, pathType int) (*types.TransitResult, error) {
	if pathType < PathTypeAll || pathType > PathTypeBus {
		return nil, response.BadRequest("Validation failed", "path_type must be 0, 1 or 2")
	}

	u := fmt.Sprintf("%s/searchPubTransPathT?apiKey=%s&SX=%.7f&SY=%.7f&EX=%.7f&EY=%.7f&OPT=0&SearchType=0&SearchPathType=%d",
		s.Config.Odsay.BaseURL, s.Config.Odsay.APIKey,
		origin.Lng, origin.Lat, dest.Lng, dest.Lat, pathType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	body, err := doJSON(s.client(), req)
	if err != nil {
		return nil, err
	}
	return parseTransitResponse(body)
}

// parseTransitResponse maps an ODsay payload into ranked itinerary paths.
// The provider reports errors in-body with a 200 status, in two shapes.
func parseTransitResponse(body []byte) (*types.TransitResult, error) {
	parsed := gjson.ParseBytes(body)

	if errField := parsed.Get("error"); errField.Exists() {
		msg := errField.Get("0.message").String()
		if msg == "" {
			msg = errField.Get("msg").String()
		}
		return nil, response.Unprocessable("Route not found", msg)
	}

	raw := parsed.Get("result.path")
	result := &types.TransitResult{Paths: make([]types.TransitPath, 0, int(raw.Get("#").Int()))}

	raw.ForEach(func(_, p gjson.Result) bool {
		info := p.Get("info")
		path := types.TransitPath{
			PathType:      int(p.Get("pathType").Int()),
			TotalTime:     int(info.Get("totalTime").Int()),
			TotalDistance: int(info.Get("totalDistance").Int()),
			Payment:       int(info.Get("payment").Int()),
			TransferCount: computeTransferCount(
				int(info.Get("busTransitCount").Int()),
				int(info.Get("subwayTransitCount").Int()),
			),
		}

		p.Get("subPath").ForEach(func(_, sp gjson.Result) bool {
			path.Legs = append(path.Legs, parseTransitLeg(sp))
			return true
		})

		result.Paths = append(result.Paths, path)
		return true
	})

	return result, nil
}

func parseTransitLeg(sp gjson.Result) types.TransitLeg {
	leg := types.TransitLeg{
		TrafficType: int(sp.Get("trafficType").Int()),
		SectionTime: int(sp.Get("sectionTime").Int()),
		Distance:    int(sp.Get("distance").Int()),
	}

	switch leg.TrafficType {
	case trafficSubway:
		leg.Mode = "subway"
	case trafficBus:
		leg.Mode = "bus"
	default:
		leg.Mode = "walk"
	}

	// Walking legs carry no endpoints; they are inferred later from the
	// adjacent transit legs.
	if leg.Mode == "walk" {
		return leg
	}

	leg.StationCount = int(sp.Get("stationCount").Int())
	leg.StartName = sp.Get("startName").String()
	leg.EndName = sp.Get("endName").String()
	leg.StartLat = floatPtr(sp.Get("startY").Float())
	leg.StartLng = floatPtr(sp.Get("startX").Float())
	leg.EndLat = floatPtr(sp.Get("endY").Float())
	leg.EndLng = floatPtr(sp.Get("endX").Float())

	if lane := sp.Get("lane.0"); lane.Exists() {
		leg.Lane = &types.LaneInfo{
			Name:       lane.Get("name").String(),
			BusNo:      lane.Get("busNo").String(),
			BusID:      int(lane.Get("busID").Int()),
			SubwayCode: int(lane.Get("subwayCode").Int()),
		}
	}
	return leg
}

// computeTransferCount derives transfers from per-mode boarding counts. A
// pure-walk itinerary would go negative, so the result is clamped at zero.
func computeTransferCount(busCount, subwayCount int) int {
	transfers := busCount + subwayCount - 1
	if transfers < 0 {
		return 0
	}
	return transfers
}

// EnrichGeometry resolves a polyline for every transit leg of one path and
// fills in walking-leg endpoints. Legs are independent, so lookups run
// concurrently; failures leave the leg without geometry rather than failing
// the path.
func (s *TransitService) EnrichGeometry(ctx context.Context, origin, dest Coord, path *types.TransitPath) {
	if path == nil {
		return
	}
	inferWalkCoords(path.Legs, origin, dest)

	iter.ForEach(path.Legs, func(leg *types.TransitLeg) {
		if leg.Mode == "walk" || leg.Lane == nil {
			return
		}
		geom := s.laneGeometry(ctx, leg)
		if len(geom) == 0 && leg.Mode == "bus" && leg.StartLat != nil && leg.EndLat != nil {
			// Bus lines often have no published geometry; approximate
			// with a driving route between the two stops.
			route, err := s.Driving.SearchRoute(ctx,
				Coord{Lat: *leg.StartLat, Lng: *leg.StartLng},
				Coord{Lat: *leg.EndLat, Lng: *leg.EndLng},
				DrivingOptions{})
			if err != nil {
				log.L.Warn("leg geometry fallback failed",
					zap.String("lane", leg.Lane.Name), zap.Error(err))
				return
			}
			geom = route.Path
		}
		leg.Geometry = geom
	})
}

func (s *TransitService) laneGeometry(ctx context.Context, leg *types.TransitLeg) [][]float64 {
	key := laneCacheKey(leg)
	if geom, ok := laneCache.Get(key); ok {
		return geom
	}

	lineID := leg.Lane.BusID
	if leg.Mode == "subway" {
		lineID = leg.Lane.SubwayCode
	}
	u := fmt.Sprintf("%s/loadLane?apiKey=%s&mapObject=0:0@%d:%s:%s",
		s.Config.Odsay.BaseURL, s.Config.Odsay.APIKey,
		lineID, leg.StartName, leg.EndName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil
	}
	body, err := doJSON(s.client(), req)
	if err != nil {
		log.L.Warn("lane lookup failed", zap.String("lane", leg.Lane.Name), zap.Error(err))
		return nil
	}

	geom := parseLaneGeometry(body)
	if len(geom) > 0 {
		laneCache.Set(key, geom)
	}
	return geom
}

func parseLaneGeometry(body []byte) [][]float64 {
	var geom [][]float64
	gjson.GetBytes(body, "result.lane").ForEach(func(_, lane gjson.Result) bool {
		lane.Get("section").ForEach(func(_, sec gjson.Result) bool {
			sec.Get("graphPos").ForEach(func(_, pos gjson.Result) bool {
				geom = append(geom, []float64{pos.Get("x").Float(), pos.Get("y").Float()})
				return true
			})
			return true
		})
		return true
	})
	return geom
}

func laneCacheKey(leg *types.TransitLeg) string {
	return fmt.Sprintf("%s:%d:%d:%s:%s",
		leg.Mode, leg.Lane.BusID, leg.Lane.SubwayCode, leg.StartName, leg.EndName)
}

// inferWalkCoords fills walking-leg endpoints from the neighbouring transit
// legs, or from the trip endpoints at the first/last position. Consecutive
// walking legs keep nil coordinates; nothing downstream assumes otherwise.
func inferWalkCoords(legs []types.TransitLeg, origin, dest Coord) {
	for i := range legs {
		if legs[i].Mode != "walk" {
			continue
		}

		if i == 0 {
			legs[i].StartLat = floatPtr(origin.Lat)
			legs[i].StartLng = floatPtr(origin.Lng)
		} else if prev := &legs[i-1]; prev.Mode != "walk" {
			legs[i].StartLat = prev.EndLat
			legs[i].StartLng = prev.EndLng
			legs[i].StartName = prev.EndName
		}

		if i == len(legs)-1 {
			legs[i].EndLat = floatPtr(dest.Lat)
			legs[i].EndLng = floatPtr(dest.Lng)
		} else if next := &legs[i+1]; next.Mode != "walk" {
			legs[i].EndLat = next.StartLat
			legs[i].EndLng = next.StartLng
			legs[i].EndName = next.StartName
		}
	}
}

func floatPtr(v float64) *float64 { return &v }
