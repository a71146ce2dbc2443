package service

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"Woorigil/config"
	"Woorigil/pkg/geo"
	"Woorigil/pkg/response"
	"Woorigil/types"

	"github.com/tidwall/gjson"
)

// Coord is a WGS84 point. Provider query strings want lng,lat order.
type Coord struct {
	Lat float64
	Lng float64
}

// DrivingOptions select one of the provider's named optimization strategies
// plus optional vehicle parameters.
type DrivingOptions struct {
	RouteOption string
	CarType     int
	FuelType    string
	Waypoints   []Coord
}

// routeOptions maps the API's route_option names to Naver Directions 5
// strategy codes.
var routeOptions = map[string]string{
	"fastest":        "trafast",
	"comfortable":    "tracomfort",
	"optimal":        "traoptimal",
	"avoid_toll":     "traavoidtoll",
	"avoid_car_only": "traavoidcaronly",
}

const (
	defaultRouteOption = "optimal"
	maxWaypoints       = 5
)

var _ IDrivingService = (*DrivingService)(nil)

type IDrivingService interface {
	SearchRoute(ctx context.Context, origin, dest Coord, opts DrivingOptions) (*types.DrivingRoute, error)
}

// DrivingService wraps the Naver Directions 5 API.
type DrivingService struct {
	Config *config.Config

	httpClient *http.Client
}

func (s *DrivingService) client() *http.Client {
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return s.httpClient
}

func (s *DrivingService) SearchRoute(ctx context.Context, origin, dest Coord, opts DrivingOptions) (*types.DrivingRoute, error) {
	option, err := resolveRouteOption(opts.RouteOption)
	if err != nil {
		return nil, err
	}
	if len(opts.Waypoints) > maxWaypoints {
		return nil, response.BadRequest("Validation failed",
			fmt.Sprintf("at most %d waypoints are supported", maxWaypoints))
	}

	u := fmt.Sprintf("%s?start=%.7f,%.7f&goal=%.7f,%.7f&option=%s",
		s.Config.NaverCloud.DirectionsURL,
		origin.Lng, origin.Lat, dest.Lng, dest.Lat, option)
	if len(opts.Waypoints) > 0 {
		wps := make([]string, 0, len(opts.Waypoints))
		for _, w := range opts.Waypoints {
			wps = append(wps, fmt.Sprintf("%.7f,%.7f", w.Lng, w.Lat))
		}
		u += "&waypoints=" + strings.Join(wps, "|")
	}
	if opts.CarType >= 1 && opts.CarType <= 6 {
		u += fmt.Sprintf("&cartype=%d", opts.CarType)
	}
	if opts.FuelType != "" {
		u += "&fueltype=" + opts.FuelType
	}

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
	return parseDrivingResponse(body, option)
}

func resolveRouteOption(name string) (string, error) {
	if name == "" {
		name = defaultRouteOption
	}
	option, ok := routeOptions[name]
	if !ok {
		return "", response.BadRequest("Validation failed",
			"route_option must be one of fastest, comfortable, optimal, avoid_toll, avoid_car_only")
	}
	return option, nil
}

// parseDrivingResponse flattens the provider's nested per-strategy result
// into one route. A non-zero provider code becomes a domain error carrying
// the provider's message.
func parseDrivingResponse(body []byte, option string) (*types.DrivingRoute, error) {
	parsed := gjson.ParseBytes(body)

	if code := parsed.Get("code").Int(); code != 0 {
		msg := parsed.Get("message").String()
		return nil, response.Unprocessable("Route not found", msg)
	}

	result := parsed.Get("route." + option + ".0")
	if !result.Exists() {
		return nil, response.Unprocessable("Route not found", "provider returned no route")
	}

	summary := result.Get("summary")
	durationMs := int(summary.Get("duration").Int())
	minutes := int(math.Round(float64(durationMs) / 60000.0))
	distance := int(summary.Get("distance").Int())

	route := &types.DrivingRoute{
		Summary: types.DrivingSummary{
			Distance:     distance,
			Duration:     durationMs,
			DurationText: geo.FormatMinutes(minutes),
			DistanceText: geo.FormatDistance(distance),
			TollFare:     int(summary.Get("tollFare").Int()),
			TaxiFare:     int(summary.Get("taxiFare").Int()),
			FuelPrice:    int(summary.Get("fuelPrice").Int()),
		},
		Path:     [][]float64{},
		Sections: []types.DrivingSection{},
	}

	result.Get("path").ForEach(func(_, point gjson.Result) bool {
		pts := point.Array()
		if len(pts) == 2 {
			route.Path = append(route.Path, []float64{pts[0].Float(), pts[1].Float()})
		}
		return true
	})

	result.Get("section").ForEach(func(_, sec gjson.Result) bool {
		route.Sections = append(route.Sections, types.DrivingSection{
			Name:       sec.Get("name").String(),
			Distance:   int(sec.Get("distance").Int()),
			Congestion: int(sec.Get("congestion").Int()),
			Speed:      int(sec.Get("speed").Int()),
		})
		return true
	})

	return route, nil
}
