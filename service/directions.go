package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"Woorigil/dao"
	"Woorigil/models"
	"Woorigil/pkg/geo"
	"Woorigil/pkg/log"
	"Woorigil/pkg/response"
	"Woorigil/types"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	ModeTransit = "transit"
	ModeDriving = "driving"
)

var _ IDirectionsService = (*DirectionsService)(nil)

type IDirectionsService interface {
	Route(ctx context.Context, req types.DirectionsReq) (*types.DirectionsResp, error)
	CourseDirections(ctx context.Context, userID, courseID int64, mode string) (*types.CourseDirectionsResp, error)
}

// DirectionsService dispatches per-mode routing and aggregates pairwise
// segments over a course's ordered stops.
type DirectionsService struct {
	Transit   ITransitService
	Driving   IDrivingService
	CourseDao *dao.Courses
}

// Route handles the single-segment endpoint. Coordinates must be present and
// inside the national bounding box before any provider call goes out.
func (s *DirectionsService) Route(ctx context.Context, req types.DirectionsReq) (*types.DirectionsResp, error) {
	origin, dest, err := validateEndpoints(req)
	if err != nil {
		return nil, err
	}

	switch req.Mode {
	case ModeTransit:
		result, err := s.Transit.SearchRoute(ctx, origin, dest, req.PathType)
		if err != nil {
			return nil, err
		}
		if len(result.Paths) > 0 {
			s.Transit.EnrichGeometry(ctx, origin, dest, &result.Paths[0])
		}
		return &types.DirectionsResp{Mode: ModeTransit, Transit: result}, nil

	case ModeDriving:
		waypoints, err := parseWaypoints(req.Waypoints)
		if err != nil {
			return nil, err
		}
		route, err := s.Driving.SearchRoute(ctx, origin, dest, DrivingOptions{
			RouteOption: req.RouteOption,
			CarType:     req.CarType,
			FuelType:    req.FuelType,
			Waypoints:   waypoints,
		})
		if err != nil {
			return nil, err
		}
		return &types.DirectionsResp{Mode: ModeDriving, Driving: route}, nil

	default:
		return nil, response.BadRequest("Validation failed", "mode must be transit or driving")
	}
}

// CourseDirections orders the course's stops, routes every consecutive pair
// concurrently and sums a per-mode trip summary. A failed segment keeps its
// error in-band and is skipped from the sums; it never aborts the others.
func (s *DirectionsService) CourseDirections(ctx context.Context, userID, courseID int64, mode string) (*types.CourseDirectionsResp, error) {
	if mode != ModeTransit && mode != ModeDriving {
		return nil, response.BadRequest("Validation failed", "mode must be transit or driving")
	}

	course, err := s.CourseDao.FindOwned(ctx, courseID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Course not found")
		}
		return nil, err
	}

	stops, err := s.CourseDao.StopsFor(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(stops) < 2 {
		return nil, response.Unprocessable("Course has too few places",
			"directions need at least 2 places")
	}

	segments := s.routeSegments(ctx, stops, mode)

	resp := &types.CourseDirectionsResp{
		CourseID:      course.ID,
		CourseName:    course.Name,
		Mode:          mode,
		TotalSegments: len(segments),
		Segments:      segments,
	}
	if mode == ModeTransit {
		resp.Summary = summarizeTransit(segments)
	} else {
		resp.Summary = summarizeDriving(segments)
	}
	return resp, nil
}

// routeSegments fans the pairwise adapter calls out on an errgroup; the
// results slice is indexed by segment position so concurrency never disturbs
// ordering.
func (s *DirectionsService) routeSegments(ctx context.Context, stops []models.Place, mode string) []types.CourseSegment {
	segments := make([]types.CourseSegment, len(stops)-1)

	var g errgroup.Group
	for i := 0; i < len(stops)-1; i++ {
		i := i
		from, to := stops[i], stops[i+1]
		segments[i] = types.CourseSegment{
			Index:    i + 1,
			FromName: from.Name,
			ToName:   to.Name,
			FromLat:  from.Latitude,
			FromLng:  from.Longitude,
			ToLat:    to.Latitude,
			ToLng:    to.Longitude,
		}

		g.Go(func() error {
			origin := Coord{Lat: from.Latitude, Lng: from.Longitude}
			dest := Coord{Lat: to.Latitude, Lng: to.Longitude}

			var err error
			if mode == ModeTransit {
				segments[i].Transit, err = s.Transit.SearchRoute(ctx, origin, dest, PathTypeAll)
			} else {
				segments[i].Driving, err = s.Driving.SearchRoute(ctx, origin, dest, DrivingOptions{})
			}
			if err != nil {
				log.L.Warn("segment routing failed",
					zap.Int("segment", i+1),
					zap.String("from", from.Name),
					zap.String("to", to.Name),
					zap.Error(err))
				segments[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	return segments
}

// summarizeTransit sums each segment's first (recommended) path. Segments
// with an error or no path contribute nothing.
func summarizeTransit(segments []types.CourseSegment) types.TripSummary {
	var totalTime, totalDistance, totalFare int
	for _, seg := range segments {
		if seg.Error != "" || seg.Transit == nil || len(seg.Transit.Paths) == 0 {
			continue
		}
		best := seg.Transit.Paths[0]
		totalTime += best.TotalTime
		totalDistance += best.TotalDistance
		totalFare += best.Payment
	}
	return types.TripSummary{
		TotalTime:         totalTime,
		TotalTimeText:     geo.FormatMinutes(totalTime),
		TotalDistance:     totalDistance,
		TotalDistanceText: geo.FormatDistance(totalDistance),
		TotalFare:         totalFare,
		TotalFareText:     geo.FormatWon(totalFare),
	}
}

// summarizeDriving sums raw durations in milliseconds and converts to whole
// minutes once, at the end.
func summarizeDriving(segments []types.CourseSegment) types.TripSummary {
	var durationMs, totalDistance, totalToll, totalFuel int
	for _, seg := range segments {
		if seg.Error != "" || seg.Driving == nil {
			continue
		}
		durationMs += seg.Driving.Summary.Duration
		totalDistance += seg.Driving.Summary.Distance
		totalToll += seg.Driving.Summary.TollFare
		totalFuel += seg.Driving.Summary.FuelPrice
	}
	minutes := int(math.Round(float64(durationMs) / 60000.0))
	return types.TripSummary{
		TotalTime:         minutes,
		TotalTimeText:     geo.FormatMinutes(minutes),
		TotalDistance:     totalDistance,
		TotalDistanceText: geo.FormatDistance(totalDistance),
		TotalTollFare:     totalToll,
		TotalFuelPrice:    totalFuel,
	}
}

func validateEndpoints(req types.DirectionsReq) (Coord, Coord, error) {
	if req.StartLat == nil || req.StartLng == nil || req.EndLat == nil || req.EndLng == nil {
		return Coord{}, Coord{}, response.BadRequest("Validation failed",
			"start_lat, start_lng, end_lat and end_lng are required")
	}
	origin := Coord{Lat: *req.StartLat, Lng: *req.StartLng}
	dest := Coord{Lat: *req.EndLat, Lng: *req.EndLng}
	if !geo.InKorea(origin.Lat, origin.Lng) || !geo.InKorea(dest.Lat, dest.Lng) {
		return Coord{}, Coord{}, response.BadRequest("Validation failed",
			fmt.Sprintf("coordinates must be within latitude %.0f-%.0f and longitude %.0f-%.0f",
				geo.MinLat, geo.MaxLat, geo.MinLng, geo.MaxLng))
	}
	return origin, dest, nil
}

// parseWaypoints reads "lat,lng|lat,lng" from the query string.
func parseWaypoints(raw string) ([]Coord, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, "|")
	coords := make([]Coord, 0, len(parts))
	for _, part := range parts {
		pair := strings.Split(part, ",")
		if len(pair) != 2 {
			return nil, response.BadRequest("Validation failed", "waypoints must be lat,lng pairs separated by |")
		}
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(pair[0]), 64)
		lng, lngErr := strconv.ParseFloat(strings.TrimSpace(pair[1]), 64)
		if latErr != nil || lngErr != nil || !geo.InKorea(lat, lng) {
			return nil, response.BadRequest("Validation failed", "waypoints must be valid coordinates")
		}
		coords = append(coords, Coord{Lat: lat, Lng: lng})
	}
	return coords, nil
}
