package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"Woorigil/dao"
	"Woorigil/models"
	"Woorigil/pkg/response"
	"Woorigil/types"

	"gorm.io/gorm"
)

var _ ICourseService = (*CourseService)(nil)

type ICourseService interface {
	Create(ctx context.Context, userID int64, req types.CreateCourseReq) (*types.CourseDetailResp, error)
	List(ctx context.Context, userID int64) ([]types.CourseResp, error)
	Get(ctx context.Context, userID, id int64) (*types.CourseDetailResp, error)
	Delete(ctx context.Context, userID, id int64) error
}

type CourseService struct {
	CourseDao *dao.Courses
}

// Create persists the course with its ordered stops in one transaction.
// Stops that match an already-saved place by naverPlaceId reuse it.
func (s *CourseService) Create(ctx context.Context, userID int64, req types.CreateCourseReq) (*types.CourseDetailResp, error) {
	seeds := make([]models.Place, 0, len(req.Places))
	for _, stop := range req.Places {
		if stop.Latitude < -90 || stop.Latitude > 90 || stop.Longitude < -180 || stop.Longitude > 180 {
			return nil, response.BadRequest("Validation failed", "latitude or longitude out of range")
		}
		payload, _ := json.Marshal(stop)
		seeds = append(seeds, models.Place{
			NaverPlaceID:  stop.NaverPlaceID,
			Name:          stop.Name,
			Address:       stop.Address,
			RoadAddress:   stop.RoadAddress,
			Latitude:      stop.Latitude,
			Longitude:     stop.Longitude,
			Category:      stop.Category,
			Telephone:     stop.Telephone,
			NaverMapURL:   stop.NaverMapURL,
			SourcePayload: payload,
		})
	}

	course := &models.Course{
		UserID:    userID,
		Name:      req.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.CourseDao.CreateWithPlaces(ctx, course, seeds); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, course.ID)
}

func (s *CourseService) List(ctx context.Context, userID int64) ([]types.CourseResp, error) {
	courses, err := s.CourseDao.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]types.CourseResp, 0, len(courses))
	for _, c := range courses {
		stops, err := s.CourseDao.StopsFor(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, types.CourseResp{
			ID:          c.ID,
			Name:        c.Name,
			PlacesCount: len(stops),
			CreatedAt:   c.CreatedAt,
		})
	}
	return out, nil
}

func (s *CourseService) Get(ctx context.Context, userID, id int64) (*types.CourseDetailResp, error) {
	course, err := s.CourseDao.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Course not found")
		}
		return nil, err
	}

	stops, err := s.CourseDao.StopsFor(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &types.CourseDetailResp{
		ID:        course.ID,
		Name:      course.Name,
		CreatedAt: course.CreatedAt,
		Places:    make([]types.CourseStopResp, 0, len(stops)),
	}
	for i, p := range stops {
		resp.Places = append(resp.Places, types.CourseStopResp{
			Position:  i,
			PlaceID:   p.ID,
			Name:      p.Name,
			Address:   p.Address,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		})
	}
	return resp, nil
}

func (s *CourseService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.CourseDao.FindOwned(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("Course not found")
		}
		return err
	}
	return s.CourseDao.Delete(ctx, id)
}
