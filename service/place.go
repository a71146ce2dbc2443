package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"Woorigil/dao"
	"Woorigil/dao/cache"
	"Woorigil/models"
	"Woorigil/pkg/log"
	"Woorigil/pkg/response"
	"Woorigil/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IPlaceService = (*PlaceService)(nil)

type IPlaceService interface {
	Create(ctx context.Context, userID int64, req types.CreatePlaceReq) (*types.PlaceResp, error)
	List(ctx context.Context, userID int64) ([]types.PlaceResp, error)
	Get(ctx context.Context, userID, id int64) (*types.PlaceResp, error)
	Liked(ctx context.Context, userID int64) ([]types.PlaceResp, error)
	MySearch(ctx context.Context, req types.MySearchReq) ([]types.PlaceResp, error)
	Categories(ctx context.Context) ([]string, error)
	Popular(ctx context.Context) ([]types.PlaceResp, error)
}

type PlaceService struct {
	PlaceDao *dao.Places
	LikeDao  *dao.PlaceLikes
	Cache    *cache.PlaceCache
}

const popularLimit = 5

func (s *PlaceService) Create(ctx context.Context, userID int64, req types.CreatePlaceReq) (*types.PlaceResp, error) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return nil, response.BadRequest("Validation failed", "latitude or longitude out of range")
	}

	// Snapshot the request so the raw provider payload that produced the
	// place survives later reshaping.
	payload, _ := json.Marshal(req)

	seed := &models.Place{
		UserID:        userID,
		NaverPlaceID:  req.NaverPlaceID,
		Name:          req.Name,
		Address:       req.Address,
		RoadAddress:   req.RoadAddress,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Category:      req.Category,
		Telephone:     req.Telephone,
		NaverMapURL:   req.NaverMapURL,
		SourcePayload: payload,
	}
	place, err := s.PlaceDao.FindOrCreate(ctx, nil, seed)
	if err != nil {
		return nil, err
	}
	resp := placeResp(*place, false)
	return &resp, nil
}

func (s *PlaceService) List(ctx context.Context, userID int64) ([]types.PlaceResp, error) {
	places, err := s.PlaceDao.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	liked, err := s.likedSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return placeResps(places, liked), nil
}

// Get bumps the view counter atomically and reflects the bump in the
// response without a re-read.
func (s *PlaceService) Get(ctx context.Context, userID, id int64) (*types.PlaceResp, error) {
	place, err := s.PlaceDao.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Place not found")
		}
		return nil, err
	}
	if err := s.PlaceDao.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	place.ViewsCount++

	isLiked, err := s.LikeDao.IsLiked(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	resp := placeResp(*place, isLiked)
	return &resp, nil
}

func (s *PlaceService) Liked(ctx context.Context, userID int64) ([]types.PlaceResp, error) {
	places, err := s.PlaceDao.ListLikedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]types.PlaceResp, 0, len(places))
	for _, p := range places {
		out = append(out, placeResp(p, true))
	}
	return out, nil
}

func (s *PlaceService) MySearch(ctx context.Context, req types.MySearchReq) ([]types.PlaceResp, error) {
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	places, err := s.PlaceDao.Search(ctx, req.Q, req.Category, limit)
	if err != nil {
		return nil, err
	}
	return placeResps(places, nil), nil
}

// Categories returns the distinct main categories; provider categories are
// "대분류>소분류" chains and only the head matters here.
func (s *PlaceService) Categories(ctx context.Context) ([]string, error) {
	raw, err := s.PlaceDao.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return mainCategories(raw), nil
}

func (s *PlaceService) Popular(ctx context.Context) ([]types.PlaceResp, error) {
	var cached []types.PlaceResp
	if ok, err := s.Cache.GetPopular(ctx, &cached); err == nil && ok {
		return cached, nil
	}

	places, err := s.PlaceDao.Popular(ctx, popularLimit)
	if err != nil {
		return nil, err
	}
	out := placeResps(places, nil)
	if err := s.Cache.SetPopular(ctx, out); err != nil {
		log.L.Warn("popular cache set failed", zap.Error(err))
	}
	return out, nil
}

func (s *PlaceService) likedSet(ctx context.Context, userID int64) (map[int64]bool, error) {
	likes, err := s.LikeDao.FindAllByWhere(ctx, "user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]bool, len(likes))
	for _, l := range likes {
		set[l.PlaceID] = true
	}
	return set, nil
}

func mainCategories(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		head := strings.TrimSpace(strings.Split(c, ">")[0])
		if head == "" || seen[head] {
			continue
		}
		seen[head] = true
		out = append(out, head)
	}
	return out
}

func placeResps(places []models.Place, liked map[int64]bool) []types.PlaceResp {
	out := make([]types.PlaceResp, 0, len(places))
	for _, p := range places {
		out = append(out, placeResp(p, liked[p.ID]))
	}
	return out
}

func placeResp(p models.Place, liked bool) types.PlaceResp {
	return types.PlaceResp{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		RoadAddress:  p.RoadAddress,
		Category:     p.Category,
		Telephone:    p.Telephone,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		NaverPlaceID: p.NaverPlaceID,
		NaverMapURL:  p.NaverMapURL,
		ViewsCount:   p.ViewsCount,
		LikesCount:   p.LikesCount,
		Liked:        liked,
		CreatedAt:    p.CreatedAt,
	}
}
