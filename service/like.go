package service

import (
	"context"
	"errors"

	"Woorigil/dao"
	"Woorigil/dao/cache"
	"Woorigil/pkg/log"
	"Woorigil/pkg/response"
	"Woorigil/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Toggle(ctx context.Context, userID, placeID int64) (*types.LikeToggleResp, error)
	IsLiked(ctx context.Context, userID, placeID int64) (bool, error)
}

type LikeService struct {
	LikeDao  *dao.PlaceLikes
	PlaceDao *dao.Places
	Cache    *cache.PlaceCache
}

// Toggle flips the like state; two calls in a row by the same user leave the
// counter where it started. Changing a like reshuffles the popular board, so
// its cache entry is dropped.
func (s *LikeService) Toggle(ctx context.Context, userID, placeID int64) (*types.LikeToggleResp, error) {
	if _, err := s.PlaceDao.FindByID(ctx, placeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Place not found")
		}
		return nil, err
	}

	liked, likesCount, err := s.LikeDao.Toggle(ctx, placeID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.Cache.InvalidatePopular(ctx); err != nil {
		log.L.Warn("popular cache invalidation failed", zap.Error(err))
	}

	return &types.LikeToggleResp{
		PlaceID:    placeID,
		Liked:      liked,
		LikesCount: likesCount,
	}, nil
}

func (s *LikeService) IsLiked(ctx context.Context, userID, placeID int64) (bool, error) {
	return s.LikeDao.IsLiked(ctx, placeID, userID)
}
