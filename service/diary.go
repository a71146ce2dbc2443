package service

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"Woorigil/dao"
	"Woorigil/models"
	"Woorigil/pkg/response"
	"Woorigil/types"

	"gorm.io/gorm"
)

var _ IDiaryService = (*DiaryService)(nil)

type IDiaryService interface {
	Create(ctx context.Context, userID int64, req types.CreateDiaryReq) (*types.DiaryResp, error)
	List(ctx context.Context, userID int64) ([]types.DiaryResp, error)
	Get(ctx context.Context, userID, id int64) (*types.DiaryResp, error)
	Update(ctx context.Context, userID, id int64, req types.UpdateDiaryReq) (*types.DiaryResp, error)
	Delete(ctx context.Context, userID, id int64) error
	Share(ctx context.Context, userID, id int64, req types.ShareDiaryReq) (*types.DiaryShareResp, error)
	Unshare(ctx context.Context, userID, id int64, targetUserID int64) error
	UploadThumbnail(ctx context.Context, userID, id int64, header *multipart.FileHeader) (*types.DiaryResp, error)
}

type DiaryService struct {
	DiaryDao     *dao.Diaries
	DiaryUserDao *dao.DiaryUsers
	UserDao      *dao.Users
	Oss          IOssService
}

func (s *DiaryService) Create(ctx context.Context, userID int64, req types.CreateDiaryReq) (*types.DiaryResp, error) {
	diary := &models.Diary{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.DiaryDao.Create(ctx, diary); err != nil {
		return nil, err
	}
	resp := s.diaryResp(*diary, models.DiaryRoleOwner)
	return &resp, nil
}

func (s *DiaryService) List(ctx context.Context, userID int64) ([]types.DiaryResp, error) {
	diaries, err := s.DiaryDao.ListAccessible(ctx, userID)
	if err != nil {
		return nil, err
	}

	roles, err := s.sharedRoles(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]types.DiaryResp, 0, len(diaries))
	for _, d := range diaries {
		role := models.DiaryRoleOwner
		if !d.OwnedBy(userID) {
			role = roles[d.ID]
		}
		out = append(out, s.diaryResp(d, role))
	}
	return out, nil
}

// Get allows any accessible user to read; everyone else gets a 404, never a
// hint the diary exists.
func (s *DiaryService) Get(ctx context.Context, userID, id int64) (*types.DiaryResp, error) {
	diary, role, err := s.resolveAccess(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := s.diaryResp(*diary, role)
	return &resp, nil
}

func (s *DiaryService) Update(ctx context.Context, userID, id int64, req types.UpdateDiaryReq) (*types.DiaryResp, error) {
	diary, err := s.requireOwner(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now()}
	if req.Title != nil {
		updates["title"] = *req.Title
		diary.Title = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
		diary.Content = *req.Content
	}
	if err := s.DiaryDao.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	resp := s.diaryResp(*diary, models.DiaryRoleOwner)
	return &resp, nil
}

func (s *DiaryService) Delete(ctx context.Context, userID, id int64) error {
	diary, err := s.requireOwner(ctx, userID, id)
	if err != nil {
		return err
	}
	if diary.ThumbnailKey != "" {
		_ = s.Oss.DeleteObject(ctx, diary.ThumbnailKey)
	}
	return s.DiaryDao.Delete(ctx, id)
}

// Share is idempotent on the (user, diary) pair; repeating it does not
// change an existing role.
func (s *DiaryService) Share(ctx context.Context, userID, id int64, req types.ShareDiaryReq) (*types.DiaryShareResp, error) {
	if _, err := s.requireOwner(ctx, userID, id); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.DiaryRoleViewer
	}
	if !models.ValidDiaryRole(role) || role == models.DiaryRoleOwner {
		return nil, response.BadRequest("Validation failed", "role must be viewer or editor")
	}
	if req.UserID == userID {
		return nil, response.Unprocessable("Cannot share with yourself", "")
	}
	if _, err := s.UserDao.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("User not found")
		}
		return nil, err
	}

	share, err := s.DiaryUserDao.FindOrCreate(ctx, id, req.UserID, role)
	if err != nil {
		return nil, err
	}
	return &types.DiaryShareResp{
		DiaryID: share.DiaryID,
		UserID:  share.UserID,
		Role:    share.Role,
	}, nil
}

func (s *DiaryService) Unshare(ctx context.Context, userID, id int64, targetUserID int64) error {
	if _, err := s.requireOwner(ctx, userID, id); err != nil {
		return err
	}
	return s.DiaryUserDao.DeleteByPair(ctx, id, targetUserID)
}

// UploadThumbnail replaces the diary's single thumbnail; the previous object
// is removed after the new one is stored.
func (s *DiaryService) UploadThumbnail(ctx context.Context, userID, id int64, header *multipart.FileHeader) (*types.DiaryResp, error) {
	diary, err := s.requireOwner(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	objectKey, err := s.Oss.UploadObject(ctx, "diaries/thumbnails", header)
	if err != nil {
		return nil, err
	}
	if err := s.DiaryDao.Update(ctx, id, map[string]any{
		"thumbnail_key": objectKey,
		"updated_at":    time.Now(),
	}); err != nil {
		return nil, err
	}
	if diary.ThumbnailKey != "" {
		_ = s.Oss.DeleteObject(ctx, diary.ThumbnailKey)
	}
	diary.ThumbnailKey = objectKey
	resp := s.diaryResp(*diary, models.DiaryRoleOwner)
	return &resp, nil
}

// resolveAccess loads a diary any accessible user may read. Inaccessible and
// missing diaries are indistinguishable.
func (s *DiaryService) resolveAccess(ctx context.Context, userID, id int64) (*models.Diary, string, error) {
	diary, err := s.DiaryDao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", response.NotFound("Diary not found")
		}
		return nil, "", err
	}
	if diary.OwnedBy(userID) {
		return diary, models.DiaryRoleOwner, nil
	}

	share, err := s.DiaryUserDao.FindByWhere(ctx, "diary_id = ? AND user_id = ?", id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", response.NotFound("Diary not found")
		}
		return nil, "", err
	}
	return diary, share.Role, nil
}

// requireOwner distinguishes the shared-but-not-owner case (403) from the
// no-access case (404).
func (s *DiaryService) requireOwner(ctx context.Context, userID, id int64) (*models.Diary, error) {
	diary, role, err := s.resolveAccess(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if role != models.DiaryRoleOwner {
		return nil, response.Forbidden("Forbidden", "only the owner may do this")
	}
	return diary, nil
}

func (s *DiaryService) sharedRoles(ctx context.Context, userID int64) (map[int64]string, error) {
	shares, err := s.DiaryUserDao.FindAllByWhere(ctx, "user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	roles := make(map[int64]string, len(shares))
	for _, sh := range shares {
		roles[sh.DiaryID] = sh.Role
	}
	return roles, nil
}

func (s *DiaryService) diaryResp(d models.Diary, role string) types.DiaryResp {
	resp := types.DiaryResp{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		OwnerID:   d.UserID,
		Role:      role,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.ThumbnailKey != "" {
		resp.ThumbnailURL = s.Oss.PublicURL(d.ThumbnailKey)
	}
	return resp
}
