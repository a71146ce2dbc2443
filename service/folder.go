package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"Woorigil/dao"
	"Woorigil/models"
	"Woorigil/pkg/response"
	"Woorigil/types"

	"gorm.io/gorm"
)

var _ IFolderService = (*FolderService)(nil)

type IFolderService interface {
	Create(ctx context.Context, userID int64, req types.CreateFolderReq) (*types.FolderResp, error)
	Get(ctx context.Context, userID, id int64) (*types.FolderResp, error)
	ListTree(ctx context.Context, userID int64) ([]*types.FolderTreeNode, error)
	ListFlat(ctx context.Context, userID int64) ([]types.FolderFlatItem, error)
	Children(ctx context.Context, userID, id int64) ([]types.FolderResp, error)
	Update(ctx context.Context, userID, id int64, req types.UpdateFolderReq, clearParent bool) (*types.FolderResp, error)
	Delete(ctx context.Context, userID, id int64) (int, error)
}

type FolderService struct {
	FolderDao *dao.Folders
}

func (s *FolderService) Create(ctx context.Context, userID int64, req types.CreateFolderReq) (*types.FolderResp, error) {
	if err := validateFolderName(req.Name); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if _, err := s.FolderDao.FindOwned(ctx, *req.ParentID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.BadRequest("Validation failed", "parent folder not found")
			}
			return nil, err
		}
	}

	folder := &models.Folder{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.FolderDao.Create(ctx, folder); err != nil {
		return nil, err
	}
	resp := folderResp(*folder)
	return &resp, nil
}

func (s *FolderService) Get(ctx context.Context, userID, id int64) (*types.FolderResp, error) {
	folder, err := s.FolderDao.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Folder not found")
		}
		return nil, err
	}
	resp := folderResp(*folder)
	return &resp, nil
}

// ListTree returns the user's root folders with children embedded
// recursively. The whole set is loaded once and assembled in memory.
func (s *FolderService) ListTree(ctx context.Context, userID int64) ([]*types.FolderTreeNode, error) {
	folders, err := s.FolderDao.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildFolderTree(folders), nil
}

// ListFlat returns every folder annotated with its computed path and depth.
func (s *FolderService) ListFlat(ctx context.Context, userID int64) ([]types.FolderFlatItem, error) {
	folders, err := s.FolderDao.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return flattenFolders(folders), nil
}

func (s *FolderService) Children(ctx context.Context, userID, id int64) ([]types.FolderResp, error) {
	if _, err := s.FolderDao.FindOwned(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Folder not found")
		}
		return nil, err
	}

	children, err := s.FolderDao.FindAllByWhere(ctx, "user_id = ? AND parent_id = ?", userID, id)
	if err != nil {
		return nil, err
	}
	out := make([]types.FolderResp, 0, len(children))
	for _, c := range children {
		out = append(out, folderResp(c))
	}
	return out, nil
}

// Update applies a partial update. clearParent moves the folder back to the
// root; a new parent is re-checked for cycles against the live descendant
// set before anything is written.
func (s *FolderService) Update(ctx context.Context, userID, id int64, req types.UpdateFolderReq, clearParent bool) (*types.FolderResp, error) {
	folder, err := s.FolderDao.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Folder not found")
		}
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now()}
	if req.Name != nil {
		if err := validateFolderName(*req.Name); err != nil {
			return nil, err
		}
		updates["name"] = *req.Name
		folder.Name = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		folder.Description = *req.Description
	}

	switch {
	case clearParent:
		updates["parent_id"] = nil
		folder.ParentID = nil

	case req.ParentID != nil:
		newParent := *req.ParentID
		if newParent == id {
			return nil, response.BadRequest("Validation failed", "folder cannot be its own parent")
		}
		folders, err := s.FolderDao.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !folderInSet(folders, newParent) {
			return nil, response.BadRequest("Validation failed", "parent folder not found")
		}
		for _, did := range descendantIDs(folders, id) {
			if did == newParent {
				return nil, response.BadRequest("Validation failed", "parent cannot be a descendant of the folder")
			}
		}
		updates["parent_id"] = newParent
		folder.ParentID = &newParent
	}

	if err := s.FolderDao.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	resp := folderResp(*folder)
	return &resp, nil
}

// Delete removes the folder and every descendant, returning how many rows
// went away.
func (s *FolderService) Delete(ctx context.Context, userID, id int64) (int, error) {
	if _, err := s.FolderDao.FindOwned(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, response.NotFound("Folder not found")
		}
		return 0, err
	}

	folders, err := s.FolderDao.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	ids := append([]int64{id}, descendantIDs(folders, id)...)
	if err := s.FolderDao.DeleteSubtree(ctx, userID, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}

func validateFolderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return response.BadRequest("Validation failed", "name cannot be blank")
	}
	if len([]rune(name)) > 255 {
		return response.BadRequest("Validation failed", "name is too long (maximum is 255 characters)")
	}
	return nil
}

// childIndex maps parent id -> child ids; roots sit under key 0.
func childIndex(folders []models.Folder) map[int64][]int64 {
	idx := make(map[int64][]int64, len(folders))
	for _, f := range folders {
		parent := int64(0)
		if f.ParentID != nil {
			parent = *f.ParentID
		}
		idx[parent] = append(idx[parent], f.ID)
	}
	for _, kids := range idx {
		sort.Slice(kids, func(i, j int) bool { return kids[i] < kids[j] })
	}
	return idx
}

func buildFolderTree(folders []models.Folder) []*types.FolderTreeNode {
	byID := make(map[int64]models.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}
	idx := childIndex(folders)

	var build func(id int64) *types.FolderTreeNode
	build = func(id int64) *types.FolderTreeNode {
		f := byID[id]
		node := &types.FolderTreeNode{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			ParentID:    f.ParentID,
			Children:    []*types.FolderTreeNode{},
		}
		for _, childID := range idx[id] {
			node.Children = append(node.Children, build(childID))
		}
		return node
	}

	roots := make([]*types.FolderTreeNode, 0, len(idx[0]))
	for _, rootID := range idx[0] {
		roots = append(roots, build(rootID))
	}
	return roots
}

// flattenFolders annotates every folder with its root-to-self path and
// depth. Depth and path are derived by walking the parent chain over the
// in-memory index, never by re-querying.
func flattenFolders(folders []models.Folder) []types.FolderFlatItem {
	byID := make(map[int64]models.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}

	depths := make(map[int64]int, len(folders))
	paths := make(map[int64]string, len(folders))

	var resolve func(id int64) (int, string)
	resolve = func(id int64) (int, string) {
		if d, ok := depths[id]; ok {
			return d, paths[id]
		}
		f := byID[id]
		if f.ParentID == nil {
			depths[id], paths[id] = 0, f.Name
			return 0, f.Name
		}
		// An orphaned parent reference degrades to a root.
		if _, ok := byID[*f.ParentID]; !ok {
			depths[id], paths[id] = 0, f.Name
			return 0, f.Name
		}
		pd, pp := resolve(*f.ParentID)
		depths[id] = pd + 1
		paths[id] = pp + " > " + f.Name
		return depths[id], paths[id]
	}

	out := make([]types.FolderFlatItem, 0, len(folders))
	for _, f := range folders {
		depth, path := resolve(f.ID)
		out = append(out, types.FolderFlatItem{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			ParentID:    f.ParentID,
			Path:        path,
			Depth:       depth,
		})
	}
	return out
}

// descendantIDs walks the child index breadth-first from rootID. rootID
// itself is not included.
func descendantIDs(folders []models.Folder, rootID int64) []int64 {
	idx := childIndex(folders)

	var out []int64
	queue := append([]int64{}, idx[rootID]...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		out = append(out, id)
		queue = append(queue, idx[id]...)
	}
	return out
}

func folderInSet(folders []models.Folder, id int64) bool {
	for _, f := range folders {
		if f.ID == id {
			return true
		}
	}
	return false
}

func folderResp(f models.Folder) types.FolderResp {
	return types.FolderResp{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ParentID:    f.ParentID,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
