package service

import (
	"testing"

	"Woorigil/models"
)

func ptr(v int64) *int64 { return &v }

// fixture:
//
//	1 root
//	├── 2 child
//	│   └── 4 grandchild
//	└── 3 child
//	5 another root
func fixtureFolders() []models.Folder {
	return []models.Folder{
		{ID: 1, Name: "데이트"},
		{ID: 2, Name: "맛집", ParentID: ptr(1)},
		{ID: 3, Name: "카페", ParentID: ptr(1)},
		{ID: 4, Name: "강남", ParentID: ptr(2)},
		{ID: 5, Name: "여행"},
	}
}

func TestBuildFolderTree(t *testing.T) {
	roots := buildFolderTree(fixtureFolders())

	if len(roots) != 2 {
		t.Fatalf("roots = %d, want 2", len(roots))
	}
	if roots[0].ID != 1 || roots[1].ID != 5 {
		t.Fatalf("root ids = %d, %d", roots[0].ID, roots[1].ID)
	}
	if len(roots[0].Children) != 2 {
		t.Fatalf("children of 1 = %d, want 2", len(roots[0].Children))
	}
	if got := roots[0].Children[0]; got.ID != 2 || len(got.Children) != 1 || got.Children[0].ID != 4 {
		t.Fatalf("subtree under 2 is wrong: %+v", got)
	}
	if len(roots[1].Children) != 0 {
		t.Fatalf("folder 5 should be a leaf")
	}
}

func TestFlattenFoldersPathAndDepth(t *testing.T) {
	items := flattenFolders(fixtureFolders())

	want := map[int64]struct {
		path  string
		depth int
	}{
		1: {"데이트", 0},
		2: {"데이트 > 맛집", 1},
		3: {"데이트 > 카페", 1},
		4: {"데이트 > 맛집 > 강남", 2},
		5: {"여행", 0},
	}
	if len(items) != len(want) {
		t.Fatalf("items = %d, want %d", len(items), len(want))
	}
	for _, it := range items {
		w := want[it.ID]
		if it.Path != w.path {
			t.Errorf("folder %d path = %q, want %q", it.ID, it.Path, w.path)
		}
		if it.Depth != w.depth {
			t.Errorf("folder %d depth = %d, want %d", it.ID, it.Depth, w.depth)
		}
	}
}

func TestDescendantIDs(t *testing.T) {
	folders := fixtureFolders()

	got := descendantIDs(folders, 1)
	if len(got) != 3 {
		t.Fatalf("descendants of 1 = %v, want 3 ids", got)
	}
	seen := map[int64]bool{}
	for _, id := range got {
		seen[id] = true
	}
	for _, id := range []int64{2, 3, 4} {
		if !seen[id] {
			t.Errorf("descendants of 1 missing %d", id)
		}
	}

	if got := descendantIDs(folders, 4); len(got) != 0 {
		t.Errorf("descendants of leaf = %v, want none", got)
	}

	// deleting folder 2 should take out itself + 1 descendant
	if got := descendantIDs(folders, 2); len(got) != 1 || got[0] != 4 {
		t.Errorf("descendants of 2 = %v, want [4]", got)
	}
}

func TestDescendantIDsBlocksCycleTargets(t *testing.T) {
	folders := fixtureFolders()

	// re-parenting 1 under 4 must be rejected: 4 is a descendant of 1
	blocked := false
	for _, id := range descendantIDs(folders, 1) {
		if id == 4 {
			blocked = true
		}
	}
	if !blocked {
		t.Fatal("folder 4 should appear in the descendant set of folder 1")
	}
}

func TestValidateFolderName(t *testing.T) {
	if err := validateFolderName("  "); err == nil {
		t.Error("blank name should fail")
	}
	long := make([]rune, 256)
	for i := range long {
		long[i] = '가'
	}
	if err := validateFolderName(string(long)); err == nil {
		t.Error("256-char name should fail")
	}
	if err := validateFolderName("주말 나들이"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
}
