package cms

import (
	"context"
	"errors"
	"testing"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
)

// seedTree builds:
//
//	a(sort 2)
//	  a1
//	    a1x
//	  a2
//	b(sort 10)
//	c(sort 3)
//	  c1
func seedTree(repo *memFolderRepo) map[string]int64 {
	ids := map[string]int64{}
	add := func(name string, parent string, level, sort int) {
		ids[name] = repo.add(models.Folder{
			ParentID:  ids[parent],
			Name:      name,
			ShortName: name,
			Level:     level,
			Sort:      sort,
			Status:    models.FolderStatusActive,
		})
	}
	add("a", "", 1, 2)
	add("b", "", 1, 10)
	add("c", "", 1, 3)
	add("a1", "a", 2, 1)
	add("a2", "a", 2, 2)
	add("c1", "c", 2, 1)
	add("a1x", "a1", 3, 1)
	return ids
}

func names(nodes []models.FolderNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ShortName
	}
	return out
}

func TestBuildTree_PreOrder(t *testing.T) {
	repo := newMemFolderRepo()
	seedTree(repo)
	svc := NewTreeService(repo, 64, testLogger())

	nodes, err := svc.BuildTree(context.Background())
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}

	// Root siblings sort lexically: "10" < "2" < "3"
	want := []string{"b", "a", "a1", "a1x", "a2", "c", "c1"}
	got := names(nodes)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBuildTree_ParentPrecedesContiguousSubtree(t *testing.T) {
	repo := newMemFolderRepo()
	seedTree(repo)
	svc := NewTreeService(repo, 64, testLogger())

	nodes, err := svc.BuildTree(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	index := map[int64]int{}
	byID := map[int64]models.Folder{}
	for i, n := range nodes {
		index[n.ID] = i
		byID[n.ID] = n.Folder
	}

	isDescendant := func(id, ancestor int64) bool {
		for cur := byID[id].ParentID; cur != models.RootFolderID; cur = byID[cur].ParentID {
			if cur == ancestor {
				return true
			}
		}
		return false
	}

	for i, n := range nodes {
		// Every descendant sits after n, and the run of descendants is unbroken
		j := i + 1
		for j < len(nodes) && isDescendant(nodes[j].ID, n.ID) {
			j++
		}
		for k := j; k < len(nodes); k++ {
			if isDescendant(nodes[k].ID, n.ID) {
				t.Errorf("descendant %s of %s appears outside its contiguous subtree", nodes[k].ShortName, n.ShortName)
			}
		}
		if n.ParentID != models.RootFolderID && index[n.ParentID] >= i {
			t.Errorf("%s appears before its parent", n.ShortName)
		}
	}
}

func TestBuildTree_LevelInvariant(t *testing.T) {
	repo := newMemFolderRepo()
	seedTree(repo)
	svc := NewTreeService(repo, 64, testLogger())

	nodes, err := svc.BuildTree(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	levels := map[int64]int{}
	for _, n := range nodes {
		levels[n.ID] = n.Level
	}
	for _, n := range nodes {
		want := 1
		if !n.IsRoot() {
			want = levels[n.ParentID] + 1
		}
		if n.Level != want {
			t.Errorf("%s: level %d, want %d", n.ShortName, n.Level, want)
		}
	}
}

func TestBuildTree_Empty(t *testing.T) {
	svc := NewTreeService(newMemFolderRepo(), 64, testLogger())

	nodes, err := svc.BuildTree(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if nodes == nil || len(nodes) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", nodes)
	}
}

func TestBuildTree_OneListCallPerVisitedFolder(t *testing.T) {
	repo := newMemFolderRepo()
	seedTree(repo)
	svc := NewTreeService(repo, 64, testLogger())

	if _, err := svc.BuildTree(context.Background()); err != nil {
		t.Fatal(err)
	}
	// 7 folders plus the root sentinel
	if repo.listCalls != 8 {
		t.Errorf("ListChildren called %d times, want 8", repo.listCalls)
	}
}

func TestBuildTree_MaxDepth(t *testing.T) {
	repo := newMemFolderRepo()
	seedTree(repo)
	svc := NewTreeService(repo, 2, testLogger())

	_, err := svc.BuildTree(context.Background())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for 3-level tree with max depth 2, got %v", err)
	}
}

func TestBuildSubtree_CycleStopsAtMaxDepth(t *testing.T) {
	repo := newMemFolderRepo()
	// Two rows pointing at each other, written behind the service's back.
	// Neither is reachable from the root, but a subtree walk can start inside the loop.
	b := repo.add(models.Folder{ShortName: "b", Level: 2})
	c := repo.add(models.Folder{ParentID: b, ShortName: "c", Level: 3})
	repo.rows[b] = models.Folder{ID: b, ParentID: c, ShortName: "b", Level: 2}

	svc := NewTreeService(repo, 16, testLogger())

	_, err := svc.BuildSubtree(context.Background(), b)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for cyclic parent chain, got %v", err)
	}

	nodes, err := svc.BuildTree(context.Background())
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("unreachable cycle should not appear in the tree, got %v", names(nodes))
	}
}

func TestBuildTree_Cancelled(t *testing.T) {
	repo := newMemFolderRepo()
	seedTree(repo)
	svc := NewTreeService(repo, 64, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.BuildTree(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestBuildSubtree(t *testing.T) {
	repo := newMemFolderRepo()
	ids := seedTree(repo)
	svc := NewTreeService(repo, 64, testLogger())

	nodes, err := svc.BuildSubtree(context.Background(), ids["a"])
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a1", "a1x", "a2"}
	got := names(nodes)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if _, err := svc.BuildSubtree(context.Background(), 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing root, got %v", err)
	}
}
