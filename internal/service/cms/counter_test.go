package cms

import (
	"context"
	"errors"
	"sync"
	"testing"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
)

func newCounterFixture() (*memFileRepo, *memFolderRepo, *memCommentRepo, *counterService) {
	files := newMemFileRepo()
	folders := newMemFolderRepo()
	comments := newMemCommentRepo()
	svc := NewCounterService(files, folders, comments, testLogger()).(*counterService)
	return files, folders, comments, svc
}

func TestRecordView_BlindWrite(t *testing.T) {
	files, _, _, svc := newCounterFixture()
	id := files.add(models.File{ViewCount: 5, Status: models.FileStatusDisplay})

	if err := svc.RecordView(context.Background(), id, 5); err != nil {
		t.Fatal(err)
	}
	if got := files.get(id).ViewCount; got != 6 {
		t.Errorf("view count = %d, want 6", got)
	}
}

// Two viewers both read 5 and both write 6: one view is lost.
// This is the documented behavior of RecordView, not a test failure.
func TestRecordView_ConcurrentStaleReadsLoseAnUpdate(t *testing.T) {
	files, _, _, svc := newCounterFixture()
	id := files.add(models.File{ViewCount: 5, Status: models.FileStatusDisplay})

	known := files.get(id).ViewCount

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := svc.RecordView(context.Background(), id, known); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if got := files.get(id).ViewCount; got != 6 {
		t.Errorf("view count = %d, want 6 (one of two increments lost)", got)
	}
}

func TestIncrementView_ConcurrentCallsAllCount(t *testing.T) {
	files, _, _, svc := newCounterFixture()
	id := files.add(models.File{ViewCount: 5, Status: models.FileStatusDisplay})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.IncrementView(context.Background(), id); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if got := files.get(id).ViewCount; got != 25 {
		t.Errorf("view count = %d, want 25", got)
	}

	if _, err := svc.IncrementView(context.Background(), 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRecomputeCommentCount_Idempotent(t *testing.T) {
	files, _, comments, svc := newCounterFixture()
	id := files.add(models.File{CommentCount: 99, Status: models.FileStatusDisplay})
	for _, status := range []models.CommentStatus{models.CommentStatusDisplay, models.CommentStatusDisplay, models.CommentStatusHidden} {
		comments.Create(context.Background(), &models.Comment{FileID: id, Status: status})
	}

	first, err := svc.RecomputeCommentCount(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.RecomputeCommentCount(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}

	if first != 2 || second != 2 {
		t.Errorf("recount returned %d then %d, want 2 both times", first, second)
	}
	if got := files.get(id).CommentCount; got != 2 {
		t.Errorf("cached comment count = %d, want 2", got)
	}
}

func TestRecomputeFolderCount(t *testing.T) {
	files, folders, _, svc := newCounterFixture()
	folderID := folders.add(models.Folder{ShortName: "news", Level: 1, Count: 40})
	files.add(models.File{FolderID: folderID, Status: models.FileStatusDisplay})
	files.add(models.File{FolderID: folderID, Status: models.FileStatusDisplay})
	files.add(models.File{FolderID: folderID, Status: models.FileStatusHidden})

	n, err := svc.RecomputeFolderCount(context.Background(), folderID)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
	f, _ := folders.GetByID(context.Background(), folderID)
	if f.Count != 2 {
		t.Errorf("stored count = %d, want 2", f.Count)
	}

	if _, err := svc.RecomputeFolderCount(context.Background(), 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
