package cms

import (
	"context"
	"errors"
	"testing"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsSvc "cms/internal/domain/services/cms"
	serviceAuth "cms/internal/service/auth"
)

type fileFixture struct {
	files   *memFileRepo
	folders *memFolderRepo
	admins  *memAdminRepo
	svc     cmsSvc.FileService
}

func newFileFixture() *fileFixture {
	f := &fileFixture{
		files:   newMemFileRepo(),
		folders: newMemFolderRepo(),
		admins:  newMemAdminRepo(models.Admin{ID: 1, Name: "root"}, models.Admin{ID: 2, Name: "editor"}),
	}
	counters := NewCounterService(f.files, f.folders, newMemCommentRepo(), testLogger())
	validator := NewResourceValidator(f.folders, f.files)
	authorizer := serviceAuth.NewOwnerBasedAuthorizer(f.files)
	f.svc = NewFileService(f.files, f.folders, f.admins, counters, validator, authorizer, testLogger())
	return f
}

func TestCreateFile(t *testing.T) {
	f := newFileFixture()
	ctx := context.Background()
	folderID := f.folders.add(models.Folder{ShortName: "news", Level: 1})

	file, err := f.svc.CreateFile(ctx, &cmsSvc.FileRequest{
		FolderID: folderID,
		AdminID:  1,
		Name:     " Hello ",
		Content:  "body",
		Type:     models.FileTypeArticle,
	})
	if err != nil {
		t.Fatal(err)
	}
	if file.Name != "Hello" || file.ViewCount != 0 || file.CommentCount != 0 {
		t.Errorf("unexpected file: %+v", file)
	}
	if file.Status != models.FileStatusDisplay || file.Picture != models.PictureNone {
		t.Errorf("defaults not applied: status=%q picture=%q", file.Status, file.Picture)
	}

	folder, _ := f.folders.GetByID(ctx, folderID)
	if folder.Count != 1 {
		t.Errorf("folder count = %d, want 1", folder.Count)
	}
}

func TestCreateFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     cmsSvc.FileRequest
		wantErr error
	}{
		{"missing folder", cmsSvc.FileRequest{FolderID: 5, Name: "x", Type: models.FileTypeArticle}, domain.ErrNotFound},
		{"missing name", cmsSvc.FileRequest{Type: models.FileTypeArticle}, domain.ErrValidation},
		{"missing type", cmsSvc.FileRequest{Name: "x"}, domain.ErrValidation},
		{"unknown type", cmsSvc.FileRequest{Name: "x", Type: "video"}, domain.ErrValidation},
		{"unknown picture", cmsSvc.FileRequest{Name: "x", Type: models.FileTypeImage, Picture: "poster"}, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFileFixture()
			req := tt.req
			if _, err := f.svc.CreateFile(context.Background(), &req); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteFile_SoftDelete(t *testing.T) {
	f := newFileFixture()
	ctx := context.Background()
	id := f.files.add(models.File{AdminID: 1, Name: "x", Type: models.FileTypeArticle, Status: models.FileStatusDisplay})

	if err := f.svc.DeleteFile(ctx, id); err != nil {
		t.Fatal(err)
	}

	view, err := f.svc.GetFile(ctx, id)
	if err != nil {
		t.Fatalf("soft-deleted file should still resolve, got %v", err)
	}
	if view.Status != models.FileStatusHidden {
		t.Errorf("status = %q, want hidden", view.Status)
	}
	if view.Admin == nil || view.Admin.ID != 1 {
		t.Errorf("expected owner attached, got %v", view.Admin)
	}

	if err := f.svc.RestoreFile(ctx, id); err != nil {
		t.Fatal(err)
	}
	if got := f.files.get(id).Status; got != models.FileStatusDisplay {
		t.Errorf("status after restore = %q, want display", got)
	}

	if err := f.svc.DeleteFile(ctx, 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := f.svc.SetFileStatus(ctx, id, "archived"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdateFile_ResetsCounters(t *testing.T) {
	f := newFileFixture()
	ctx := context.Background()
	id := f.files.add(models.File{AdminID: 1, Name: "x", Type: models.FileTypeArticle, Status: models.FileStatusDisplay, ViewCount: 40, CommentCount: 3})

	updated, err := f.svc.UpdateFile(ctx, id, &cmsSvc.FileRequest{
		AdminID: 1,
		Name:    "y",
		Content: "new body",
		Type:    models.FileTypeDocument,
	})
	if err != nil {
		t.Fatal(err)
	}

	stored := f.files.get(id)
	if stored.ViewCount != 0 || stored.CommentCount != 0 {
		t.Errorf("counters after edit: views=%d comments=%d, want 0/0", stored.ViewCount, stored.CommentCount)
	}
	if stored.Name != "y" || stored.AdminID != 1 || stored.Type != models.FileTypeDocument {
		t.Errorf("row not replaced: %+v", stored)
	}
	if updated.ID != id {
		t.Errorf("returned id %d, want %d", updated.ID, id)
	}

	if _, err := f.svc.UpdateFile(ctx, 999, &cmsSvc.FileRequest{AdminID: 1, Name: "y", Type: models.FileTypeArticle}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateFile_ForeignAdminForbidden(t *testing.T) {
	f := newFileFixture()
	ctx := context.Background()
	id := f.files.add(models.File{AdminID: 1, Name: "x", Type: models.FileTypeArticle, Status: models.FileStatusDisplay, ViewCount: 7})

	_, err := f.svc.UpdateFile(ctx, id, &cmsSvc.FileRequest{AdminID: 2, Name: "taken", Type: models.FileTypeArticle})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	stored := f.files.get(id)
	if stored.AdminID != 1 || stored.Name != "x" || stored.ViewCount != 7 {
		t.Errorf("row changed by a foreign edit: %+v", stored)
	}
}

func TestMoveImage(t *testing.T) {
	f := newFileFixture()
	ctx := context.Background()
	from := f.folders.add(models.Folder{ShortName: "from", Level: 1})
	to := f.folders.add(models.Folder{ShortName: "to", Level: 1})
	id := f.files.add(models.File{FolderID: from, AdminID: 1, Type: models.FileTypeImage, Status: models.FileStatusDisplay})

	if err := f.svc.MoveImage(ctx, to, id, 2); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign admin: expected ErrForbidden, got %v", err)
	}
	if err := f.svc.MoveImage(ctx, 999, id, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing folder: expected ErrNotFound, got %v", err)
	}

	if err := f.svc.MoveImage(ctx, to, id, 1); err != nil {
		t.Fatal(err)
	}
	if got := f.files.get(id).FolderID; got != to {
		t.Errorf("folder = %d, want %d", got, to)
	}

	toFolder, _ := f.folders.GetByID(ctx, to)
	fromFolder, _ := f.folders.GetByID(ctx, from)
	if toFolder.Count != 1 || fromFolder.Count != 0 {
		t.Errorf("folder counts: to=%d from=%d, want 1/0", toFolder.Count, fromFolder.Count)
	}
}

func TestListByPicture(t *testing.T) {
	f := newFileFixture()
	f.files.add(models.File{Type: models.FileTypeImage, Picture: models.PictureGallery, Status: models.FileStatusDisplay})
	f.files.add(models.File{Type: models.FileTypeImage, Picture: models.PictureCover, Status: models.FileStatusDisplay})
	f.files.add(models.File{Type: models.FileTypeImage, Picture: models.PictureGallery, Status: models.FileStatusHidden})

	items, err := f.svc.ListByPicture(context.Background(), models.FileTypeImage, models.PictureGallery)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Errorf("got %d items, want 1", len(items))
	}

	if _, err := f.svc.ListByPicture(context.Background(), models.FileTypeImage, "poster"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
