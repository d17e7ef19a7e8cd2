package cms

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"

	"cms/internal/config"
	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	"cms/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		BasePath:        "/cms",
		DefaultPageRows: config.DefaultPageRows,
		AdminPageRows:   config.DefaultAdminPageRows,
		ImagePageRows:   config.DefaultImagePageRows,
		FolderMaxDepth:  config.DefaultFolderMaxDepth,
	}
}

// memFolderRepo is an in-memory FolderRepository
type memFolderRepo struct {
	mu            sync.Mutex
	nextID        int64
	rows          map[int64]models.Folder
	listCalls     int
	failOnGetByID error
}

func newMemFolderRepo() *memFolderRepo {
	return &memFolderRepo{rows: map[int64]models.Folder{}}
}

// add inserts a row as-is (level included) and returns its id
func (r *memFolderRepo) add(f models.Folder) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	f.ID = r.nextID
	r.rows[f.ID] = f
	return f.ID
}

func (r *memFolderRepo) Create(ctx context.Context, folder *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.ShortName == folder.ShortName {
			return &domain.ConflictError{Message: "short name taken", ResourceType: "folder"}
		}
	}
	r.nextID++
	folder.ID = r.nextID
	r.rows[folder.ID] = *folder
	return nil
}

func (r *memFolderRepo) GetByID(ctx context.Context, id int64) (*models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOnGetByID != nil {
		return nil, r.failOnGetByID
	}
	f, ok := r.rows[id]
	if !ok {
		return nil, domain.NewNotFound("folder", id)
	}
	return &f, nil
}

func (r *memFolderRepo) GetByShortName(ctx context.Context, shortName string) (*models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.rows {
		if f.ShortName == shortName {
			return &f, nil
		}
	}
	return nil, domain.NewNotFound("folder", shortName)
}

func (r *memFolderRepo) Update(ctx context.Context, folder *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.rows[folder.ID]
	if !ok {
		return domain.NewNotFound("folder", folder.ID)
	}
	folder.Count = existing.Count
	r.rows[folder.ID] = *folder
	return nil
}

func (r *memFolderRepo) UpdateLevel(ctx context.Context, id int64, level int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return domain.NewNotFound("folder", id)
	}
	f.Level = level
	r.rows[id] = f
	return nil
}

func (r *memFolderRepo) UpdateCount(ctx context.Context, id int64, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return domain.NewNotFound("folder", id)
	}
	f.Count = count
	r.rows[id] = f
	return nil
}

func (r *memFolderRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.NewNotFound("folder", id)
	}
	delete(r.rows, id)
	return nil
}

func (r *memFolderRepo) ListChildren(ctx context.Context, parentID int64) ([]models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	children := []models.Folder{}
	for _, f := range r.rows {
		if f.ParentID == parentID {
			children = append(children, f)
		}
	}
	slices.SortFunc(children, func(a, b models.Folder) int { return int(a.ID - b.ID) })
	return children, nil
}

func (r *memFolderRepo) ListAll(ctx context.Context) ([]models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := []models.Folder{}
	for _, f := range r.rows {
		all = append(all, f)
	}
	slices.SortFunc(all, func(a, b models.Folder) int { return int(a.ID - b.ID) })
	return all, nil
}

func (r *memFolderRepo) ListPage(ctx context.Context, offset, limit int) ([]models.Folder, error) {
	all, _ := r.ListAll(ctx)
	return window(all, offset, limit), nil
}

func (r *memFolderRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows), nil
}

// memFileRepo is an in-memory FileRepository
type memFileRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.File
}

func newMemFileRepo() *memFileRepo {
	return &memFileRepo{rows: map[int64]models.File{}}
}

func (r *memFileRepo) add(f models.File) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	f.ID = r.nextID
	r.rows[f.ID] = f
	return f.ID
}

func (r *memFileRepo) get(id int64) models.File {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id]
}

func (r *memFileRepo) Create(ctx context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	file.ID = r.nextID
	r.rows[file.ID] = *file
	return nil
}

func (r *memFileRepo) GetByID(ctx context.Context, id int64) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return nil, domain.NewNotFound("file", id)
	}
	return &f, nil
}

func (r *memFileRepo) Update(ctx context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[file.ID]; !ok {
		return domain.NewNotFound("file", file.ID)
	}
	r.rows[file.ID] = *file
	return nil
}

func (r *memFileRepo) mutate(id int64, fn func(*models.File)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return domain.NewNotFound("file", id)
	}
	fn(&f)
	r.rows[id] = f
	return nil
}

func (r *memFileRepo) UpdateStatus(ctx context.Context, id int64, status models.FileStatus) error {
	return r.mutate(id, func(f *models.File) { f.Status = status })
}

func (r *memFileRepo) matching(filter models.FileFilter) []models.File {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.File{}
	for _, f := range r.rows {
		if f.Status != filter.Status {
			continue
		}
		if filter.FolderID != nil && f.FolderID != *filter.FolderID {
			continue
		}
		if filter.AdminID != nil && f.AdminID != *filter.AdminID {
			continue
		}
		if filter.Type != nil && f.Type != *filter.Type {
			continue
		}
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b models.File) int { return int(b.ID - a.ID) })
	return out
}

func (r *memFileRepo) List(ctx context.Context, filter models.FileFilter, offset, limit int) ([]models.File, error) {
	return window(r.matching(filter), offset, limit), nil
}

func (r *memFileRepo) Count(ctx context.Context, filter models.FileFilter) (int, error) {
	return len(r.matching(filter)), nil
}

func (r *memFileRepo) ListByPicture(ctx context.Context, fileType models.FileType, picture models.PictureKind) ([]models.File, error) {
	out := []models.File{}
	for _, f := range r.matching(models.FileFilter{Type: &fileType, Status: models.FileStatusDisplay}) {
		if f.Picture == picture {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memFileRepo) UpdateViewCount(ctx context.Context, id int64, viewCount int) error {
	return r.mutate(id, func(f *models.File) { f.ViewCount = viewCount })
}

func (r *memFileRepo) IncrementViewCount(ctx context.Context, id int64) (int, error) {
	var n int
	err := r.mutate(id, func(f *models.File) {
		f.ViewCount++
		n = f.ViewCount
	})
	return n, err
}

func (r *memFileRepo) UpdateCommentCount(ctx context.Context, id int64, commentCount int) error {
	return r.mutate(id, func(f *models.File) { f.CommentCount = commentCount })
}

func (r *memFileRepo) MoveToFolder(ctx context.Context, id, folderID, adminID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok || f.AdminID != adminID {
		return 0, nil
	}
	f.FolderID = folderID
	r.rows[id] = f
	return 1, nil
}

// memAdminRepo is an in-memory AdminRepository
type memAdminRepo struct {
	rows    map[int64]models.Admin
	lookups int
	err     error
}

func newMemAdminRepo(admins ...models.Admin) *memAdminRepo {
	r := &memAdminRepo{rows: map[int64]models.Admin{}}
	for _, a := range admins {
		r.rows[a.ID] = a
	}
	return r
}

func (r *memAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = int64(len(r.rows) + 1)
	r.rows[admin.ID] = *admin
	return nil
}

func (r *memAdminRepo) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	r.lookups++
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.rows[id]
	if !ok {
		return nil, domain.NewNotFound("admin", id)
	}
	return &a, nil
}

// memCommentRepo is an in-memory CommentRepository
type memCommentRepo struct {
	rows map[int64]models.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{rows: map[int64]models.Comment{}}
}

func (r *memCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	comment.ID = int64(len(r.rows) + 1)
	r.rows[comment.ID] = *comment
	return nil
}

func (r *memCommentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.NewNotFound("comment", id)
	}
	return &c, nil
}

func (r *memCommentRepo) UpdateStatus(ctx context.Context, id int64, status models.CommentStatus) error {
	c, ok := r.rows[id]
	if !ok {
		return domain.NewNotFound("comment", id)
	}
	c.Status = status
	r.rows[id] = c
	return nil
}

func (r *memCommentRepo) CountByParent(ctx context.Context, fileID int64, status models.CommentStatus) (int, error) {
	n := 0
	for _, c := range r.rows {
		if c.FileID == fileID && c.Status == status {
			n++
		}
	}
	return n, nil
}

// passthroughTx runs fn directly and records how many transactions were opened
type passthroughTx struct {
	calls int
}

func (tx *passthroughTx) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	tx.calls++
	return fn(ctx)
}

var errStore = errors.New("store unavailable")

func window[T any](all []T, offset, limit int) []T {
	if offset >= len(all) {
		return []T{}
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
