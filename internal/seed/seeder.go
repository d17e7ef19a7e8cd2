package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
	cmsSvc "cms/internal/domain/services/cms"
)

// Result counts what Apply created
type Result struct {
	Admins   int
	Folders  int
	Files    int
	Comments int
}

// Seeder writes a Fixture into an empty store
type Seeder struct {
	admins   cmsRepo.AdminRepository
	folders  cmsSvc.FolderService
	files    cmsSvc.FileService
	comments cmsSvc.CommentService
	logger   *slog.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(
	admins cmsRepo.AdminRepository,
	folders cmsSvc.FolderService,
	files cmsSvc.FileService,
	comments cmsSvc.CommentService,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		admins:   admins,
		folders:  folders,
		files:    files,
		comments: comments,
		logger:   logger,
	}
}

// folderJob is a fixture folder waiting to be created under parentID
type folderJob struct {
	parentID int64
	folder   FolderFixture
}

// Apply creates admins, then folders parent-first, then each folder's files and comments
func (s *Seeder) Apply(ctx context.Context, fx *Fixture) (*Result, error) {
	result := &Result{}

	adminIDs := make(map[string]int64, len(fx.Admins))
	var defaultAdmin int64
	for _, a := range fx.Admins {
		admin := &models.Admin{Name: a.Name, Email: a.Email, CreatedAt: time.Now()}
		if err := s.admins.Create(ctx, admin); err != nil {
			return result, fmt.Errorf("seed admin %s: %w", a.Email, err)
		}
		if defaultAdmin == 0 {
			defaultAdmin = admin.ID
		}
		adminIDs[a.Email] = admin.ID
		result.Admins++
	}

	// Queue order keeps siblings in fixture order, so their ids follow it too
	queue := make([]folderJob, 0, len(fx.Folders))
	for _, f := range fx.Folders {
		queue = append(queue, folderJob{parentID: models.RootFolderID, folder: f})
	}

	for len(queue) > 0 {
		job := queue[0]
		queue = queue[1:]

		folder, err := s.folders.CreateFolder(ctx, &cmsSvc.CreateFolderRequest{
			ParentID:  job.parentID,
			Name:      job.folder.Name,
			ShortName: job.folder.ShortName,
			Type:      job.folder.Type,
			Rank:      job.folder.Rank,
		})
		if err != nil {
			return result, fmt.Errorf("seed folder %s: %w", job.folder.ShortName, err)
		}
		result.Folders++
		s.logger.Debug("seeded folder", "short_name", folder.ShortName, "id", folder.ID, "level", folder.Level)

		for _, f := range job.folder.Files {
			adminID := defaultAdmin
			if f.Admin != "" {
				id, ok := adminIDs[f.Admin]
				if !ok {
					return result, fmt.Errorf("seed file %q: unknown admin %s", f.Name, f.Admin)
				}
				adminID = id
			}

			if err := s.seedFile(ctx, folder.ID, adminID, f, result); err != nil {
				return result, err
			}
		}

		for _, child := range job.folder.Children {
			queue = append(queue, folderJob{parentID: folder.ID, folder: child})
		}
	}

	return result, nil
}

func (s *Seeder) seedFile(ctx context.Context, folderID, adminID int64, f FileFixture, result *Result) error {
	file, err := s.files.CreateFile(ctx, &cmsSvc.FileRequest{
		FolderID: folderID,
		AdminID:  adminID,
		Picture:  f.Picture,
		Name:     f.Name,
		Content:  f.Content,
		Type:     f.Type,
	})
	if err != nil {
		return fmt.Errorf("seed file %q: %w", f.Name, err)
	}
	result.Files++

	for _, c := range f.Comments {
		_, err := s.comments.AddComment(ctx, &cmsSvc.CommentRequest{
			FileID:  file.ID,
			Author:  c.Author,
			Content: c.Content,
		})
		if err != nil {
			return fmt.Errorf("seed comment on %q: %w", f.Name, err)
		}
		result.Comments++
	}

	return nil
}
