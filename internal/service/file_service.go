package service

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"smart-life-guard/internal/aggregate"
	"smart-life-guard/internal/diag"
	"smart-life-guard/internal/event"
	"smart-life-guard/internal/model"
	"smart-life-guard/internal/query"
	"smart-life-guard/internal/store"
	"smart-life-guard/pkg/apierror"
)

type FileFilter struct {
	Search string
	Kind   string
	Type   string
}

// UploadProgress is the payload of upload.* events.
type UploadProgress struct {
	UploadID string `json:"upload_id"`
	Name     string `json:"name"`
	Percent  int    `json:"percent"`
}

type FileService struct {
	files *store.Store[model.FileItem]
	bus   *event.InMemoryBus
	sched diag.Scheduler
	tick  time.Duration

	mu      sync.Mutex
	uploads map[string]context.CancelFunc
}

func NewFileService(files *store.Store[model.FileItem], bus *event.InMemoryBus, sched diag.Scheduler, tick time.Duration) *FileService {
	return &FileService{
		files:   files,
		bus:     bus,
		sched:   sched,
		tick:    tick,
		uploads: make(map[string]context.CancelFunc),
	}
}

func (s *FileService) List(filter FileFilter) []model.FileItem {
	return query.Project(s.files.List(),
		query.Text(filter.Search, func(f model.FileItem) []string {
			return []string{f.Name}
		}),
		query.Equal(filter.Kind, func(f model.FileItem) string { return string(f.Kind) }),
		query.Equal(filter.Type, func(f model.FileItem) string { return string(f.FileType) }),
	)
}

func (s *FileService) Get(id string) (model.FileItem, error) {
	file, ok := s.files.Get(id)
	if !ok {
		return model.FileItem{}, model.ErrFileNotFound
	}
	return file, nil
}

// ToggleFavorite flips the favorite flag via copy-on-write update.
func (s *FileService) ToggleFavorite(id string) (model.FileItem, error) {
	updated, ok := s.files.Update(id, func(f model.FileItem) model.FileItem {
		f.Favorite = !f.Favorite
		return f
	})
	if !ok {
		return model.FileItem{}, model.ErrFileNotFound
	}
	s.bus.Emit(event.TypeFileFavorited, updated)
	return updated, nil
}

// TypeCounts groups regular files by subtype for the summary strip.
func (s *FileService) TypeCounts() map[model.FileType]int {
	var files []model.FileItem
	for _, item := range s.files.List() {
		if item.Kind == model.KindFile {
			files = append(files, item)
		}
	}
	return aggregate.CountBy(files, func(f model.FileItem) model.FileType { return f.FileType })
}

// CreateFolder adds a folder entry.
func (s *FileService) CreateFolder(name string, owner string) (model.FileItem, error) {
	if strings.TrimSpace(name) == "" {
		return model.FileItem{}, apierror.New("BAD_REQUEST", "required fields are missing", "name", http.StatusBadRequest)
	}

	folder := model.FileItem{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Kind:         model.KindFolder,
		ModifiedDate: time.Now().Format("2006-01-02"),
		Owner:        owner,
		Permissions:  "编辑",
	}
	s.files.Add(folder)
	return folder, nil
}

// StartUpload simulates an upload: progress advances in 10% steps on the
// configured tick, reported on the event bus, and the file appears in the
// store once the loop reaches 100%. Returns the upload token.
func (s *FileService) StartUpload(name string, sizeLabel string, owner string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", apierror.New("BAD_REQUEST", "required fields are missing", "name", http.StatusBadRequest)
	}

	uploadID := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.uploads[uploadID] = cancel
	s.mu.Unlock()

	go s.runUpload(ctx, uploadID, strings.TrimSpace(name), sizeLabel, owner)
	return uploadID, nil
}

// CancelUpload stops a simulated upload; no state is written after cancel.
func (s *FileService) CancelUpload(uploadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancel, exists := s.uploads[uploadID]
	if !exists {
		return model.ErrFileNotFound
	}
	cancel()
	delete(s.uploads, uploadID)
	return nil
}

func (s *FileService) runUpload(ctx context.Context, uploadID string, name string, sizeLabel string, owner string) {
	defer func() {
		s.mu.Lock()
		delete(s.uploads, uploadID)
		s.mu.Unlock()
	}()

	for percent := 10; percent <= 100; percent += 10 {
		if err := s.sched.Sleep(ctx, s.tick); err != nil {
			return
		}
		s.bus.Emit(event.TypeUploadProgress, UploadProgress{UploadID: uploadID, Name: name, Percent: percent})
	}

	item := model.FileItem{
		ID:           uuid.NewString(),
		Name:         name,
		Kind:         model.KindFile,
		FileType:     fileTypeFromName(name),
		Size:         sizeLabel,
		ModifiedDate: time.Now().Format("2006-01-02"),
		Owner:        owner,
		Permissions:  "编辑",
	}
	s.files.Add(item)
	s.bus.Emit(event.TypeUploadCompleted, item)
}

func fileTypeFromName(name string) model.FileType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".pdf", ".doc", ".docx", ".xls", ".xlsx", ".md":
		return model.FileDocument
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return model.FileImage
	case ".mp4", ".avi", ".mov", ".mkv":
		return model.FileVideo
	case ".mp3", ".wav", ".flac":
		return model.FileAudio
	case ".zip", ".rar", ".7z", ".tar", ".gz":
		return model.FileArchive
	default:
		return model.FileOther
	}
}
