package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smart-life-guard/internal/event"
	"smart-life-guard/internal/fixture"
	"smart-life-guard/internal/model"
	"smart-life-guard/internal/store"
)

func newFileService(t *testing.T) (*FileService, *event.InMemoryBus) {
	t.Helper()

	files := store.New(func(f model.FileItem) string { return f.ID }, fixture.Files())
	bus := event.NewBus()
	return NewFileService(files, bus, instantSched{}, time.Millisecond), bus
}

func TestFileServiceList(t *testing.T) {
	t.Parallel()

	t.Run("kind filter splits folders from files", func(t *testing.T) {
		s, _ := newFileService(t)
		folders := s.List(FileFilter{Kind: "folder"})
		require.Len(t, folders, 2)
		files := s.List(FileFilter{Kind: "file"})
		require.Len(t, files, 3)
	})

	t.Run("type filter on file subtype", func(t *testing.T) {
		s, _ := newFileService(t)
		got := s.List(FileFilter{Type: "document"})
		require.Len(t, got, 2)
	})

	t.Run("text search on name", func(t *testing.T) {
		s, _ := newFileService(t)
		got := s.List(FileFilter{Search: "手册"})
		require.Len(t, got, 1)
		require.Equal(t, "用户手册.pdf", got[0].Name)
	})
}

func TestFileServiceToggleFavorite(t *testing.T) {
	t.Parallel()

	s, _ := newFileService(t)

	file, err := s.ToggleFavorite("2")
	require.NoError(t, err)
	require.True(t, file.Favorite)

	file, err = s.ToggleFavorite("2")
	require.NoError(t, err)
	require.False(t, file.Favorite)

	_, err = s.ToggleFavorite("404")
	require.ErrorIs(t, err, model.ErrFileNotFound)
}

func TestFileServiceTypeCounts(t *testing.T) {
	t.Parallel()

	s, _ := newFileService(t)
	counts := s.TypeCounts()

	require.Equal(t, 2, counts[model.FileDocument])
	require.Equal(t, 1, counts[model.FileVideo])

	// folders are not counted
	total := 0
	for _, n := range counts {
		total += n
	}
	require.Equal(t, 3, total)
}

func TestFileServiceCreateFolder(t *testing.T) {
	t.Parallel()

	s, _ := newFileService(t)

	folder, err := s.CreateFolder("巡检报告", "张三")
	require.NoError(t, err)
	require.Equal(t, model.KindFolder, folder.Kind)
	require.NotEmpty(t, folder.ID)

	_, err = s.CreateFolder("   ", "张三")
	require.Error(t, err)
}

func TestFileServiceUpload(t *testing.T) {
	t.Parallel()

	t.Run("upload reports progress and lands in the store", func(t *testing.T) {
		s, bus := newFileService(t)
		events, unsubscribe := bus.Subscribe()
		defer unsubscribe()

		uploadID, err := s.StartUpload("固件更新包.zip", "12.4 MB", "张明")
		require.NoError(t, err)
		require.NotEmpty(t, uploadID)

		var progress []int
		deadline := time.After(time.Second)
		for {
			var done bool
			select {
			case e := <-events:
				switch e.Type {
				case event.TypeUploadProgress:
					progress = append(progress, e.Payload.(UploadProgress).Percent)
				case event.TypeUploadCompleted:
					done = true
				}
			case <-deadline:
				t.Fatal("upload did not complete")
			}
			if done {
				break
			}
		}

		require.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, progress)

		got := s.List(FileFilter{Search: "固件更新包"})
		require.Len(t, got, 1)
		require.Equal(t, model.FileArchive, got[0].FileType)
		require.Equal(t, "12.4 MB", got[0].Size)
	})

	t.Run("cancelled upload leaves no file behind", func(t *testing.T) {
		files := store.New(func(f model.FileItem) string { return f.ID }, fixture.Files())
		bus := event.NewBus()
		// long real tick so the upload is still pending when cancelled
		s := NewFileService(files, bus, blockedUploadSched{}, time.Minute)

		uploadID, err := s.StartUpload("监控视频_002.mp4", "80 MB", "王五")
		require.NoError(t, err)
		require.NoError(t, s.CancelUpload(uploadID))

		require.Empty(t, s.List(FileFilter{Search: "监控视频_002"}))
		require.ErrorIs(t, s.CancelUpload(uploadID), model.ErrFileNotFound)
	})

	t.Run("upload requires a name", func(t *testing.T) {
		s, _ := newFileService(t)
		_, err := s.StartUpload("", "1 MB", "张明")
		require.Error(t, err)
	})
}

// blockedUploadSched waits for cancellation only; it never completes a tick.
type blockedUploadSched struct{}

func (blockedUploadSched) Sleep(ctx context.Context, _ time.Duration) error {
	<-ctx.Done()
	return ctx.Err()
}
