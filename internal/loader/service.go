package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/ytget/gallery-viewer/internal/logger"
	"github.com/ytget/gallery-viewer/internal/model"
	"github.com/ytget/gallery-viewer/internal/slideshow"
)

var (
	// ErrAuthorization marks a failed authorization step
	ErrAuthorization = errors.New("authorization failed")

	// ErrListing marks a failed listing step
	ErrListing = errors.New("listing failed")
)

// Service handles the background load
type Service struct {
	source Source
	decode DecodeFunc

	mu         sync.RWMutex
	task       *model.LoadTask
	batch      *model.Batch
	started    bool
	err        error
	done       chan struct{}
	onUpdate   func(*model.LoadTask)   // callback for UI updates
	onComplete func([]slideshow.Slide) // callback with the decoded slides
}

// NewService creates a new load service
func NewService(source Source, decode DecodeFunc) *Service {
	return &Service{
		source: source,
		decode: decode,
		task: &model.LoadTask{
			ID:     generateTaskID(),
			Status: model.LoadStatusPending,
		},
		batch: model.NewBatch(nil),
		done:  make(chan struct{}),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.LoadTask)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetCompleteCallback sets the callback that receives the loaded slides
func (s *Service) SetCompleteCallback(callback func([]slideshow.Slide)) {
	s.mu.Lock()
	s.onComplete = callback
	s.mu.Unlock()
}

// Start launches the load in the background. Only the first call starts a
// run; later calls return the current task.
func (s *Service) Start(ctx context.Context) *model.LoadTask {
	s.mu.Lock()
	if s.started {
		task := s.task.Clone()
		s.mu.Unlock()
		return task
	}
	s.started = true
	s.task.StartedAt = time.Now()
	task := s.task.Clone()
	s.mu.Unlock()

	go s.run(ctx)
	return task
}

// Task returns a snapshot of the load task
func (s *Service) Task() *model.LoadTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.task.Clone()
}

// Batch returns a snapshot of the listed images
func (s *Service) Batch() *model.Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batch.Clone()
}

// Err returns the error that ended the load, or nil
func (s *Service) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Done is closed when the load has finished, successfully or not
func (s *Service) Done() <-chan struct{} {
	return s.done
}

// run executes the load sequence
func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	log := logger.With("task", s.task.ID)

	s.setStatus(model.LoadStatusAuthorizing)
	token, err := s.source.Authorize(ctx)
	if err != nil {
		s.fail(fmt.Errorf("%w: %w", ErrAuthorization, err))
		return
	}

	s.setStatus(model.LoadStatusListing)
	images, err := s.source.List(ctx, token)
	if err != nil {
		s.fail(fmt.Errorf("%w: %w", ErrListing, err))
		return
	}
	log.Info("Images listed", "count", len(images))

	s.mu.Lock()
	s.batch = model.NewBatch(images)
	s.task.Total = s.batch.Len()
	s.task.Status = model.LoadStatusDownloading
	s.mu.Unlock()
	s.notifyUpdate()

	slides := s.fetchAll(ctx, token, images)

	s.mu.Lock()
	s.task.Status = model.LoadStatusCompleted
	s.task.FinishedAt = time.Now()
	fetched, failed, elapsed := s.task.Fetched, s.task.Failed, s.task.Duration()
	s.mu.Unlock()
	s.notifyUpdate()

	log.Info("Images loaded in memory", "loaded", fetched, "skipped", failed, "elapsed", elapsed)
	s.notifyComplete(slides)
}

// fetchAll downloads and decodes images one at a time, skipping failures
func (s *Service) fetchAll(ctx context.Context, token *oauth2.Token, images []model.RemoteImage) []slideshow.Slide {
	slides := make([]slideshow.Slide, 0, len(images))

	for _, img := range images {
		s.updateImage(img.Path, model.ImageStatusDownloading, "")

		data, err := s.source.Fetch(ctx, token, img.Path)
		if err != nil {
			logger.Warn("Download failed, skipping", "path", img.Path, "error", err)
			s.recordFailure(img.Path, model.ImageStatusError, err)
			continue
		}

		decoded, err := s.decode(data)
		if err != nil {
			logger.Warn("Decode failed, skipping", "path", img.Path, "error", err)
			s.recordFailure(img.Path, model.ImageStatusSkipped, err)
			continue
		}

		slides = append(slides, slideshow.Slide{Name: img.Name, Image: decoded})

		s.mu.Lock()
		s.batch.UpdateStatus(img.Path, model.ImageStatusCompleted, "")
		s.task.Fetched++
		s.mu.Unlock()
		s.notifyUpdate()
	}

	return slides
}

func (s *Service) updateImage(path string, status model.ImageStatus, errMsg string) {
	s.mu.Lock()
	s.batch.UpdateStatus(path, status, errMsg)
	s.mu.Unlock()
}

func (s *Service) recordFailure(path string, status model.ImageStatus, err error) {
	s.mu.Lock()
	s.batch.UpdateStatus(path, status, err.Error())
	s.task.Failed++
	s.mu.Unlock()
	s.notifyUpdate()
}

func (s *Service) setStatus(status model.LoadStatus) {
	s.mu.Lock()
	s.task.Status = status
	s.mu.Unlock()
	s.notifyUpdate()
}

// fail ends the load; no slides are delivered
func (s *Service) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.task.Status = model.LoadStatusError
	s.task.LastError = err.Error()
	s.task.FinishedAt = time.Now()
	id := s.task.ID
	s.mu.Unlock()

	logger.Error("Image load failed", "task", id, "error", err)
	s.notifyUpdate()
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate() {
	s.mu.RLock()
	callback := s.onUpdate
	task := s.task.Clone()
	s.mu.RUnlock()

	if callback != nil {
		callback(task)
	}
}

func (s *Service) notifyComplete(slides []slideshow.Slide) {
	s.mu.RLock()
	callback := s.onComplete
	s.mu.RUnlock()

	if callback != nil {
		callback(slides)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "load-" + uuid.NewString()
}
