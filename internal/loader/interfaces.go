package loader

import (
	"context"
	"image"

	"golang.org/x/oauth2"

	"github.com/ytget/gallery-viewer/internal/model"
	"github.com/ytget/gallery-viewer/internal/slideshow"
)

// Source is a remote image store that needs interactive authorization.
type Source interface {
	Authorize(ctx context.Context) (*oauth2.Token, error)
	List(ctx context.Context, token *oauth2.Token) ([]model.RemoteImage, error)
	Fetch(ctx context.Context, token *oauth2.Token, path string) ([]byte, error)
}

// DecodeFunc turns downloaded bytes into a display-ready image.
type DecodeFunc func(data []byte) (image.Image, error)

// Loader defines the interface for the load service.
type Loader interface {
	SetUpdateCallback(func(*model.LoadTask))
	SetCompleteCallback(func([]slideshow.Slide))
	Start(ctx context.Context) *model.LoadTask
	Task() *model.LoadTask
	Batch() *model.Batch
	Err() error
	Done() <-chan struct{}
}

var _ Loader = (*Service)(nil)
