package model

import (
	"time"
)

// RemoteImage represents a single listed image file
type RemoteImage struct {
	Path      string      `json:"path"` // lower-cased remote path used for download
	Name      string      `json:"name"`
	Size      int64       `json:"size"`
	Status    ImageStatus `json:"status"`
	Error     string      `json:"error,omitempty"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Batch is the ordered result of one listing
type Batch struct {
	Images    []*RemoteImage `json:"images"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewBatch creates a batch with every image pending
func NewBatch(images []RemoteImage) *Batch {
	now := time.Now()
	b := &Batch{
		Images:    make([]*RemoteImage, 0, len(images)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range images {
		img := images[i]
		img.Status = ImageStatusPending
		img.UpdatedAt = now
		b.Images = append(b.Images, &img)
	}
	return b
}

// Len returns the number of images in the batch
func (b *Batch) Len() int {
	return len(b.Images)
}

// UpdateStatus updates the status of the image at path
func (b *Batch) UpdateStatus(path string, status ImageStatus, errMsg string) {
	for _, img := range b.Images {
		if img.Path == path {
			img.Status = status
			img.Error = errMsg
			img.UpdatedAt = time.Now()
			b.UpdatedAt = img.UpdatedAt
			break
		}
	}
}

// WithStatus returns all images with the given status, in listing order
func (b *Batch) WithStatus(status ImageStatus) []*RemoteImage {
	var out []*RemoteImage
	for _, img := range b.Images {
		if img.Status == status {
			out = append(out, img)
		}
	}
	return out
}

// Failures returns the images that errored or were skipped, in listing order
func (b *Batch) Failures() []*RemoteImage {
	var out []*RemoteImage
	for _, img := range b.Images {
		if img.Status == ImageStatusError || img.Status == ImageStatusSkipped {
			out = append(out, img)
		}
	}
	return out
}

// Current returns the image being downloaded, or nil
func (b *Batch) Current() *RemoteImage {
	if active := b.WithStatus(ImageStatusDownloading); len(active) > 0 {
		return active[0]
	}
	return nil
}

// Clone returns a deep copy safe to hand to another goroutine
func (b *Batch) Clone() *Batch {
	c := &Batch{
		Images:    make([]*RemoteImage, len(b.Images)),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	for i, img := range b.Images {
		cp := *img
		c.Images[i] = &cp
	}
	return c
}
