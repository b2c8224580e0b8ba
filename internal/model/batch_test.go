package model

import "testing"

func testImages() []RemoteImage {
	return []RemoteImage{
		{Path: "/a.jpg", Name: "a.jpg", Size: 10},
		{Path: "/b.png", Name: "b.png", Size: 20},
		{Path: "/c/d.jpeg", Name: "d.jpeg", Size: 30},
	}
}

func TestNewBatch(t *testing.T) {
	input := testImages()
	input[0].Status = ImageStatusCompleted

	b := NewBatch(input)

	if b.Len() != 3 {
		t.Fatalf("Expected 3 images, got %d", b.Len())
	}
	for i, img := range b.Images {
		if img.Status != ImageStatusPending {
			t.Errorf("Image %d: expected pending, got %s", i, img.Status)
		}
		if img.Path != input[i].Path {
			t.Errorf("Image %d: expected path %s, got %s", i, input[i].Path, img.Path)
		}
	}
	if input[0].Status != ImageStatusCompleted {
		t.Error("NewBatch must not modify the input slice")
	}
}

func TestBatch_Failures(t *testing.T) {
	b := NewBatch(testImages())
	if len(b.Failures()) != 0 {
		t.Errorf("Expected no failures, got %d", len(b.Failures()))
	}

	b.UpdateStatus("/a.jpg", ImageStatusCompleted, "")
	b.UpdateStatus("/b.png", ImageStatusError, "boom")
	b.UpdateStatus("/c/d.jpeg", ImageStatusSkipped, "bad data")

	failures := b.Failures()
	if len(failures) != 2 {
		t.Fatalf("Expected 2 failures, got %d", len(failures))
	}
	if failures[0].Name != "b.png" || failures[1].Name != "d.jpeg" {
		t.Errorf("Expected failures in listing order, got %s, %s", failures[0].Name, failures[1].Name)
	}
	if failures[0].Error != "boom" {
		t.Errorf("Expected error text to be kept, got %q", failures[0].Error)
	}
}

func TestBatch_Current(t *testing.T) {
	b := NewBatch(testImages())
	if b.Current() != nil {
		t.Error("Expected no current image before downloads start")
	}

	b.UpdateStatus("/a.jpg", ImageStatusCompleted, "")
	b.UpdateStatus("/b.png", ImageStatusDownloading, "")

	current := b.Current()
	if current == nil || current.Name != "b.png" {
		t.Errorf("Expected b.png to be current, got %v", current)
	}
}

func TestBatch_UpdateUnknownPath(t *testing.T) {
	b := NewBatch(testImages())
	b.UpdateStatus("/missing.jpg", ImageStatusCompleted, "")

	if got := len(b.WithStatus(ImageStatusPending)); got != 3 {
		t.Errorf("Expected 3 pending images, got %d", got)
	}
}

func TestEmptyBatch(t *testing.T) {
	b := NewBatch(nil)
	if b.Current() != nil || len(b.Failures()) != 0 || b.Len() != 0 {
		t.Error("Empty batch should have no current image and no failures")
	}
}

func TestBatch_Clone(t *testing.T) {
	b := NewBatch(testImages())
	c := b.Clone()
	c.UpdateStatus("/a.jpg", ImageStatusCompleted, "")

	if b.Images[0].Status != ImageStatusPending {
		t.Errorf("Clone shares images with original: status %s", b.Images[0].Status)
	}
	if c.Len() != b.Len() {
		t.Errorf("Expected clone length %d, got %d", b.Len(), c.Len())
	}
}
