package model

import (
	"fmt"
	"time"
)

// LoadTask tracks the one-shot background load
type LoadTask struct {
	ID         string
	Status     LoadStatus
	Total      int    // images listed
	Fetched    int    // images downloaded and decoded
	Failed     int    // images skipped because of fetch or decode errors
	LastError  string // fatal error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// Processed returns how many listed images have been handled so far
func (lt *LoadTask) Processed() int {
	return lt.Fetched + lt.Failed
}

// Progress returns the processed fraction in 0.0..1.0
func (lt *LoadTask) Progress() float64 {
	if lt.Total <= 0 {
		return 0
	}
	return float64(lt.Processed()) / float64(lt.Total)
}

// GetProgressString returns "processed/total", or "" before listing finishes
func (lt *LoadTask) GetProgressString() string {
	if lt.Total <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", lt.Processed(), lt.Total)
}

// Duration returns how long the load ran, or has been running
func (lt *LoadTask) Duration() time.Duration {
	if lt.StartedAt.IsZero() {
		return 0
	}
	if lt.FinishedAt.IsZero() {
		return time.Since(lt.StartedAt)
	}
	return lt.FinishedAt.Sub(lt.StartedAt)
}

// Clone returns a copy safe to hand to another goroutine
func (lt *LoadTask) Clone() *LoadTask {
	c := *lt
	return &c
}
