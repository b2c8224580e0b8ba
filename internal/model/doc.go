package model

// Package model defines domain data structures shared across the app: the
// background load task, the batch of listed remote images, and their status
// enums. Structures are plain data with explicit state transitions.
