package slideshow

// Package slideshow holds the slideshow state machine: the ordered slide list,
// the current position and the swap timer. It knows nothing about Fyne or
// Dropbox; the Player posts ticks and load results through a dispatch function
// so the Controller is only ever mutated from one goroutine.
