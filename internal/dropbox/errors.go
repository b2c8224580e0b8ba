package dropbox

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAuthCode is returned when the user submits an empty authorization code
	ErrNoAuthCode = errors.New("no authorization code provided")

	// ErrPromptCancelled is returned when the user dismisses the code prompt
	ErrPromptCancelled = errors.New("authorization prompt cancelled")
)

// FetchError reports a failed download of a single file
type FetchError struct {
	Path string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Path, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
