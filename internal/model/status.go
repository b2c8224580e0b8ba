package model

// LoadStatus represents the status of the background image load
type LoadStatus string

const (
	// LoadStatusPending means the load has not started yet
	LoadStatusPending LoadStatus = "Pending"

	// LoadStatusAuthorizing means the user is being asked to authorize access
	LoadStatusAuthorizing LoadStatus = "Authorizing"

	// LoadStatusListing means remote files are being listed
	LoadStatusListing LoadStatus = "Listing"

	// LoadStatusDownloading means images are being fetched one by one
	LoadStatusDownloading LoadStatus = "Downloading"

	// LoadStatusCompleted means the load finished; some images may have been skipped
	LoadStatusCompleted LoadStatus = "Completed"

	// LoadStatusError means authorization or listing failed
	LoadStatusError LoadStatus = "Error"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsActive returns true while the load is doing work
func (ls LoadStatus) IsActive() bool {
	return ls == LoadStatusAuthorizing || ls == LoadStatusListing || ls == LoadStatusDownloading
}

// ImageStatus represents the status of a single remote image
type ImageStatus string

const (
	ImageStatusPending     ImageStatus = "pending"
	ImageStatusDownloading ImageStatus = "downloading"
	ImageStatusCompleted   ImageStatus = "completed"
	ImageStatusError       ImageStatus = "error"
	// Skipped is used when the bytes arrived but could not be decoded
	ImageStatusSkipped ImageStatus = "skipped"
)
