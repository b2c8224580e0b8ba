package dropbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasImageExtension(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"holiday.jpg", true},
		{"holiday.jpeg", true},
		{"scan.png", true},
		{"HOLIDAY.JPG", false},
		{"photo.Png", false},
		{"notes.txt", false},
		{"jpg", false},
		{"archive.jpg.zip", false},
		{"", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, HasImageExtension(test.name, DefaultExtensions), test.name)
	}
}

func TestHasImageExtension_IgnoresEmptySuffix(t *testing.T) {
	assert.False(t, HasImageExtension("anything", []string{""}))
	assert.False(t, HasImageExtension("anything.jpg", nil))
}

func TestParseExtensions(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{".jpg,.jpeg,.png", []string{".jpg", ".jpeg", ".png"}},
		{" jpg , .PNG,, webp ", []string{".jpg", ".PNG", ".webp"}},
		{".jpg,.jpg,jpg", []string{".jpg"}},
		{"", nil},
		{" , ", nil},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ParseExtensions(test.input), test.input)
	}
}
