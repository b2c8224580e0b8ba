package dropbox

import "strings"

// DefaultExtensions are the accepted image suffixes
var DefaultExtensions = []string{".jpg", ".jpeg", ".png"}

// HasImageExtension reports whether name ends with one of exts. Matching is
// case-sensitive: "photo.JPG" does not match ".jpg".
func HasImageExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ParseExtensions splits a comma separated list such as ".jpg, .png" and adds
// a leading dot where it is missing. Case is preserved.
func ParseExtensions(list string) []string {
	var exts []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(list, ",") {
		ext := strings.TrimSpace(part)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		exts = append(exts, ext)
	}
	return exts
}
