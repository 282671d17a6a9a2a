package content

import (
	"os"      // Directory listing
	"strings" // Extension matching

	"pantry_chef/internal/utils" // Random pick helper

	"github.com/sirupsen/logrus" // Logging library
)

const (
	// DefaultBackgroundPath is served when the backgrounds directory is empty
	DefaultBackgroundPath = "/static/backgrounds/default.jpg"
	// FallbackBackgroundURL is served when the backgrounds directory cannot be read
	FallbackBackgroundURL = "https://source.unsplash.com/1600x900/?food,meal,cooking"
)

// isImageFile reports whether the file name has a supported image extension
func isImageFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".jpg") ||
		strings.HasSuffix(lower, ".jpeg") ||
		strings.HasSuffix(lower, ".png")
}

// BackgroundURL picks a random background image from dir and returns its
// /static URL. An empty directory yields the default path; a filesystem
// error yields the remote fallback URL.
func BackgroundURL(dir string) string {
	entries, err := os.ReadDir(dir) // List the backgrounds directory
	if err != nil {
		logrus.WithField("error", err.Error()).Error("Background dir read failed") // Log and fall back
		return FallbackBackgroundURL
	}
	// Keep only image files
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && isImageFile(e.Name()) {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return DefaultBackgroundPath // Documented default when no images exist
	}
	chosen := files[utils.RandomNum(len(files))] // Uniform random pick
	return "/static/backgrounds/" + chosen
}
