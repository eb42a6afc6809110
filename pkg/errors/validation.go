package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// dataURIRegex matches image data URIs: "data:image/<subtype>[;params],<payload>".
var dataURIRegex = regexp.MustCompile(`^data:image/[^,]+,.+`)

// ValidateImageDataURI checks that uri is a non-empty image data URI.
// Remote URLs and file paths are rejected; convert them with io.ImageToDataURI first.
func ValidateImageDataURI(uri string) error {
	if !dataURIRegex.MatchString(uri) {
		return New(ErrCodeInvalidImage, "invalid data url: must match data:image/...,<data>")
	}
	return nil
}

// ValidatePolygonPoints checks a flat x,y coordinate sequence.
//
// Rules:
//   - Even number of coordinates
//   - At least 3 points (6 coordinates)
func ValidatePolygonPoints(points []float64) error {
	if len(points)%2 != 0 {
		return New(ErrCodeInvalidPolygon, "number of points must be even, got %d", len(points))
	}
	if len(points) < 6 {
		return New(ErrCodeInvalidPolygon, "polygon must have at least 3 coordinates, got %d", len(points)/2)
	}
	return nil
}

// ValidateAccessKey validates a room access key before it is placed in a URL path.
//
// Validation rules:
//   - Key cannot be empty
//   - Maximum length of 256 characters
//   - No control characters, whitespace or path separators
func ValidateAccessKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "access key cannot be empty")
	}
	if len(key) > 256 {
		return New(ErrCodeInvalidInput, "access key too long (max 256 characters)")
	}
	for _, r := range key {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "access key contains invalid characters")
		}
	}
	if strings.ContainsAny(key, "/\\?#") || strings.Contains(key, "..") {
		return New(ErrCodeInvalidInput, "access key cannot contain path characters")
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
