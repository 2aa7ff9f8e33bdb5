package validate

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// MaxImageBytes bounds inline profile images to 2MiB, checked before the
// payload ever reaches the backend.
const MaxImageBytes = 2 * 1024 * 1024

var (
	ErrEmptyContent = errors.New("content is empty")
	ErrNotAnImage   = errors.New("not an image")
	ErrImageTooBig  = fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
)

// Content rejects post and comment bodies that are empty after trimming.
// This runs before any network call.
func Content(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyContent
	}
	return nil
}

// Image validates an inline data URL of the form data:image/...;base64,...
// as produced by the profile upload form.
func Image(dataURL string) error {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return ErrNotAnImage
	}
	meta, data, ok := strings.Cut(rest, ",")
	if !ok {
		return ErrNotAnImage
	}

	mime, _, _ := strings.Cut(meta, ";")
	if !strings.HasPrefix(mime, "image/") {
		return ErrNotAnImage
	}

	size := base64.StdEncoding.DecodedLen(len(data))
	if size > MaxImageBytes {
		return ErrImageTooBig
	}
	return nil
}

// Rating checks the 1..5 star range.
func Rating(n int) error {
	if n < 1 || n > 5 {
		return fmt.Errorf("rating %d out of range", n)
	}
	return nil
}
