package gateway

import (
	"errors"

	"photo-studio-server/modules/catalog"
)

// MaxReferenceImages - hard cap on reference images attached to a request;
// extras are silently dropped.
const MaxReferenceImages = 3

var (
	// ErrNoImage - the backend answered but produced no image part
	ErrNoImage = errors.New("no image produced")
	// ErrInvalidImage - a supplied image is not a well-formed encoded image
	ErrInvalidImage = errors.New("invalid encoded image")
)

// Request - one image generation or edit call
type Request struct {
	Prompt      string
	Model       catalog.ImageModel
	AspectRatio catalog.AspectRatio
	SourceImage string
	References  []string
}

// Result - a successfully produced image, always returned in encoded
// data-URI form so callers never touch raw bytes.
type Result struct {
	Image    string
	MimeType string
}
