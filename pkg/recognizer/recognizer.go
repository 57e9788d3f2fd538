package recognizer

import (
	"context"
	"errors"
)

// Provider turns an image into recognized text. Implementations must be safe
// for concurrent use.
type Provider interface {
	Recognize(ctx context.Context, input Image, options *RecognizeOptions) (*Result, error)
}

var (
	// ErrUnavailable signals the provider cannot be reached or is not
	// configured. Callers may fall back to another provider.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrNoText signals recognition succeeded but the image contains no
	// readable text. Not retried on another provider.
	ErrNoText = errors.New("no text found")
)

type Image struct {
	Name string

	Content     []byte
	ContentType string
}

type RecognizeOptions struct {
	// Languages are recognition hints, e.g. ["vi", "en"].
	Languages []string
}

// Result is the raw recognition output. Immutable once returned.
type Result struct {
	Text string

	Tokens []Token

	// Confidence is the provider-reported (or derived) aggregate
	// confidence for the whole document, in [0, 1].
	Confidence float64
}

type Token struct {
	Text string

	Confidence float64
	Box        BoundingBox
}

// BoundingBox is an axis-aligned box in pixel units, origin top-left.
type BoundingBox struct {
	X      int
	Y      int
	Width  int
	Height int
}
