package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/vincent-petithory/dataurl"

	"github.com/vnretail/docscan/pkg/docfield"
	"github.com/vnretail/docscan/pkg/recognizer"
)

// ErrInvalidPayload marks a payload that could not be decoded as an image.
// Rejected before any provider is invoked.
var ErrInvalidPayload = errors.New("invalid image payload")

// ExtractionError is the terminal error for one Process call. It carries the
// originating cause for logging; the caller shows a generic retry-or-enter-
// manually message.
type ExtractionError struct {
	Stage string

	Err error
}

func (e *ExtractionError) Error() string {
	return "extraction failed (" + e.Stage + "): " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Payload is an uploaded or photographed document image: either raw bytes or
// a base64 data URI.
type Payload struct {
	Name string

	Data []byte
	URI  string

	ContentType string
}

// Pipeline turns a document image into extracted business fields. Stateless
// across calls; safe for concurrent use.
type Pipeline struct {
	recognizer recognizer.Provider
	extractor  *docfield.Extractor

	languages []string
	timeout   time.Duration

	logger *slog.Logger
}

// Document is the final pipeline output handed to the form-filling layer.
type Document struct {
	Fields map[docfield.Field]docfield.Extracted

	// Confidence estimates how trustworthy the extraction is overall,
	// in [0, 1].
	Confidence float64
}

func New(p recognizer.Provider, options ...Option) (*Pipeline, error) {
	if p == nil {
		return nil, errors.New("missing recognizer")
	}

	pl := &Pipeline{
		recognizer: p,
		extractor:  docfield.New(),

		logger: slog.Default(),
	}

	for _, option := range options {
		option(pl)
	}

	return pl, nil
}

// Process runs recognition and field extraction for one image. Cancelling
// the context abandons the call at the provider boundary: no partial
// document is ever returned.
func (p *Pipeline) Process(ctx context.Context, payload Payload) (*Document, error) {
	log := p.logger.With("id", uuid.NewString())

	img, err := decodePayload(payload)

	if err != nil {
		return nil, &ExtractionError{Stage: "decode", Err: err}
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	options := &recognizer.RecognizeOptions{
		Languages: p.languages,
	}

	result, err := p.recognizer.Recognize(ctx, img, options)

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		log.Warn("recognition failed", "error", err)

		return nil, &ExtractionError{Stage: "recognize", Err: err}
	}

	if strings.TrimSpace(result.Text) == "" {
		return nil, &ExtractionError{Stage: "recognize", Err: recognizer.ErrNoText}
	}

	fields := p.extractor.Extract(result)

	document := &Document{
		Fields: fields,

		Confidence: Score(result, fields),
	}

	log.Debug("document processed",
		"fields", len(fields),
		"confidence", document.Confidence,
	)

	return document, nil
}

func decodePayload(payload Payload) (recognizer.Image, error) {
	img := recognizer.Image{
		Name: payload.Name,

		Content:     payload.Data,
		ContentType: payload.ContentType,
	}

	if payload.URI != "" {
		data, err := dataurl.DecodeString(payload.URI)

		if err != nil {
			return recognizer.Image{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}

		img.Content = data.Data
		img.ContentType = data.MediaType.ContentType()
	}

	if len(img.Content) == 0 {
		return recognizer.Image{}, fmt.Errorf("%w: empty content", ErrInvalidPayload)
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(img.Content)); err != nil {
		return recognizer.Image{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return img, nil
}
