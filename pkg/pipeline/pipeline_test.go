package pipeline_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"sync/atomic"
	"testing"

	"github.com/vnretail/docscan/pkg/docfield"
	"github.com/vnretail/docscan/pkg/pipeline"
	"github.com/vnretail/docscan/pkg/recognizer"
)

// mockRecognizer is a configurable mock for testing
type mockRecognizer struct {
	text       string
	confidence float64
	err        error

	calls atomic.Int64
}

func (m *mockRecognizer) Recognize(ctx context.Context, input recognizer.Image, options *recognizer.RecognizeOptions) (*recognizer.Result, error) {
	m.calls.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if m.err != nil {
		return nil, m.err
	}

	return &recognizer.Result{
		Text: m.text,

		Confidence: m.confidence,
	}, nil
}

func pngPayload(t *testing.T) pipeline.Payload {
	t.Helper()

	var buf bytes.Buffer

	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}

	return pipeline.Payload{
		Data:        buf.Bytes(),
		ContentType: "image/png",
	}
}

func TestProcess(t *testing.T) {
	t.Run("extracts fields from recognized text", func(t *testing.T) {
		mock := &mockRecognizer{text: "Số serial: ABC-123", confidence: 0.9}

		p, err := pipeline.New(mock)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		document, err := p.Process(context.Background(), pngPayload(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		serial, ok := document.Fields[docfield.FieldSerialNumber]
		if !ok {
			t.Fatal("expected serial number field")
		}
		if serial.Value != "ABC-123" {
			t.Errorf("unexpected value: %v", serial.Value)
		}

		if document.Confidence <= 0 || document.Confidence > 1 {
			t.Errorf("confidence out of bounds: %v", document.Confidence)
		}
	})

	t.Run("empty text is a terminal failure", func(t *testing.T) {
		mock := &mockRecognizer{err: recognizer.ErrNoText}

		p, _ := pipeline.New(mock)

		_, err := p.Process(context.Background(), pngPayload(t))

		var extractionErr *pipeline.ExtractionError
		if !errors.As(err, &extractionErr) {
			t.Fatalf("expected ExtractionError, got %v", err)
		}
		if !errors.Is(err, recognizer.ErrNoText) {
			t.Errorf("expected ErrNoText cause, got %v", extractionErr.Err)
		}
	})

	t.Run("blank recognition result is treated as no text", func(t *testing.T) {
		mock := &mockRecognizer{text: "  \n ", confidence: 0.7}

		p, _ := pipeline.New(mock)

		_, err := p.Process(context.Background(), pngPayload(t))

		if !errors.Is(err, recognizer.ErrNoText) {
			t.Fatalf("expected ErrNoText cause, got %v", err)
		}
	})

	t.Run("no fields is a valid outcome", func(t *testing.T) {
		mock := &mockRecognizer{text: "nothing recognizable here", confidence: 0.6}

		p, _ := pipeline.New(mock)

		document, err := p.Process(context.Background(), pngPayload(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(document.Fields) != 0 {
			t.Errorf("expected no fields, got %d", len(document.Fields))
		}
		if document.Confidence > 0.5*0.6 {
			t.Errorf("expected penalized confidence, got %v", document.Confidence)
		}
	})

	t.Run("rejects undecodable payloads before recognition", func(t *testing.T) {
		mock := &mockRecognizer{text: "irrelevant"}

		p, _ := pipeline.New(mock)

		_, err := p.Process(context.Background(), pipeline.Payload{Data: []byte("not an image")})

		if !errors.Is(err, pipeline.ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
		if mock.calls.Load() != 0 {
			t.Errorf("provider must not be invoked, got %d calls", mock.calls.Load())
		}
	})

	t.Run("decodes data URI payloads", func(t *testing.T) {
		mock := &mockRecognizer{text: "SN: XYZ987", confidence: 0.8}

		p, _ := pipeline.New(mock)

		raw := pngPayload(t)

		payload := pipeline.Payload{
			URI: "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw.Data),
		}

		document, err := p.Process(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, ok := document.Fields[docfield.FieldSerialNumber]; !ok {
			t.Error("expected serial number field")
		}
	})

	t.Run("cancellation returns no partial document", func(t *testing.T) {
		mock := &mockRecognizer{text: "Số serial: ABC-123"}

		p, _ := pipeline.New(mock)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		document, err := p.Process(ctx, pngPayload(t))

		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if document != nil {
			t.Error("expected no document for cancelled call")
		}
	})

	t.Run("provider failure surfaces as extraction error with cause", func(t *testing.T) {
		cause := errors.New("boom")
		mock := &mockRecognizer{err: cause}

		p, _ := pipeline.New(mock)

		_, err := p.Process(context.Background(), pngPayload(t))

		var extractionErr *pipeline.ExtractionError
		if !errors.As(err, &extractionErr) {
			t.Fatalf("expected ExtractionError, got %v", err)
		}
		if !errors.Is(err, cause) {
			t.Error("expected original cause to be attached")
		}
	})
}
