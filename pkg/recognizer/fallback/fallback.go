package fallback

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vnretail/docscan/pkg/recognizer"
)

var _ recognizer.Provider = &Recognizer{}

// Recognizer tries its providers in order and returns the first successful
// result. Each provider is attempted at most once per call.
//
// recognizer.ErrNoText stops the chain immediately: an empty photo is not a
// transient condition, so the alternate provider is not consulted.
type Recognizer struct {
	providers []recognizer.Provider

	timeout time.Duration
}

func New(provider ...recognizer.Provider) *Recognizer {
	return &Recognizer{
		providers: provider,
	}
}

// WithTimeout bounds each provider attempt. A timed-out attempt is treated
// like an unavailable provider and the chain moves on.
func (r *Recognizer) WithTimeout(timeout time.Duration) *Recognizer {
	r.timeout = timeout
	return r
}

func (r *Recognizer) Recognize(ctx context.Context, input recognizer.Image, options *recognizer.RecognizeOptions) (*recognizer.Result, error) {
	if options == nil {
		options = new(recognizer.RecognizeOptions)
	}

	var causes []error

	for _, p := range r.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := r.recognize(ctx, p, input, options)

		if err != nil {
			if errors.Is(err, recognizer.ErrNoText) {
				return nil, err
			}

			slog.Warn("recognizer failed, trying next", "error", err)

			causes = append(causes, err)
			continue
		}

		return result, nil
	}

	if len(causes) > 0 {
		return nil, errors.Join(append([]error{recognizer.ErrUnavailable}, causes...)...)
	}

	return nil, recognizer.ErrUnavailable
}

func (r *Recognizer) recognize(ctx context.Context, p recognizer.Provider, input recognizer.Image, options *recognizer.RecognizeOptions) (*recognizer.Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	return p.Recognize(ctx, input, options)
}
