package pipeline

import (
	"log/slog"
	"time"

	"github.com/vnretail/docscan/pkg/docfield"
)

type Option func(*Pipeline)

// WithTimeout bounds the recognition phase. On expiry the provider call is
// treated like an unavailable provider.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Pipeline) {
		p.timeout = timeout
	}
}

// WithLanguages sets the recognition language hints.
func WithLanguages(languages ...string) Option {
	return func(p *Pipeline) {
		p.languages = languages
	}
}

func WithExtractor(e *docfield.Extractor) Option {
	return func(p *Pipeline) {
		p.extractor = e
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}
