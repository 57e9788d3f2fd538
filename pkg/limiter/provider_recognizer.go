package limiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/vnretail/docscan/pkg/recognizer"
)

type Recognizer interface {
	Limiter
	recognizer.Provider
}

type limitedRecognizer struct {
	limiter  *rate.Limiter
	provider recognizer.Provider
}

func NewRecognizer(l *rate.Limiter, p recognizer.Provider) Recognizer {
	return &limitedRecognizer{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedRecognizer) limiterSetup() {
}

func (p *limitedRecognizer) Recognize(ctx context.Context, input recognizer.Image, options *recognizer.RecognizeOptions) (*recognizer.Result, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.Recognize(ctx, input, options)
}
