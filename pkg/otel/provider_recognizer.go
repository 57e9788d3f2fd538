package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vnretail/docscan/pkg/recognizer"
)

type Recognizer interface {
	Observable
	recognizer.Provider
}

type observableRecognizer struct {
	name string

	provider recognizer.Provider
}

func NewRecognizer(name string, p recognizer.Provider) Recognizer {
	return &observableRecognizer{
		name: name,

		provider: p,
	}
}

func (p *observableRecognizer) otelSetup() {
}

func (p *observableRecognizer) Recognize(ctx context.Context, input recognizer.Image, options *recognizer.RecognizeOptions) (*recognizer.Result, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "recognize "+p.name)
	defer span.End()

	result, err := p.provider.Recognize(ctx, input, options)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}

	if result != nil {
		span.SetAttributes(
			attribute.Int("tokens", len(result.Tokens)),
			attribute.Float64("confidence", result.Confidence),
		)
	}

	return result, err
}
