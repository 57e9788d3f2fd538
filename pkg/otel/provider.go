package otel

const instrumentationName = "github.com/vnretail/docscan"

type Observable interface {
	otelSetup()
}
