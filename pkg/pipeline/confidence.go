package pipeline

import (
	"github.com/vnretail/docscan/pkg/docfield"
	"github.com/vnretail/docscan/pkg/recognizer"
)

// Recognition and match confidence carry equal weight. The split is a tuning
// choice, not a derived constant.
const (
	recognitionWeight = 0.5
	matchWeight       = 0.5
)

// Score combines provider-level recognition confidence with rule-match
// certainty into one document confidence in [0, 1].
//
// A document with zero extracted fields keeps only the penalized recognition
// half: recognition may have "succeeded" while extraction fully failed.
func Score(result *recognizer.Result, fields map[docfield.Field]docfield.Extracted) float64 {
	if len(fields) == 0 {
		return recognitionWeight * result.Confidence
	}

	var sum float64

	for _, field := range fields {
		sum += field.Confidence
	}

	mean := sum / float64(len(fields))

	return recognitionWeight*result.Confidence + matchWeight*mean
}
