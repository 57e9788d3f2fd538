package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vnretail/docscan/pkg/docfield"
	"github.com/vnretail/docscan/pkg/pipeline"
	"github.com/vnretail/docscan/pkg/recognizer"
)

func TestScoreWeighsRecognitionAndMatches(t *testing.T) {
	result := &recognizer.Result{Confidence: 0.8}

	fields := map[docfield.Field]docfield.Extracted{
		docfield.FieldSerialNumber: {Confidence: 1.0},
		docfield.FieldCostPrice:    {Confidence: 0.5},
	}

	require.InDelta(t, 0.5*0.8+0.5*0.75, pipeline.Score(result, fields), 1e-9)
}

func TestScorePenalizesEmptyExtraction(t *testing.T) {
	result := &recognizer.Result{Confidence: 0.9}

	score := pipeline.Score(result, nil)

	require.InDelta(t, 0.45, score, 1e-9)
	require.LessOrEqual(t, score, 0.5*result.Confidence)
}

func TestScoreStaysInBounds(t *testing.T) {
	for _, confidence := range []float64{0, 0.25, 0.5, 1} {
		result := &recognizer.Result{Confidence: confidence}

		fields := map[docfield.Field]docfield.Extracted{
			docfield.FieldSerialNumber: {Confidence: 1.0},
		}

		score := pipeline.Score(result, fields)

		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 1.0)
	}
}
