package tesseract

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/vnretail/docscan/pkg/recognizer"
)

var _ recognizer.Provider = &Client{}

// Client runs the embedded Tesseract engine. The engine's language data is
// probed once on first use; concurrent first calls share one probe.
type Client struct {
	languages []string

	initOnce sync.Once
	initErr  error
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		languages: []string{"vie", "eng"},
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Recognize(ctx context.Context, input recognizer.Image, options *recognizer.RecognizeOptions) (*recognizer.Result, error) {
	if options == nil {
		options = new(recognizer.RecognizeOptions)
	}

	languages := c.languages

	if len(options.Languages) > 0 {
		languages = options.Languages
	}

	c.initOnce.Do(func() {
		c.initErr = probe(languages)
	})

	if c.initErr != nil {
		return nil, fmt.Errorf("%w: %v", recognizer.ErrUnavailable, c.initErr)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(languages...); err != nil {
		return nil, fmt.Errorf("%w: %v", recognizer.ErrUnavailable, err)
	}

	if err := client.SetImageFromBytes(input.Content); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()

	if err != nil {
		return nil, fmt.Errorf("%w: %v", recognizer.ErrUnavailable, err)
	}

	text = strings.TrimSpace(text)

	if text == "" {
		return nil, recognizer.ErrNoText
	}

	result := &recognizer.Result{
		Text: text,
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)

	if err == nil {
		var sum float64

		for _, box := range boxes {
			confidence := box.Confidence / 100

			result.Tokens = append(result.Tokens, recognizer.Token{
				Text: box.Word,

				Confidence: confidence,
				Box: recognizer.BoundingBox{
					X:      box.Box.Min.X,
					Y:      box.Box.Min.Y,
					Width:  box.Box.Dx(),
					Height: box.Box.Dy(),
				},
			})

			sum += confidence
		}

		if len(boxes) > 0 {
			result.Confidence = sum / float64(len(boxes))
		}
	}

	return result, nil
}

// probe verifies the engine and its language data load at all before any
// recognition is attempted.
func probe(languages []string) error {
	client := gosseract.NewClient()
	defer client.Close()

	return client.SetLanguage(languages...)
}
