package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vnretail/docscan/pkg/recognizer"
)

var _ recognizer.Provider = &Client{}

// Client talks to the Google Cloud Vision images:annotate endpoint.
//
// TEXT_DETECTION does not report per-token confidence, so every token carries
// a fixed score (see tokenConfidence). Known precision limitation.
type Client struct {
	client *http.Client

	url   string
	token string
}

const tokenConfidence = 0.9

func New(token string, options ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("invalid token")
	}

	c := &Client{
		client: http.DefaultClient,

		url:   "https://vision.googleapis.com/v1/images:annotate",
		token: token,
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

	body := AnnotateRequest{
		Requests: []AnnotationRequest{
			{
				Image: RequestImage{
					Content: base64.StdEncoding.EncodeToString(input.Content),
				},

				Features: []Feature{
					{Type: "TEXT_DETECTION"},
				},
			},
		},
	}

	if len(options.Languages) > 0 {
		body.Requests[0].ImageContext = &ImageContext{
			LanguageHints: options.Languages,
		}
	}

	data, _ := json.Marshal(body)

	u, _ := url.Parse(c.url)

	query := u.Query()
	query.Set("key", c.token)

	u.RawQuery = query.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", recognizer.ErrUnavailable, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %v", recognizer.ErrUnavailable, convertError(resp))
	}

	var annotation AnnotateResponse

	if err := json.NewDecoder(resp.Body).Decode(&annotation); err != nil {
		return nil, err
	}

	if len(annotation.Responses) == 0 {
		return nil, recognizer.ErrNoText
	}

	response := annotation.Responses[0]

	if response.Error != nil {
		return nil, fmt.Errorf("%w: %v", recognizer.ErrUnavailable, response.Error.Message)
	}

	if len(response.TextAnnotations) == 0 {
		return nil, recognizer.ErrNoText
	}

	text := strings.TrimSpace(response.TextAnnotations[0].Description)

	if text == "" {
		return nil, recognizer.ErrNoText
	}

	result := &recognizer.Result{
		Text: text,

		Confidence: tokenConfidence,
	}

	for _, token := range response.TextAnnotations[1:] {
		result.Tokens = append(result.Tokens, recognizer.Token{
			Text: token.Description,

			Confidence: tokenConfidence,
			Box:        convertBox(token.BoundingPoly.Vertices),
		})
	}

	return result, nil
}

// convertBox reduces a bounding polygon to an axis-aligned box using its
// top-left and bottom-right corners.
func convertBox(vertices []Vertex) recognizer.BoundingBox {
	if len(vertices) == 0 {
		return recognizer.BoundingBox{}
	}

	minX, minY := vertices[0].X, vertices[0].Y
	maxX, maxY := vertices[0].X, vertices[0].Y

	for _, v := range vertices[1:] {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}

	return recognizer.BoundingBox{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
