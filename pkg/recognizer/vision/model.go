package vision

type AnnotateRequest struct {
	Requests []AnnotationRequest `json:"requests"`
}

type AnnotationRequest struct {
	Image RequestImage `json:"image"`

	Features []Feature `json:"features"`

	ImageContext *ImageContext `json:"imageContext,omitempty"`
}

type RequestImage struct {
	Content string `json:"content"`
}

type Feature struct {
	Type string `json:"type"`

	MaxResults int `json:"maxResults,omitempty"`
}

type ImageContext struct {
	LanguageHints []string `json:"languageHints,omitempty"`
}

type AnnotateResponse struct {
	Responses []AnnotationResponse `json:"responses"`
}

type AnnotationResponse struct {
	TextAnnotations []TextAnnotation `json:"textAnnotations"`

	Error *Status `json:"error,omitempty"`
}

type TextAnnotation struct {
	Locale      string `json:"locale,omitempty"`
	Description string `json:"description"`

	BoundingPoly BoundingPoly `json:"boundingPoly"`
}

type BoundingPoly struct {
	Vertices []Vertex `json:"vertices"`
}

type Vertex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
