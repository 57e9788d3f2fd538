package docfield

import (
	"regexp"
	"strings"

	"github.com/vnretail/docscan/pkg/recognizer"
)

// Extractor applies the rule catalogue to recognized text. Extraction is
// deterministic: the same input always yields the same result.
type Extractor struct {
	rules []Rule
}

func New() *Extractor {
	return &Extractor{
		rules: Rules(),
	}
}

// NewWithRules builds an extractor over a custom catalogue.
func NewWithRules(rules []Rule) *Extractor {
	return &Extractor{
		rules: rules,
	}
}

// Extract matches every rule against the recognized text. Fields without a
// match are absent from the returned map.
//
// Labelled matchers run first across the whole catalogue; shape-only
// fallbacks then scan text with the labelled spans masked out, so a value
// consumed by one rule's label is never re-matched by another rule's
// fallback. Masking preserves offsets, spans stay valid across passes.
func (e *Extractor) Extract(result *recognizer.Result) map[Field]Extracted {
	text := result.Text

	fields := make(map[Field]Extracted)

	var spans [][2]int

	e.matchRules(text, true, fields, &spans)
	e.matchRules(maskSpans(text, spans), false, fields, &spans)

	e.assignPositional(text, spans, fields)

	return fields
}

func (e *Extractor) matchRules(text string, anchored bool, fields map[Field]Extracted, spans *[][2]int) {
	for _, rule := range e.rules {
		if _, ok := fields[rule.Field]; ok {
			continue
		}

		for _, m := range rule.Matchers {
			if m.Anchored != anchored {
				continue
			}

			loc := m.Pattern.FindStringSubmatchIndex(text)

			if loc == nil {
				continue
			}

			start, end := loc[2*m.Group], loc[2*m.Group+1]

			if start < 0 {
				continue
			}

			raw := text[start:end]

			value, err := postProcess(rule, raw)

			if err != nil {
				continue
			}

			fields[rule.Field] = Extracted{
				Field: rule.Field,

				Raw:        raw,
				Value:      value,
				Confidence: m.confidence(),
			}

			*spans = append(*spans, [2]int{loc[0], loc[1]})
			break
		}
	}
}

// assignPositional fills the price and date fields that have no labelled
// match. Unlabelled values are assigned in document order: first date is the
// purchase date, second the sale date; first amount is the cost price, second
// the sale price. A lone amount populates the cost price only. Documents with
// reversed ordering are mis-assigned; that is the documented baseline.
func (e *Extractor) assignPositional(text string, spans [][2]int, fields map[Field]Extracted) {
	masked := maskSpans(text, spans)

	e.assign(masked, datePattern, []Field{FieldPurchaseDate, FieldSaleDate}, nil, fields)

	// Dates and phone numbers are digit runs too; hide them before
	// scanning for amounts.
	amounts := maskMatches(maskMatches(masked, datePattern), phonePattern)

	e.assign(amounts, pricePattern, []Field{FieldCostPrice, FieldSalePrice}, asPrice, fields)
}

func (e *Extractor) assign(text string, pattern *regexp.Regexp, targets []Field, post func(string) (any, error), fields map[Field]Extracted) {
	var remaining []Field

	for _, field := range targets {
		if _, ok := fields[field]; !ok {
			remaining = append(remaining, field)
		}
	}

	if len(remaining) == 0 {
		return
	}

	for _, loc := range pattern.FindAllStringIndex(text, len(remaining)) {
		raw := text[loc[0]:loc[1]]

		value := any(raw)

		if post != nil {
			v, err := post(raw)

			if err != nil {
				continue
			}

			value = v
		}

		field := remaining[0]
		remaining = remaining[1:]

		fields[field] = Extracted{
			Field: field,

			Raw:        raw,
			Value:      value,
			Confidence: fallbackConfidence,
		}

		if len(remaining) == 0 {
			return
		}
	}
}

func postProcess(rule Rule, raw string) (any, error) {
	if rule.Post == nil {
		return strings.TrimSpace(raw), nil
	}

	return rule.Post(raw)
}

// maskSpans blanks the given byte ranges so later scans skip them.
func maskSpans(text string, spans [][2]int) string {
	if len(spans) == 0 {
		return text
	}

	data := []byte(text)

	for _, span := range spans {
		for i := span[0]; i < span[1] && i < len(data); i++ {
			data[i] = ' '
		}
	}

	return string(data)
}

func maskMatches(text string, pattern *regexp.Regexp) string {
	return maskSpans(text, toSpans(pattern.FindAllStringIndex(text, -1)))
}

func toSpans(locs [][]int) [][2]int {
	spans := make([][2]int, 0, len(locs))

	for _, loc := range locs {
		spans = append(spans, [2]int{loc[0], loc[1]})
	}

	return spans
}
