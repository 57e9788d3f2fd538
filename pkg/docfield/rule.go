package docfield

import (
	"regexp"
	"strconv"
	"strings"
)

// Match confidence by matcher kind.
const (
	anchoredConfidence = 1.0
	fallbackConfidence = 0.5
)

// Matcher is one pattern for one field. Within a rule, matchers are tried in
// order and the first hit wins, so label-anchored patterns must precede bare
// fallback patterns.
type Matcher struct {
	Pattern *regexp.Regexp

	// Group is the submatch index holding the value. Zero means the whole
	// match.
	Group int

	// Anchored marks a pattern that requires a field label (e.g.
	// "Serial:") in front of the value.
	Anchored bool
}

func (m Matcher) confidence() float64 {
	if m.Anchored {
		return anchoredConfidence
	}

	return fallbackConfidence
}

// Rule binds a field to its ordered matchers and an optional post-processing
// transform.
type Rule struct {
	Field Field

	Matchers []Matcher

	// Post converts the raw matched substring into the field value. Nil
	// keeps the trimmed raw string. A Post error voids the match and the
	// next matcher is tried.
	Post func(raw string) (any, error)
}

func anchored(expr string) Matcher {
	return Matcher{Pattern: regexp.MustCompile(expr), Group: 1, Anchored: true}
}

func bare(expr string) Matcher {
	return Matcher{Pattern: regexp.MustCompile(expr), Group: 1}
}

// asText trims whitespace and trailing punctuation noise from free-form
// values.
func asText(raw string) (any, error) {
	return strings.Trim(raw, " \t.,;"), nil
}

// asPrice strips a currency suffix and group separators, then parses a
// float. Both "," and "." count as group separators, matching mixed
// Vietnamese/English invoice formatting.
func asPrice(raw string) (any, error) {
	value := strings.TrimSpace(raw)

	value = strings.TrimRight(value, "đ₫dD ")
	value = strings.TrimSuffix(strings.TrimSuffix(value, "VND"), "vnd")

	value = strings.NewReplacer(".", "", ",", "", " ", "").Replace(value)

	return strconv.ParseFloat(value, 64)
}

// asPhone normalizes spacing and punctuation inside a phone number.
func asPhone(raw string) (any, error) {
	return strings.NewReplacer(" ", "", ".", "", "-", "").Replace(strings.TrimSpace(raw)), nil
}

// asMonths parses a warranty duration as an integer count of months.
func asMonths(raw string) (any, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
