package docfield

import (
	"regexp"
)

// The catalogue below encodes the labels found on Vietnamese and English
// supplier invoices, warranty cards and sales receipts. Matcher order within
// a rule is priority order: labelled patterns first, shape-only fallbacks
// last. Order across rules carries no meaning.
//
// Word boundaries: \b is ASCII-only in Go regexp and misbehaves next to
// Vietnamese letters, so labels are delimited with (?:^|[^\p{L}]) instead.

const (
	labelPrefix = `(?im)(?:^|[^\p{L}])`

	dateToken = `\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`
)

// Rules returns a fresh copy of the extraction rule catalogue.
func Rules() []Rule {
	return []Rule{
		{
			Field: FieldSerialNumber,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:số\s*s[eê][\s-]*ri(?:al)?|serial(?:\s*(?:number|no\.?))?|s/n|sn)\s*[:#]\s*([A-Za-z0-9][A-Za-z0-9\-/]{2,})`),
				bare(`(?m)(?:^|[\s:])((?:[A-Z0-9]{2,}-)+[A-Z0-9]+|[A-Z]{2,}\d{4,})`),
			},
		},
		{
			Field: FieldProductName,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:tên\s*(?:sản\s*phẩm|hàng)|sản\s*phẩm|product(?:\s*name)?|item|model)\s*[:#]\s*([^\r\n]+)`),
			},
			Post: asText,
		},
		{
			Field: FieldInvoiceNumber,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:số\s*hóa\s*đơn|hóa\s*đơn(?:\s*số)?|invoice(?:\s*(?:number|no\.?))?|inv\.?|hd)\s*[:#]\s*([A-Za-z0-9\-/]+)`),
			},
		},
		{
			Field: FieldSupplierName,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:nhà\s*cung\s*cấp|nhà\s*phân\s*phối|ncc|supplier|vendor)\s*[:#]\s*([^\r\n]+)`),
			},
			Post: asText,
		},
		{
			Field: FieldCostPrice,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:giá\s*nhập|giá\s*vốn|cost(?:\s*price)?|purchase\s*price)\s*[:#]?\s*(\d[\d.,]*)`),
				// unlabelled amounts are assigned positionally, see extractor.go
			},
			Post: asPrice,
		},
		{
			Field: FieldSalePrice,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:giá\s*bán|sale\s*price|selling\s*price)\s*[:#]?\s*(\d[\d.,]*)`),
			},
			Post: asPrice,
		},
		{
			Field: FieldCustomerName,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:tên\s*khách(?:\s*hàng)?|khách\s*hàng|customer(?:\s*name)?|client)\s*[:#]\s*([^\r\n]+)`),
			},
			Post: asText,
		},
		{
			Field: FieldCustomerPhone,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:số\s*điện\s*thoại|điện\s*thoại|sđt|đt|phone|tel(?:ephone)?|mobile)\s*[:#.]?\s*((?:\+?84|0)[\d .]{7,12}\d)`),
				bare(`(?:^|[^\d])((?:\+?84|0)\d{9,10})`),
			},
			Post: asPhone,
		},
		{
			Field: FieldWarrantyStartDate,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:bảo\s*hành\s*từ(?:\s*ngày)?|warranty\s*(?:start|from)(?:\s*date)?)\s*[:#]?\s*(` + dateToken + `)`),
			},
		},
		{
			Field: FieldWarrantyEndDate,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:bảo\s*hành\s*đến(?:\s*ngày)?|hạn\s*bảo\s*hành|warranty\s*(?:end|until|to)(?:\s*date)?)\s*[:#]?\s*(` + dateToken + `)`),
			},
		},
		{
			Field: FieldWarrantyMonths,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:bảo\s*hành|warranty)\s*[:#]?\s*(\d{1,3})\s*(?:tháng|months?)`),
				bare(`(?i)(?:^|[^\d])(\d{1,3})\s*(?:tháng|months?)`),
			},
			Post: asMonths,
		},
		{
			Field: FieldPurchaseDate,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:ngày\s*(?:mua|nhập)(?:\s*hàng)?|purchase\s*date|date\s*of\s*purchase)\s*[:#]?\s*(` + dateToken + `)`),
			},
		},
		{
			Field: FieldSaleDate,
			Matchers: []Matcher{
				anchored(labelPrefix + `(?:ngày\s*bán|sale\s*date|date\s*of\s*sale)\s*[:#]?\s*(` + dateToken + `)`),
			},
		},
	}
}

// Shape-only patterns for the positional pass.
var (
	datePattern = regexp.MustCompile(dateToken)

	// Grouped thousands or at least four plain digits; shorter runs are
	// too likely to be quantities or fragments of codes.
	pricePattern = regexp.MustCompile(`\d{1,3}(?:[.,]\d{3})+|\d{4,}`)

	// Phone-shaped runs, masked out before scanning for amounts.
	phonePattern = regexp.MustCompile(`(?:\+?84|0)\d{8,10}`)
)
