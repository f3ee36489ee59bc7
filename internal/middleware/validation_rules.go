package middleware

import (
	"encoding/base64"

	"github.com/taxpro/taxpro-api/internal/taxengine"
)

// DefaultMaxUploadBytes is the decoded image limit when MAX_UPLOAD_BYTES is
// unset.
const DefaultMaxUploadBytes = 50 << 20

// uploadEnvelopeBytes covers the data URL prefix, the category and the JSON
// around the base64 image.
const uploadEnvelopeBytes = 4 << 10

// UploadBodyLimit is the largest upload body that can carry an image of
// maxImageBytes once base64 encoded.
func UploadBodyLimit(maxImageBytes int) int64 {
	if maxImageBytes <= 0 {
		maxImageBytes = DefaultMaxUploadBytes
	}
	return int64(base64.StdEncoding.EncodedLen(maxImageBytes)) + uploadEnvelopeBytes
}

func filingStatusValues() []string {
	values := make([]string, 0, len(taxengine.FilingStatuses))
	for _, fs := range taxengine.FilingStatuses {
		values = append(values, string(fs))
	}
	return values
}

// CalculateTaxValidation guards POST /api/calculate-tax. Amounts may arrive
// as numbers or numeric strings.
var CalculateTaxValidation = ValidationConfig{
	MaxBodySize:        64 * 1024,
	AllowUnknownFields: true,
	Rules: []ValidationRule{
		{
			Field:    "income",
			Type:     "numeric",
			Required: true,
			Min:      float64Ptr(0),
		},
		{
			Field:         "filingStatus",
			Type:          "string",
			Required:      true,
			AllowedValues: filingStatusValues(),
		},
		{
			Field:    "state",
			Type:     "string",
			Required: true,
			Pattern:  `^[A-Za-z]{2}$`,
		},
		{
			Field: "standardDeduction",
			Type:  "numeric",
			Min:   float64Ptr(0),
		},
		{
			Field: "additionalDeductions",
			Type:  "numeric",
			Min:   float64Ptr(0),
		},
	},
}

// UploadDocumentValidation guards POST /api/documents. The body cap follows
// the decoded image limit so both are driven by MAX_UPLOAD_BYTES.
func UploadDocumentValidation(maxImageBytes int) ValidationConfig {
	return ValidationConfig{
		MaxBodySize:        UploadBodyLimit(maxImageBytes),
		AllowUnknownFields: false,
		Rules: []ValidationRule{
			{
				Field:    "image",
				Type:     "string",
				Required: true,
			},
			{
				Field:     "category",
				Type:      "string",
				MaxLength: 64,
				Pattern:   `^[a-z0-9_]*$`,
				Sanitize:  true,
			},
		},
	}
}
