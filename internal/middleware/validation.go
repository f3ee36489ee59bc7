package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taxpro/taxpro-api/internal/logger"
	"go.uber.org/zap"
)

// ValidationRule describes one JSON body field.
type ValidationRule struct {
	Field         string                  // JSON field name
	Required      bool                    // missing, null and "" are rejected
	Type          string                  // string, number, numeric, boolean, uuid, object, array
	MinLength     int                     // strings only
	MaxLength     int                     // strings only
	Pattern       string                  // regexp the string must match
	Min           *float64                // number and numeric only
	Max           *float64                // number and numeric only
	AllowedValues []string                // exact string matches
	Sanitize      bool                    // trim and strip control characters after validation
	Custom        func(interface{}) error // runs after the type check
}

// ValidationConfig holds the rules for one endpoint.
type ValidationConfig struct {
	Rules              []ValidationRule
	MaxBodySize        int64
	AllowUnknownFields bool
}

// ValidationError is one rejected field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the 400 body written by ValidateInput.
type ValidationErrors struct {
	Errors        []ValidationError `json:"errors"`
	CorrelationID string            `json:"correlation_id,omitempty"`
}

// compiled patterns keyed by source
var patternCache sync.Map

// ValidateInput checks the JSON body against config before the handler runs.
// On success the (possibly sanitized) body is put back on the request so the
// handler can bind it again.
func ValidateInput(config ValidationConfig) gin.HandlerFunc {
	for _, rule := range config.Rules {
		if rule.Pattern != "" {
			patternCache.Store(rule.Pattern, regexp.MustCompile(rule.Pattern))
		}
	}

	return func(c *gin.Context) {
		if config.MaxBodySize > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				abortWithError(c, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize))
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxBodySize)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				abortWithError(c, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize))
				return
			}
			abortWithError(c, http.StatusBadRequest, "Invalid JSON in request body")
			return
		}
		if body == nil {
			abortWithError(c, http.StatusBadRequest, "Request body must be a JSON object")
			return
		}

		if errs := validateFields(body, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			logger.Log.Debug("Request body rejected",
				zap.String("correlation_id", GetCorrelationID(c)),
				zap.String("path", c.Request.URL.Path),
				zap.Int("errors", len(errs)))
			c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{
				Errors:        errs,
				CorrelationID: GetCorrelationID(c),
			})
			return
		}

		bodyBytes, _ := json.Marshal(body)
		c.Request.Body = NewBodyReader(bodyBytes)
		c.Request.ContentLength = int64(len(bodyBytes))

		c.Next()
	}
}

// abortWithError writes the same {error, correlation_id} body the handlers use.
func abortWithError(c *gin.Context, status int, msg string) {
	body := gin.H{"error": msg}
	if id := GetCorrelationID(c); id != "" {
		body["correlation_id"] = id
	}
	c.AbortWithStatusJSON(status, body)
}

func validateFields(data map[string]interface{}, rules []ValidationRule, allowUnknown bool) []ValidationError {
	var errs []ValidationError
	known := make(map[string]bool, len(rules))

	fail := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	for _, rule := range rules {
		known[rule.Field] = true
		value, exists := data[rule.Field]

		if rule.Required && (!exists || value == nil || value == "") {
			fail(rule.Field, fmt.Sprintf("%s is required", rule.Field))
			continue
		}
		if !exists || value == nil {
			continue
		}

		var err error
		switch rule.Type {
		case "string":
			if err = validateString(value, rule); err == nil && rule.Sanitize {
				data[rule.Field] = sanitizeString(value.(string))
			}
		case "number", "int", "float":
			err = validateNumber(value, rule)
		case "numeric":
			err = validateNumeric(value, rule)
		case "boolean", "bool":
			if _, ok := value.(bool); !ok {
				err = fmt.Errorf("must be a boolean")
			}
		case "uuid":
			err = validateUUID(value)
		case "array":
			if _, ok := value.([]interface{}); !ok {
				err = fmt.Errorf("must be an array")
			}
		case "object":
			if _, ok := value.(map[string]interface{}); !ok {
				err = fmt.Errorf("must be an object")
			}
		}
		if err != nil {
			fail(rule.Field, err.Error())
			continue
		}

		if rule.Custom != nil {
			if err := rule.Custom(value); err != nil {
				fail(rule.Field, err.Error())
			}
		}
	}

	if !allowUnknown {
		for field := range data {
			if !known[field] {
				fail(field, "unknown field")
			}
		}
	}

	return errs
}

func validateString(value interface{}, rule ValidationRule) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	length := utf8.RuneCountInString(str)
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Errorf("must be at least %d characters long", rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Errorf("must be at most %d characters long", rule.MaxLength)
	}

	if rule.Pattern != "" {
		re, err := compiledPattern(rule.Pattern)
		if err != nil {
			logger.Log.Error("Invalid regex pattern", zap.String("pattern", rule.Pattern), zap.Error(err))
			return fmt.Errorf("invalid validation pattern")
		}
		if !re.MatchString(str) {
			return fmt.Errorf("invalid format")
		}
	}

	if len(rule.AllowedValues) > 0 {
		for _, v := range rule.AllowedValues {
			if str == v {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %s", strings.Join(rule.AllowedValues, ", "))
	}

	return nil
}

func compiledPattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patternCache.Store(pattern, re)
	return re, nil
}

func validateNumber(value interface{}, rule ValidationRule) error {
	num, ok := value.(float64)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	return checkRange(num, rule)
}

// validateNumeric accepts a JSON number or a string holding one. An empty
// string counts as zero, matching how amounts are decoded by the handlers.
func validateNumeric(value interface{}, rule ValidationRule) error {
	var num float64
	switch v := value.(type) {
	case float64:
		num = v
	case string:
		s := strings.TrimSpace(v)
		if s != "" {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("must be a number")
			}
			num = f
		}
	default:
		return fmt.Errorf("must be a number")
	}
	return checkRange(num, rule)
}

func checkRange(num float64, rule ValidationRule) error {
	if rule.Min != nil && num < *rule.Min {
		return fmt.Errorf("must be at least %v", *rule.Min)
	}
	if rule.Max != nil && num > *rule.Max {
		return fmt.Errorf("must be at most %v", *rule.Max)
	}
	return nil
}

func validateUUID(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if _, err := uuid.Parse(str); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}
	return nil
}

// sanitizeString trims whitespace and drops NUL and other control characters.
func sanitizeString(input string) string {
	input = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' {
			return -1
		}
		return r
	}, input)
	return strings.TrimSpace(input)
}

func float64Ptr(f float64) *float64 {
	return &f
}
