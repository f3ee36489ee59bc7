package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taxpro/taxpro-api/internal/logger"
	"go.uber.org/zap"
)

// Request bodies larger than this are logged by size only.
const maxLoggedBody = 64 * 1024

// Body fields that carry document payloads are replaced by a size marker.
var redactedBodyFields = map[string]bool{
	"image": true,
}

var redactedHeaders = map[string]bool{
	"Authorization": true,
	"X-Api-Key":     true,
	"Cookie":        true,
}

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// EnhancedLoggingMiddleware logs request and response bodies. It is meant for
// local and dev stages and passes straight through when isDevelopment is false.
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		start := time.Now()
		log := logger.WithCorrelationID(GetCorrelationID(c))

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = NewBodyReader(requestBody)
		}

		log.Info("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", headerSnapshot(c.Request.Header, true)),
			zap.Any("body", loggableBody(c.GetHeader("Content-Type"), requestBody)),
			zap.Int("body_size", len(requestBody)),
		)

		blw := &bodyLogWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		responseBody := blw.body.Bytes()
		log.Info("Detailed response",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.Any("headers", headerSnapshot(c.Writer.Header(), false)),
			zap.Any("body", loggableBody(c.Writer.Header().Get("Content-Type"), responseBody)),
			zap.Int("body_size", len(responseBody)),
			zap.Int("errors_count", len(c.Errors)),
		)

		for _, err := range c.Errors {
			log.Error("Request error",
				zap.Error(err.Err),
				zap.Uint64("type", uint64(err.Type)),
				zap.Any("meta", err.Meta),
			)
		}
	}
}

// RequestLoggingMiddleware logs one line per completed request.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Log.Info("Request completed",
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		)
	}
}

func headerSnapshot(h http.Header, redact bool) map[string]string {
	out := make(map[string]string, len(h))
	for key, values := range h {
		if len(values) == 0 {
			continue
		}
		if redact && redactedHeaders[key] {
			out[key] = "[REDACTED]"
			continue
		}
		out[key] = values[0]
	}
	return out
}

func loggableBody(contentType string, body []byte) interface{} {
	if len(body) == 0 || !strings.HasPrefix(contentType, "application/json") {
		return nil
	}
	if len(body) > maxLoggedBody {
		return fmt.Sprintf("[%d bytes omitted]", len(body))
	}

	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}
	if obj, ok := parsed.(map[string]interface{}); ok {
		for field := range redactedBodyFields {
			if v, ok := obj[field].(string); ok {
				obj[field] = fmt.Sprintf("[%d chars]", len(v))
			}
		}
	}
	return parsed
}
