package middleware

import (
	"bytes"
	"io"
)

// BodyReader lets a request body be handed back to gin after it was read once.
type BodyReader struct {
	*bytes.Reader
}

// NewBodyReader wraps body as an io.ReadCloser.
func NewBodyReader(body []byte) io.ReadCloser {
	return &BodyReader{Reader: bytes.NewReader(body)}
}

func (r *BodyReader) Close() error {
	return nil
}
