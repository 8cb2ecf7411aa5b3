package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyBody is returned by [DecodeJSON] for a response without a body.
var ErrEmptyBody = errors.New("empty response body")

// Response is the raw result of a successful call, returned unmodified.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// DecodeJSON unmarshals the response body into a value of type T.
func DecodeJSON[T any](resp *Response) (T, error) {
	var v T
	if resp == nil || len(resp.Body) == 0 {
		return v, ErrEmptyBody
	}

	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return v, fmt.Errorf("decode response body: %w", err)
	}

	return v, nil
}

// DecodeText returns the body as a string. A body holding a single JSON
// string literal is unquoted; anything else is returned verbatim.
func DecodeText(resp *Response) string {
	if resp == nil {
		return ""
	}

	var s string
	if err := json.Unmarshal(resp.Body, &s); err == nil {
		return s
	}

	return string(resp.Body)
}
