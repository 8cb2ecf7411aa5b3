// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusError turns a non-2xx response of operation op into an error
// matching one of the status sentinels. A 401 on a PATCH is the backend
// rejecting the refresh token and also matches [ErrRefreshTokenRejected].
func statusError(op string, resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp)

	switch {
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case status == http.StatusUnauthorized && op == OpPatch:
		return fmt.Errorf("%w: %w: %s", ErrUnauthorized, ErrRefreshTokenRejected, detail)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w %d: %s", ErrServerError, status, detail)
	default:
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, status, detail)
	}
}

// errorDetail extracts the human-readable reason of a failed response. The
// backend answers errors as text/plain; JSON bodies with a "message" or
// "error" field are read too. An empty body falls back to the status text.
func errorDetail(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header().Get("Content-Type"))
	if mediaType != "application/json" {
		return body
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return body
	}

	switch {
	case payload.Message != "":
		return payload.Message
	case payload.Error != "":
		return payload.Error
	default:
		return body
	}
}
