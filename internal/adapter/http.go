package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-session-client/internal/config"
	"github.com/MKhiriev/go-auth-session-client/internal/logger"
	"github.com/MKhiriev/go-auth-session-client/internal/utils"
)

// TraceIDHeader carries the per-request trace ID.
const TraceIDHeader = "X-Trace-ID"

type httpTransport struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPTransport constructs the resty-backed implementation of
// [Transport]. cfg.RequestTimeout bounds each request (zero disables the
// timeout) and cfg.UserAgent, when set, is sent with every request.
func NewHTTPTransport(cfg config.ClientConfig, logger *logger.Logger) Transport {
	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:   cfg.RequestTimeout,
		UserAgent: cfg.UserAgent,
	})

	return &httpTransport{client: client, ids: utils.NewUUIDGenerator(), logger: logger}
}

// FetchData implements [Transport].
func (h *httpTransport) FetchData(ctx context.Context, url string) (*Response, error) {
	return h.do(ctx, OpFetch, http.MethodGet, url, nil)
}

// PatchData implements [Transport].
func (h *httpTransport) PatchData(ctx context.Context, url string, body any) (*Response, error) {
	return h.do(ctx, OpPatch, http.MethodPatch, url, body)
}

// DeleteData implements [Transport].
func (h *httpTransport) DeleteData(ctx context.Context, url string) (*Response, error) {
	return h.do(ctx, OpDelete, http.MethodDelete, url, nil)
}

func (h *httpTransport) do(ctx context.Context, op, method, url string, body any) (*Response, error) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.ids.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, url)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("method", method).
			Str("url", url).
			Str("trace_id", traceID).
			Msg("request failed")
		return nil, &TransportError{Op: op, URL: url, Err: err}
	}

	h.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Str("trace_id", traceID).
		Send()

	if err = statusError(op, resp); err != nil {
		return nil, &TransportError{Op: op, URL: url, Err: err}
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
