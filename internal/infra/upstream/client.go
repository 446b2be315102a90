package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"arttoy-storefront/internal/infra"
	"arttoy-storefront/internal/pkg/config"
)

// Client is the only way the gateway talks to the backend that owns the
// catalog, the order ledger and authentication. Every response body follows
// the `{ "data": ... }` envelope; errors carry `{ "message": ... }`.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
}

// do runs one upstream round trip. token is attached as a bearer credential
// when non-empty; out, when non-nil, receives the decoded `data` payload.
func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return infra.WrapUpstreamErr(c.logger, infra.KindBadRequest, 0, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindBadRequest, 0, "failed to build upstream request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, 0, "upstream unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, resp.StatusCode, "failed to read upstream response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, resp.StatusCode, "malformed upstream response", err)
	}
	payload := env.Data
	if payload == nil {
		// Some endpoints (login) respond without the envelope.
		payload = raw
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, resp.StatusCode, "malformed upstream payload", err)
	}
	return nil
}

func (c *Client) statusError(status int, raw []byte) error {
	msg := "upstream request failed"
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Message != "" {
		msg = eb.Message
	}

	kind := infra.KindUnavailable
	switch status {
	case http.StatusUnauthorized:
		kind = infra.KindUnauthenticated
	case http.StatusForbidden:
		kind = infra.KindForbidden
	case http.StatusNotFound:
		kind = infra.KindNotFound
	case http.StatusConflict:
		kind = infra.KindConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = infra.KindBadRequest
	}
	return infra.WrapUpstreamErr(c.logger, kind, status, msg, nil)
}
