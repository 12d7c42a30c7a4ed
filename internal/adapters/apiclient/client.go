package apiclient

// Package apiclient is the HTTP client for the planboard backend. Every
// request attaches the current bearer token from the token source, and any
// 401 response fires the invalidation hook so the session layer can drop
// the credential globally, whichever call tripped it.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/planboard/planboard/internal/errors"
)

const defaultTimeout = 30 * time.Second

// TokenSource returns the current bearer token, empty when anonymous.
type TokenSource func() string

// InvalidateFunc is called once per 401 response with a short reason.
type InvalidateFunc func(ctx context.Context, reason string)

// Client issues authenticated JSON requests against the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
	invalidate InvalidateFunc
}

// Options holds configuration for the Client.
type Options struct {
	// BaseURL is the backend root, e.g. "http://localhost:8000".
	BaseURL string

	// Token supplies the bearer token per request. Nil means no
	// Authorization header is ever sent.
	Token TokenSource

	// OnUnauthorized fires on every 401 response. Optional.
	OnUnauthorized InvalidateFunc

	// HTTPClient overrides the default client. Optional.
	HTTPClient *http.Client
}

// New creates a Client.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, apperrors.Validation("API base URL is required")
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "Invalid API base URL")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		httpClient: httpClient,
		token:      opts.Token,
		invalidate: opts.OnUnauthorized,
	}, nil
}

// do runs one request. body is JSON-encoded when non-nil; out is decoded
// into when non-nil and the response carries a body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "Could not reach the server")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(ctx, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "Unexpected response from the server")
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// errorDetail is the backend's error envelope, {"detail": "..."}.
type errorDetail struct {
	Detail string `json:"detail"`
}

func (c *Client) errorFromResponse(ctx context.Context, resp *http.Response) error {
	var detail errorDetail
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(data, &detail)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if c.invalidate != nil {
			c.invalidate(ctx, "unauthorized response from "+resp.Request.URL.Path)
		}
		return apperrors.Auth(messageOr(detail.Detail, "Your session has expired. Please log in again."))
	case http.StatusForbidden:
		return apperrors.Auth(messageOr(detail.Detail, "You don't have permission to do that"))
	case http.StatusNotFound:
		return apperrors.NotFound(messageOr(detail.Detail, "Not found"))
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return apperrors.Validation(messageOr(detail.Detail, "The server rejected the request"))
	default:
		return apperrors.Transport(fmt.Sprintf("Server error (%d)", resp.StatusCode))
	}
}

func messageOr(detail, fallback string) string {
	if strings.TrimSpace(detail) != "" {
		return detail
	}
	return fallback
}
