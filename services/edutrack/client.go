// Package edusvc is the HTTP client for the EduTrack backend REST API. It
// centralizes outbound request concerns: bearer credentials, request IDs,
// JSON/multipart encoding and the global 401 handling every screen relies on.
package edusvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TokenSource returns the current bearer token, or "" when logged out.
// It is read on every request so the client always sees the live session.
type TokenSource func() string

// Client talks to the backend. All methods are safe for concurrent use.
type Client struct {
	baseURL        string
	http           *http.Client
	tokenSource    TokenSource
	onUnauthorized func()
	demoMode       bool
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokenSource = ts }
}

// WithOnUnauthorized injects the handler invoked whenever any call fails with
// HTTP 401. The caller decides what "force to login" means; the client itself
// never touches session state.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithDemoMode substitutes canned sample collections when the backend has no
// data for leave requests or notices. Development only.
func WithDemoMode(enabled bool) Option {
	return func(c *Client) { c.demoMode = enabled }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// send marshals body as JSON and decodes the response into out (both optional).
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		reader = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, query, reader, "application/json", out)
}

// Upload is a binary attachment (profile image) carried by a form submission.
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// sendForm submits fields as multipart form data, attaching the upload when
// present. Multipart is used whenever a draft includes a binary attachment.
func (c *Client) sendForm(ctx context.Context, method, path string, fields map[string]string, upload *Upload, out interface{}) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return errors.Wrap(err, "encoding form field")
		}
	}
	if upload != nil {
		fw, err := mw.CreateFormFile(upload.Field, upload.Filename)
		if err != nil {
			return errors.Wrap(err, "encoding form file")
		}
		if _, err := fw.Write(upload.Content); err != nil {
			return errors.Wrap(err, "writing form file")
		}
	}
	if err := mw.Close(); err != nil {
		return errors.Wrap(err, "closing multipart writer")
	}
	return c.do(ctx, method, path, nil, &body, mw.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return errors.Wrapf(err, "building request %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}
	if res.StatusCode >= 400 {
		return decodeAPIError(res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", method, path)
	}
	return nil
}
