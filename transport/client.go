// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"rivaas.dev/reddit/reference"
)

// Client talks to the reddit API over HTTP. It is safe for concurrent use.
type Client struct {
	baseURL         string
	base            *url.URL
	userAgent       string
	http            *http.Client
	timeout         time.Duration
	tokens          TokenSource
	maxResponseSize int64
	logger          *slog.Logger
}

var _ reference.Client = (*Client)(nil)

// New returns a Client configured by opts.
//
// Errors:
//   - [ErrInvalidBaseURL] when the base URL is not absolute
//   - [ErrMissingUserAgent] when the user agent was set to ""
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:         DefaultBaseURL,
		userAgent:       DefaultUserAgent,
		http:            &http.Client{},
		timeout:         DefaultTimeout,
		maxResponseSize: DefaultMaxResponseSize,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.userAgent == "" {
		return nil, ErrMissingUserAgent
	}

	base, err := url.Parse(strings.TrimSuffix(c.baseURL, "/"))
	if err != nil || !base.IsAbs() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.baseURL)
	}
	c.base = base

	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	return c, nil
}

// MustNew is like [New] but panics on error.
func MustNew(opts ...Option) *Client {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Execute posts req to its endpoint. A 2xx response carrying reddit
// errors is still a failure.
func (c *Client) Execute(ctx context.Context, req reference.Request) (reference.Result, error) {
	target := req.FullName()
	fail := func(status int, err error) *reference.TransportError {
		return &reference.TransportError{Operation: req.Operation, Target: target, StatusCode: status, Err: err}
	}

	ep, ok := endpoints[req.Operation]
	if !ok {
		return reference.Result{}, fail(0, fmt.Errorf("%w: %q", ErrUnknownOperation, string(req.Operation)))
	}

	form := make(url.Values, len(req.Params)+2)
	for k, v := range req.Params {
		form[k] = slices.Clone(v)
	}
	form.Set(ep.idParam, target)
	form.Set("api_type", "json")

	status, body, err := c.do(ctx, http.MethodPost, ep.path, nil, form)
	result := reference.Result{StatusCode: status, Body: body}
	if err != nil {
		return result, fail(status, err)
	}
	if apiErr := firstAPIError(body); apiErr != nil {
		return result, fail(status, apiErr)
	}

	return result, nil
}

// Fetch GETs path with query and returns the body.
func (c *Client) Fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	q := make(url.Values, len(query)+1)
	for k, v := range query {
		q[k] = slices.Clone(v)
	}
	q.Set("raw_json", "1")

	status, body, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, &reference.TransportError{Target: path, StatusCode: status, Err: err}
	}

	return body, nil
}

func (c *Client) do(ctx context.Context, method, path string, query, form url.Values) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	status, body, err := c.roundTrip(ctx, method, path, query, form)

	attrs := []any{
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("duration", time.Since(start)),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	c.logger.DebugContext(ctx, "reddit api call", attrs...)

	return status, body, err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query, form url.Values) (int, []byte, error) {
	u := c.base.JoinPath(path)
	u.RawQuery = query.Encode()

	var payload io.Reader
	if form != nil {
		payload = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if c.tokens != nil {
		token, tokenErr := c.tokens.Token(ctx)
		if tokenErr != nil {
			return 0, nil, fmt.Errorf("%w: %w", ErrToken, tokenErr)
		}
		req.Header.Set("Authorization", "bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := c.read(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, body, ErrUnexpectedStatus
	}

	return resp.StatusCode, body, nil
}

func (c *Client) read(r io.Reader) ([]byte, error) {
	if c.maxResponseSize <= 0 {
		return io.ReadAll(r)
	}

	body, err := io.ReadAll(io.LimitReader(r, c.maxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > c.maxResponseSize {
		return nil, fmt.Errorf("%w: over %d bytes", ErrResponseTooLarge, c.maxResponseSize)
	}

	return body, nil
}

// apiErrors is reddit's api_type=json error wrapper.
type apiErrors struct {
	JSON struct {
		Errors [][]string `json:"errors"`
	} `json:"json"`
}

func firstAPIError(body []byte) *APIError {
	var env apiErrors
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}

	for _, e := range env.JSON.Errors {
		if len(e) == 0 {
			continue
		}

		apiErr := &APIError{Code: e[0]}
		if len(e) > 1 {
			apiErr.Message = e[1]
		}
		if len(e) > 2 {
			apiErr.Field = e[2]
		}

		return apiErr
	}

	return nil
}
