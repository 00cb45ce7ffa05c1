// ./internal/remote/remote.go

// Package remote implements a precise ayanamsa source backed by another
// jyotish server's /api/ayanamsa endpoint.
package remote

/*
Package remote provides the HTTP ayanamsa source.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.

Authorship:
Mohammad Shafiee authored this Go code.
*/

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/mshafiee/jyotish/ayanamsa"
)

// ErrBadResponse is returned when the server replied with something other
// than an ayanamsa value.
var ErrBadResponse = errors.New("bad ayanamsa response")

// maxBody bounds how much of a response is read.
const maxBody = 1 << 16

// Client is an ayanamsa.Source over HTTP.
type Client struct {
	base *url.URL
	http *retryablehttp.Client
}

var _ ayanamsa.Source = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithRetries sets the retry count and the backoff bounds.
func WithRetries(max int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.http.RetryMax = max
		c.http.RetryWaitMin = waitMin
		c.http.RetryWaitMax = waitMax
	}
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http.HTTPClient = hc }
}

// New returns a client for the server at baseURL, e.g. "http://host:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid remote URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid remote URL %q: scheme must be http or https", baseURL)
	}

	rc := retryablehttp.NewClient()
	rc.Logger = log.New(io.Discard, "", 0)
	rc.RetryMax = 3
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = time.Second

	c := &Client{base: u, http: rc}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Ayanamsa implements ayanamsa.Source.
func (c *Client) Ayanamsa(ctx context.Context, jd float64, std ayanamsa.Standard) (float64, error) {
	u := *c.base
	u.Path += "/api/ayanamsa"
	q := url.Values{}
	q.Set("jd", strconv.FormatFloat(jd, 'f', -1, 64))
	if std != "" {
		q.Set("standard", string(std))
	}
	u.RawQuery = q.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("requesting %s: %w", u.Redacted(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return 0, fmt.Errorf("reading response: %w", err)
	}
	return parse(resp.StatusCode, body)
}

func parse(status int, body []byte) (float64, error) {
	if !gjson.ValidBytes(body) {
		return 0, fmt.Errorf("%w: status %d, body is not JSON", ErrBadResponse, status)
	}
	if status != http.StatusOK {
		msg := gjson.GetBytes(body, "error").String()
		if d := gjson.GetBytes(body, "details").String(); d != "" {
			msg += ": " + d
		}
		if strings.Contains(strings.ToLower(msg), "unknown sidereal standard") {
			return 0, fmt.Errorf("%w: %s", ayanamsa.ErrUnknownStandard, msg)
		}
		return 0, fmt.Errorf("%w: status %d: %s", ErrBadResponse, status, msg)
	}
	v := gjson.GetBytes(body, "ayanamsa")
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%w: missing ayanamsa field", ErrBadResponse)
	}
	return v.Float(), nil
}
