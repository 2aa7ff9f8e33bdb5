package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// SessionCookie is the name of the backend's session cookie.
const SessionCookie = "session"

var _ Backend = (*Client)(nil)

// Client talks to the backend REST API. It is safe for concurrent use;
// WithSession derives a per-user view without copying the transport.
type Client struct {
	base   *url.URL
	client *http.Client
	token  string
}

func New(base *url.URL, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{}
	}
	return &Client{base: base, client: client}
}

func (c *Client) WithSession(token string) Backend {
	derived := *c
	derived.token = token
	return &derived
}

// roundTrip performs one request and returns the response together with the
// already-read body. 401 and 404 are valid answers here: the backend uses
// them for "not logged in" and "not found" payloads that still carry JSON
// the caller wants. Every other non-2xx status is a transport failure.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, payload any) (*http.Response, []byte, error) {
	u := c.base.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: c.token})
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	content, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, err
	}

	ok := res.StatusCode >= 200 && res.StatusCode < 300
	if !ok && res.StatusCode != http.StatusUnauthorized && res.StatusCode != http.StatusNotFound {
		log.Error().Str("status", res.Status).Str("path", path).Bytes("response", content).Msg("backend request failed")
		return nil, nil, fmt.Errorf("%d %s: %s", res.StatusCode, res.Status, content)
	}

	return res, content, nil
}

// do runs one JSON round trip and decodes the answer into out, which may be
// nil when the caller only cares about success. A decoded body carrying an
// error field becomes a *RemoteError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	_, content, err := c.roundTrip(ctx, method, path, query, payload)
	if err != nil {
		return err
	}

	if err := remoteError(content); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(content, out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("response body unmarshaling error")
		return err
	}
	return nil
}

// remoteError probes a JSON object body for the backend's error field.
// Array bodies (feeds, comment lists) never carry one.
func remoteError(content []byte) error {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil
	}
	if probe.Error != "" {
		return &RemoteError{Message: probe.Error}
	}
	return nil
}

// sessionToken extracts the backend session cookie from a response, falling
// back to the client's current token when the backend did not rotate it.
func (c *Client) sessionToken(res *http.Response) string {
	for _, cookie := range res.Cookies() {
		if cookie.Name == SessionCookie {
			return cookie.Value
		}
	}
	return c.token
}
