package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Fallback error message for transport failures that carry no message.
const networkErrorMessage = "Network error occurred"

// Result is the outcome of a backend call.
// Exactly one of Data or Error is populated, never both, never neither.
type Result[T any] struct {
	Data  *T
	Error string
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return r.Error == ""
}

// Value returns the payload, or the zero value when the call failed.
func (r Result[T]) Value() T {
	if r.Data != nil {
		return *r.Data
	}
	var zero T
	return zero
}

func Succeed[T any](v T) Result[T] {
	return Result[T]{Data: &v}
}

func Fail[T any](msg string) Result[T] {
	if msg == "" {
		msg = networkErrorMessage
	}
	return Result[T]{Error: msg}
}

// request performs one backend call and normalizes every outcome into a Result.
// The session's cookies ride on the request; Set-Cookie headers on the response
// are folded back into the session before the status is inspected, so auth
// cookies set alongside error responses are not lost.
func request[T any](ctx context.Context, c *Client, sess *Session, method, path string, payload any) Result[T] {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return Fail[T](err.Error())
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return Fail[T](err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if sess != nil {
		for name, value := range sess.cookies {
			req.AddCookie(&http.Cookie{Name: name, Value: value})
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Surface the transport error's own message; Fail falls back to
		// the generic one only when there is none.
		return Fail[T](err.Error())
	}
	defer resp.Body.Close() //nolint:errcheck

	if sess != nil {
		sess.absorb(resp.Cookies())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Fail[T](errorMessage(resp))
	}

	var data T
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Fail[T](err.Error())
	}
	return Succeed(data)
}

// errorMessage extracts a user-facing message from a non-2xx response.
// The backend reports validation and business errors in the body's "detail"
// field; anything else degrades to a generic message carrying the status code.
func errorMessage(resp *http.Response) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil && len(body.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(body.Detail, &detail); err == nil && detail != "" {
			return detail
		}
	}
	return fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
}
