package web

import (
	"bufio"
	"net"
	"net/http"
)

// ResponseWriter wraps http.ResponseWriter to track write status and size,
// run hooks before the first write (session save, cookie flush), and
// rewrite non-200 statuses to 200 for HTMX requests so hx-swap still
// processes the response body.
type ResponseWriter struct {
	http.ResponseWriter
	status      int
	size        int64
	written     bool
	isHTMX      bool
	beforeWrite []func()
}

// NewResponseWriter wraps w. When isHTMX is true, non-200 statuses are
// written to the wire as 200.
func NewResponseWriter(w http.ResponseWriter, isHTMX bool) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		status:         http.StatusOK,
		isHTMX:         isHTMX,
	}
}

// OnBeforeWrite registers a hook to run once, right before headers are sent.
// Hooks run in registration order.
func (w *ResponseWriter) OnBeforeWrite(fn func()) {
	w.beforeWrite = append(w.beforeWrite, fn)
}

func (w *ResponseWriter) runHooks() {
	hooks := w.beforeWrite
	w.beforeWrite = nil
	for _, fn := range hooks {
		fn()
	}
}

func (w *ResponseWriter) WriteHeader(code int) {
	if w.written {
		return
	}
	w.written = true
	w.status = code
	w.runHooks()

	if w.isHTMX && code != http.StatusOK {
		code = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(w.status)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += int64(n)
	return n, err
}

// Status returns the status code recorded for the response. For HTMX
// requests this is the logical status, not the rewritten wire status.
func (w *ResponseWriter) Status() int {
	return w.status
}

// Size returns the number of body bytes written so far.
func (w *ResponseWriter) Size() int64 {
	return w.size
}

// Written reports whether headers have been sent.
func (w *ResponseWriter) Written() bool {
	return w.written
}

func (w *ResponseWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (w *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Unwrap returns the wrapped writer for middleware that needs it.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
