package web

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Request is the framework's view of one incoming HTTP request. It is built
// once from the transport request and is not mutated afterwards; the
// dispatcher owns it for the duration of handling.
type Request struct {
	Method     string
	Path       string
	Query      url.Values
	Headers    map[string]string
	Body       []byte
	RemoteAddr string
}

// NewRequest builds a Request from the transport-level request. Query
// parameters are form-decoded and repeated keys accumulate in order. Headers
// keep their canonical names with the first value. The body is read only
// when Content-Length declares a positive byte count; a missing or
// malformed length means an empty body, not an error. Method and path are
// accepted verbatim, no validation.
func NewRequest(r *http.Request) *Request {
	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	query, _ := url.ParseQuery(r.URL.RawQuery)

	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		if len(v) == 0 {
			continue
		}
		headers[k] = v[0]
	}

	var body []byte
	if n, err := strconv.Atoi(r.Header.Get("Content-Length")); err == nil && n > 0 && r.Body != nil {
		body = make([]byte, n)
		read, _ := io.ReadFull(r.Body, body)
		body = body[:read]
	}

	return &Request{
		Method:     r.Method,
		Path:       path,
		Query:      query,
		Headers:    headers,
		Body:       body,
		RemoteAddr: r.RemoteAddr,
	}
}
