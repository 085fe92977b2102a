package web

import "fmt"

// statusText maps the status codes this framework emits to their canonical
// reason phrase. Codes outside the table render as "<code> Unknown Status".
var statusText = map[int]string{
	200: "OK",
	201: "Created",
	204: "No Content",
	301: "Moved Permanently",
	302: "Found",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	500: "Internal Server Error",
}

// Response holds an outgoing body, status code and header mapping. It stays
// mutable until the dispatcher hands it to the transport.
type Response struct {
	Body    []byte
	Status  int
	Headers map[string]string
}

// NewResponse returns a Response carrying the given raw bytes with status
// 200 and an empty header mapping.
func NewResponse(body []byte) *Response {
	return &Response{Body: body, Status: 200, Headers: map[string]string{}}
}

// NewTextResponse returns a Response whose body is the UTF-8 encoding of s.
func NewTextResponse(s string) *Response {
	return NewResponse([]byte(s))
}

// SetHeader sets or overwrites a single header.
func (r *Response) SetHeader(key, value string) {
	if r.Headers == nil {
		r.Headers = map[string]string{}
	}
	r.Headers[key] = value
}

// StatusLine renders the response status as "<code> <ReasonPhrase>".
func (r *Response) StatusLine() string {
	if text, ok := statusText[r.Status]; ok {
		return fmt.Sprintf("%d %s", r.Status, text)
	}
	return fmt.Sprintf("%d Unknown Status", r.Status)
}

// Result is what a route handler produces: either a complete *Response or a
// Text body. The dispatcher resolves the two cases at emit time.
type Result interface {
	isResult()
}

// Text is a bare string body. The dispatcher wraps it into a 200 text/html
// response.
type Text string

func (Text) isResult()      {}
func (*Response) isResult() {}
