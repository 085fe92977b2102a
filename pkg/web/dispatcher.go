package web

import (
	"fmt"
	"net/http"
	"strings"

	"staticframework/pkg/logger"
)

// Handler handles one matched request. It returns either a complete
// *Response or a Text body; a non-nil error becomes a 500 response.
type Handler func(*Request) (Result, error)

// route is one registration: exact path, accepted methods, handler.
type route struct {
	path    string
	methods map[string]struct{}
	handler Handler
}

// Dispatcher owns the route table and middleware list and turns transport
// requests into responses. Registration must finish before serving starts;
// the table is read-only afterwards, so concurrent requests need no locking.
type Dispatcher struct {
	routes     []route
	middleware []Constructor
	static     *StaticServer
	templates  *Renderer
}

// NewDispatcher returns a Dispatcher serving static files through static and
// exposing templates to handlers. Either may be nil to disable the feature.
func NewDispatcher(static *StaticServer, templates *Renderer) *Dispatcher {
	return &Dispatcher{static: static, templates: templates}
}

// Handle registers handler for path under the given methods. Conflicting
// registrations are legal; the first match in registration order wins.
func (d *Dispatcher) Handle(path string, methods []string, h Handler) {
	ms := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		ms[m] = struct{}{}
	}
	d.routes = append(d.routes, route{path: path, methods: ms, handler: h})
}

// Use appends a middleware constructor. A fresh instance runs per request,
// in registration order, before routing.
func (d *Dispatcher) Use(c Constructor) {
	d.middleware = append(d.middleware, c)
}

// Templates returns the renderer so handlers can render named templates.
func (d *Dispatcher) Templates() *Renderer {
	return d.templates
}

// ServeHTTP runs the per-request state machine: parse, middleware pass,
// static check, route match, handler invocation with fault recovery, emit.
// Every path through it terminates in exactly one emitted response.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := NewRequest(r)

	// Middleware faults are deliberately not recovered here: a panicking
	// middleware is a programming error and propagates to the transport.
	for _, c := range d.middleware {
		c(d).ProcessRequest(req)
	}

	if d.static != nil && strings.HasPrefix(req.Path, d.static.Prefix) {
		d.emit(w, d.static.Serve(strings.TrimPrefix(req.Path, d.static.Prefix)))
		return
	}

	h := d.match(req)
	if h == nil {
		d.emit(w, notFoundResponse())
		return
	}
	d.emit(w, d.invoke(h, req))
}

// match scans the route table in registration order and returns the first
// handler whose path equals the request path exactly and whose method set
// contains the request method.
func (d *Dispatcher) match(req *Request) Handler {
	for _, rt := range d.routes {
		if rt.path != req.Path {
			continue
		}
		if _, ok := rt.methods[req.Method]; ok {
			return rt.handler
		}
	}
	return nil
}

// invoke calls the handler and converts its result, any returned error and
// any panic into a Response. The server keeps serving after a handler fault.
func (d *Dispatcher) invoke(h Handler, req *Request) (resp *Response) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("handler_panic", "path", req.Path, "error", rec)
			resp = errorResponse(fmt.Sprint(rec))
		}
	}()

	res, err := h(req)
	if err != nil {
		logger.Error("handler_error", "path", req.Path, "error", err)
		return errorResponse(err.Error())
	}
	switch v := res.(type) {
	case *Response:
		if v != nil {
			return v
		}
	case Text:
		return textResponse(string(v))
	}
	// nil result with nil error: treat as an empty text body.
	return textResponse("")
}

// emit hands the finished response to the transport callback.
func (d *Dispatcher) emit(w http.ResponseWriter, resp *Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
	logger.Debug("request_complete", "status", resp.StatusLine(), "bytes", len(resp.Body))
}

func textResponse(body string) *Response {
	resp := NewTextResponse(body)
	resp.SetHeader("Content-Type", "text/html")
	return resp
}

func notFoundResponse() *Response {
	resp := textResponse("<h1>404 Not Found</h1><p>Route not found.</p>")
	resp.Status = 404
	return resp
}

func errorResponse(msg string) *Response {
	resp := textResponse("<h1>500 Internal Server Error</h1><pre>" + msg + "</pre>")
	resp.Status = 500
	return resp
}
