package web

import "log/slog"

// Middleware observes a request before routing. Implementations may emit
// side effects (logging, counting) but must not mutate the request or
// produce a response; the dispatcher discards any state they build.
type Middleware interface {
	ProcessRequest(*Request)
}

// MiddlewareFunc adapts a plain function to the Middleware interface.
type MiddlewareFunc func(*Request)

func (f MiddlewareFunc) ProcessRequest(r *Request) { f(r) }

// Constructor builds one middleware instance per request. The dispatcher
// passes itself so implementations can reach shared framework state.
type Constructor func(*Dispatcher) Middleware

// RequestLogger logs one line per incoming request through an injected
// logger rather than a hard-wired console.
type RequestLogger struct {
	Log *slog.Logger
}

func (m *RequestLogger) ProcessRequest(r *Request) {
	if m.Log == nil {
		return
	}
	m.Log.Info("incoming_request", "method", r.Method, "path", r.Path, "remote", r.RemoteAddr)
}

// NewRequestLogger returns a middleware constructor bound to log.
func NewRequestLogger(log *slog.Logger) Constructor {
	return func(*Dispatcher) Middleware { return &RequestLogger{Log: log} }
}
