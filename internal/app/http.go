package app

import (
	"context"
	"net/http"

	"staticframework/pkg/telemetry"
)

// startHTTP builds the handler stack, starts the HTTP server in a goroutine
// and returns a channel that will carry any server error.
func (a *App) startHTTP(_ context.Context) <-chan error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", telemetry.Handler())
	mux.Handle("/", a.dispatcher)

	wrapped := telemetry.Middleware(mux)
	a.srv = &http.Server{Addr: a.cfg.Addr(), Handler: wrapped}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.srv.ListenAndServe()
	}()
	return errCh
}
