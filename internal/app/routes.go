package app

import (
	"encoding/json"
	"fmt"
	"net/http"

	"staticframework/pkg/web"
)

// registerRoutes installs the demo routes on the dispatcher.
func registerRoutes(d *web.Dispatcher) {
	get := []string{http.MethodGet}

	d.Handle("/", get, func(r *web.Request) (web.Result, error) {
		user := r.Query.Get("user")
		if user == "" {
			user = "Anonymous"
		}
		return web.Text(d.Templates().Render("index.html", map[string]any{
			"user": user,
		})), nil
	})

	d.Handle("/hello", get, func(r *web.Request) (web.Result, error) {
		return web.Text("<h1>Hello from StaticFramework!</h1>"), nil
	})

	d.Handle("/user", get, func(r *web.Request) (web.Result, error) {
		name := r.Query.Get("name")
		if name == "" {
			name = "Anonymous"
		}
		age := r.Query.Get("age")
		if age == "" {
			age = "Unknown"
		}
		return web.Text(fmt.Sprintf("<h1>User Information</h1><p>Name: %s</p><p>Age: %s</p>", name, age)), nil
	})

	d.Handle("/api/data", get, func(r *web.Request) (web.Result, error) {
		b, err := json.Marshal(map[string]any{
			"message": "Hello from the StaticFramework API!",
			"method":  r.Method,
			"path":    r.Path,
			"params":  r.Query,
		})
		if err != nil {
			return nil, err
		}
		resp := web.NewResponse(b)
		resp.SetHeader("Content-Type", "application/json")
		return resp, nil
	})

	d.Handle("/echo", []string{http.MethodPost}, func(r *web.Request) (web.Result, error) {
		resp := web.NewResponse(r.Body)
		resp.SetHeader("Content-Type", "text/plain")
		return resp, nil
	})

	d.Handle("/healthz", get, func(r *web.Request) (web.Result, error) {
		resp := web.NewTextResponse(`{"status":"ok"}`)
		resp.SetHeader("Content-Type", "application/json")
		return resp, nil
	})

	// Always fails; demonstrates the dispatcher's 500 recovery path.
	d.Handle("/boom", get, func(r *web.Request) (web.Result, error) {
		return nil, fmt.Errorf("intentional failure")
	})
}
