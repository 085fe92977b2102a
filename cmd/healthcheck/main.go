package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/valyala/fasthttp"
)

// Small liveness probe for deployment systems and CI: exits 0 when the
// server answers /healthz with 200 within the timeout, 1 otherwise.
func main() {
	url := flag.String("url", "http://localhost:8000/healthz", "health endpoint to probe")
	timeout := flag.Duration("timeout", 3*time.Second, "request timeout")
	flag.Parse()

	c := &fasthttp.Client{}
	status, body, err := c.GetTimeout(nil, *url, *timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck failed: %v\n", err)
		os.Exit(1)
	}
	if status != fasthttp.StatusOK {
		fmt.Fprintf(os.Stderr, "healthcheck failed: status %d: %s\n", status, body)
		os.Exit(1)
	}
	fmt.Printf("ok: %s\n", body)
}
