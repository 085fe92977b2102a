package web

import (
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func TestNewRequest_QueryParsing(t *testing.T) {
	r := httptest.NewRequest("GET", "/search?user=Alice&tag=a&tag=b", nil)
	req := NewRequest(r)

	if req.Method != "GET" {
		t.Fatalf("expected method GET, got %q", req.Method)
	}
	if req.Path != "/search" {
		t.Fatalf("expected path /search, got %q", req.Path)
	}
	if got := req.Query["user"]; !reflect.DeepEqual(got, []string{"Alice"}) {
		t.Fatalf("expected user=[Alice], got %v", got)
	}
	if got := req.Query["tag"]; !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected tag=[a b], got %v", got)
	}
}

func TestNewRequest_URLDecodedValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/?q=hello%20world", nil)
	req := NewRequest(r)
	if got := req.Query.Get("q"); got != "hello world" {
		t.Fatalf("expected decoded value, got %q", got)
	}
}

func TestNewRequest_Headers(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Custom-Header", "value")
	r.Header.Set("Accept", "text/html")
	req := NewRequest(r)

	if req.Headers["X-Custom-Header"] != "value" {
		t.Fatalf("expected custom header, got %v", req.Headers)
	}
	if req.Headers["Accept"] != "text/html" {
		t.Fatalf("expected accept header, got %v", req.Headers)
	}
}

func TestNewRequest_BodyContentLength(t *testing.T) {
	r := httptest.NewRequest("POST", "/echo", strings.NewReader("hello"))
	r.Header.Set("Content-Length", "5")
	req := NewRequest(r)
	if string(req.Body) != "hello" {
		t.Fatalf("expected body hello, got %q", req.Body)
	}
}

func TestNewRequest_BodyMalformedLength(t *testing.T) {
	for _, cl := range []string{"", "abc", "-3", "0"} {
		r := httptest.NewRequest("POST", "/echo", strings.NewReader("hello"))
		if cl != "" {
			r.Header.Set("Content-Length", cl)
		} else {
			r.Header.Del("Content-Length")
		}
		req := NewRequest(r)
		if len(req.Body) != 0 {
			t.Fatalf("Content-Length %q: expected empty body, got %q", cl, req.Body)
		}
	}
}

func TestNewRequest_DefaultPath(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.URL.Path = ""
	req := NewRequest(r)
	if req.Path != "/" {
		t.Fatalf("expected default path /, got %q", req.Path)
	}
}
