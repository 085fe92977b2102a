package web

import (
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"staticframework/pkg/logger"
)

// StaticServer resolves request paths under Root and serves file bytes with
// an extension-guessed content type.
type StaticServer struct {
	Root   string
	Prefix string
}

// NewStaticServer returns a StaticServer for root and URL prefix, defaulting
// to ./static and /static/.
func NewStaticServer(root, prefix string) *StaticServer {
	if root == "" {
		root = "./static"
	}
	if prefix == "" {
		prefix = "/static/"
	}
	return &StaticServer{Root: root, Prefix: prefix}
}

// Serve returns a Response for rel, which must already have the URL prefix
// stripped. The path is cleaned against the root so it cannot escape it; a
// path that resolves outside Root, does not exist or is not a regular file
// yields a 404 response.
func (s *StaticServer) Serve(rel string) *Response {
	// Cleaning a rooted copy of the input collapses any ".." segments before
	// joining, so the resolved path always stays under Root.
	clean := filepath.Clean("/" + strings.TrimLeft(rel, "/"))
	full := filepath.Join(s.Root, clean)

	fi, err := os.Stat(full)
	if err != nil || !fi.Mode().IsRegular() {
		return s.notFound()
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return s.notFound()
	}

	ctype := mime.TypeByExtension(filepath.Ext(full))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	resp := NewResponse(data)
	resp.SetHeader("Content-Type", ctype)
	logger.Debug("static_served", "path", clean, "type", ctype, "size", humanize.Bytes(uint64(len(data))))
	return resp
}

func (s *StaticServer) notFound() *Response {
	resp := NewTextResponse("<h1>404 Not Found</h1><p>Static file not found.</p>")
	resp.Status = 404
	resp.SetHeader("Content-Type", "text/html")
	return resp
}
