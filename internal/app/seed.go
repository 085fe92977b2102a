package app

import (
	"os"
	"path/filepath"
)

const defaultTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>StaticFramework</title>
    <link rel="stylesheet" href="/static/style.css">
</head>
<body>
    <div class="container">
        <div class="nav">
            <a href="/">Home</a>
            <a href="/hello">Hello</a>
            <a href="/api/data">API</a>
        </div>
        <h1>Welcome, {{ user }}!</h1>
        <p>This page is rendered from templates/index.html.</p>
    </div>
</body>
</html>
`

const defaultCSS = `body { font-family: Arial, sans-serif; background: #f0f0f0; margin: 0; padding: 20px; }
.container { max-width: 800px; margin: auto; background: white; padding: 30px; border-radius: 8px; }
.nav { background: #007bff; color: white; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
.nav a { color: white; margin-right: 20px; text-decoration: none; font-weight: bold; }
.nav a:hover { text-decoration: underline; }
`

// EnsureDemoFiles creates the static and template roots and seeds the demo
// index template and stylesheet when missing. Existing files are left alone.
func EnsureDemoFiles(staticDir, templateDir string) error {
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(templateDir, 0o755); err != nil {
		return err
	}
	if err := writeIfMissing(filepath.Join(templateDir, "index.html"), defaultTemplate); err != nil {
		return err
	}
	return writeIfMissing(filepath.Join(staticDir, "style.css"), defaultCSS)
}

func writeIfMissing(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
