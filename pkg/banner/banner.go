package banner

import (
	"fmt"

	"staticframework/pkg/config"
)

const banner = `
███████╗████████╗ █████╗ ████████╗██╗ ██████╗███████╗██╗    ██╗
██╔════╝╚══██╔══╝██╔══██╗╚══██╔══╝██║██╔════╝██╔════╝██║    ██║
███████╗   ██║   ███████║   ██║   ██║██║     █████╗  ██║ █╗ ██║
╚════██║   ██║   ██╔══██║   ██║   ██║██║     ██╔══╝  ██║███╗██║
███████║   ██║   ██║  ██║   ██║   ██║╚██████╗██║     ╚███╔███╔╝
╚══════╝   ╚═╝   ╚═╝  ╚═╝   ╚═╝   ╚═╝ ╚═════╝╚═╝      ╚══╝╚══╝
`

// Print writes the startup banner with the effective runtime configuration.
func Print(cfg *config.Config, sources, version string) {
	fmt.Print(banner)
	fmt.Println("== Config =====================================================")
	fmt.Printf("Listen:     %s\n", cfg.Addr())
	fmt.Printf("Static:     %s (prefix %s)\n", cfg.StaticDir(), cfg.StaticPrefix())
	fmt.Printf("Templates:  %s\n", cfg.TemplateDir())
	if version != "" {
		fmt.Printf("Version:    %s\n", version)
	}
	if sources != "" {
		fmt.Printf("Config sources: %s\n", sources)
	}
	fmt.Println("\n== Endpoints ==================================================")
	fmt.Println("GET  /            - Home page rendered from templates/index.html")
	fmt.Println("GET  /hello       - Plain greeting")
	fmt.Println("GET  /user?name=<n>&age=<a> - Query parameter echo")
	fmt.Println("GET  /api/data    - JSON response")
	fmt.Println("GET  /static/...  - Static assets")
	fmt.Println("GET  /metrics     - Prometheus metrics")
	fmt.Println("\n== Examples ===================================================")
	fmt.Printf("curl 'http://localhost%s/hello'\n", portSuffix(cfg))
	fmt.Printf("curl 'http://localhost%s/?user=Bob'\n", portSuffix(cfg))
}

func portSuffix(cfg *config.Config) string {
	p := cfg.Server.Port
	if p == 0 {
		p = 8000
	}
	return fmt.Sprintf(":%d", p)
}
