package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration, loaded from YAML with env and
// flag overrides layered on top (flags win over env, env over file).
type Config struct {
	Server struct {
		Address string `yaml:"address"`
		Port    int    `yaml:"port"`
	} `yaml:"server"`
	Static struct {
		Dir    string `yaml:"dir"`
		Prefix string `yaml:"prefix"`
	} `yaml:"static"`
	Templates struct {
		Dir string `yaml:"dir"`
	} `yaml:"templates"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Addr returns host:port for the HTTP server with defaults applied.
func (c *Config) Addr() string {
	addr := c.Server.Address
	if addr == "" {
		addr = "0.0.0.0"
	}
	p := c.Server.Port
	if p == 0 {
		p = 8000
	}
	return fmt.Sprintf("%s:%d", addr, p)
}

// StaticDir returns the static files root with the default applied.
func (c *Config) StaticDir() string {
	if c.Static.Dir == "" {
		return "./static"
	}
	return c.Static.Dir
}

// StaticPrefix returns the static URL prefix with the default applied.
func (c *Config) StaticPrefix() string {
	if c.Static.Prefix == "" {
		return "/static/"
	}
	return c.Static.Prefix
}

// TemplateDir returns the templates root with the default applied.
func (c *Config) TemplateDir() string {
	if c.Templates.Dir == "" {
		return "./templates"
	}
	return c.Templates.Dir
}

// Load reads and parses the YAML config file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadEnvOverrides applies environment overrides onto cfg and reports
// whether any env vars were used.
func LoadEnvOverrides(cfg *Config) bool {
	envUsed := false
	if v := os.Getenv("STATICFRAMEWORK_ADDR"); v != "" {
		envUsed = true
		cfg.Server.Address = v
		cfg.Server.Port = 0
		// host:port values keep the port part
		if host, port, err := splitHostPort(v); err == nil {
			cfg.Server.Address = host
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("STATICFRAMEWORK_STATIC_DIR"); v != "" {
		envUsed = true
		cfg.Static.Dir = v
	}
	if v := os.Getenv("STATICFRAMEWORK_STATIC_PREFIX"); v != "" {
		envUsed = true
		cfg.Static.Prefix = v
	}
	if v := os.Getenv("STATICFRAMEWORK_TEMPLATE_DIR"); v != "" {
		envUsed = true
		cfg.Templates.Dir = v
	}
	if v := os.Getenv("STATICFRAMEWORK_LOG_LEVEL"); v != "" {
		envUsed = true
		cfg.Logging.Level = v
	}
	return envUsed
}

// LoadEffective loads config from path (an absent file yields defaults) and
// applies environment overrides. It returns the effective config and whether
// env vars contributed.
func LoadEffective(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}
	envUsed := LoadEnvOverrides(cfg)
	return cfg, envUsed, nil
}

// ResolveConfigPath decides the config file path using the flag-provided
// value and STATICFRAMEWORK_CONFIG when the flag was not set.
func ResolveConfigPath(flagPath string, flagSet bool) string {
	if flagSet {
		return flagPath
	}
	if p := os.Getenv("STATICFRAMEWORK_CONFIG"); p != "" {
		return p
	}
	return flagPath
}

// Flags holds parsed command-line flag values and which were explicitly set.
type Flags struct {
	Addr        string
	Config      string
	StaticDir   string
	TemplateDir string
	Set         map[string]bool
}

// ParseCommandFlags defines and parses the command-line flags.
func ParseCommandFlags() Flags {
	addrPtr := flag.String("addr", ":8000", "HTTP listen address")
	cfgPtr := flag.String("config", "./config.yaml", "Path to config file")
	staticPtr := flag.String("static", "./static", "Static files root")
	tmplPtr := flag.String("templates", "./templates", "Template files root")
	flag.Parse()
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return Flags{Addr: *addrPtr, Config: *cfgPtr, StaticDir: *staticPtr, TemplateDir: *tmplPtr, Set: set}
}
