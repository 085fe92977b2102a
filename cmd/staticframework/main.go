package main

import (
	"context"
	"log"
	"net"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"staticframework/internal/app"
	"staticframework/pkg/config"
	"staticframework/pkg/logger"
)

func main() {
	// build metadata - set via ldflags during build/release
	version := "dev"

	_ = godotenv.Load(".env")
	flags := config.ParseCommandFlags()

	cfgPath := config.ResolveConfigPath(flags.Config, flags.Set["config"])
	cfg, envUsed, err := config.LoadEffective(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Flags explicitly set win over env and config file.
	if flags.Set["addr"] {
		if host, port, err := splitAddr(flags.Addr); err == nil {
			cfg.Server.Address = host
			cfg.Server.Port = port
		} else {
			cfg.Server.Address = flags.Addr
		}
	}
	if flags.Set["static"] {
		cfg.Static.Dir = flags.StaticDir
	}
	if flags.Set["templates"] {
		cfg.Templates.Dir = flags.TemplateDir
	}

	logger.InitWithLevel(cfg.Logging.Level)

	var srcs []string
	if len(flags.Set) > 0 {
		srcs = append(srcs, "flags")
	}
	if envUsed {
		srcs = append(srcs, "env")
	}
	if _, err := config.Load(cfgPath); err == nil {
		srcs = append(srcs, "config")
	}

	a, err := app.New(cfg, strings.Join(srcs, ", "), version)
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		log.Fatal(err)
	}
}

func splitAddr(v string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(v)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}
