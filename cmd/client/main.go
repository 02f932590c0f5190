package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"SiteModels/internal/cli/commands"
	"SiteModels/internal/cli/session"
	"SiteModels/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	// diagnostics logger; user-facing output goes through commands.Out
	logger, err := zap.NewDevelopment()
	if err == nil {
		session.SetLogger(logger.Sugar())
		defer func() { _ = logger.Sync() }()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// dispatcher
	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("SiteModels catalog CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
