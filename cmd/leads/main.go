// Command leads tracks sales leads against a remote whole-document store.
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/threec-labs/leads-cli/internal/adapters/driven/config/file"
	"github.com/threec-labs/leads-cli/internal/adapters/driven/schedule"
	"github.com/threec-labs/leads-cli/internal/adapters/driven/storage/httpbucket"
	"github.com/threec-labs/leads-cli/internal/adapters/driven/storage/memory"
	"github.com/threec-labs/leads-cli/internal/adapters/driving/cli"
	"github.com/threec-labs/leads-cli/internal/core/domain"
	"github.com/threec-labs/leads-cli/internal/core/ports/driven"
	"github.com/threec-labs/leads-cli/internal/core/services"
	"github.com/threec-labs/leads-cli/internal/importers/report"
	"github.com/threec-labs/leads-cli/internal/importers/samcsv"
	"github.com/threec-labs/leads-cli/internal/logger"
)

// version is overridden at build time with -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	path, err := file.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := file.Load(path)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger.SetVerbose(true)
	}

	var store driven.LeadStore
	if cfg.BucketURL != "" {
		store = httpbucket.New(cfg.BucketURL)
	} else {
		logger.Warn("no bucket_url configured, using in-memory store; nothing will persist")
		store = memory.NewLeadStore()
	}

	registry := services.NewImporterRegistry()
	registry.Register(report.New())
	registry.Register(samcsv.New())

	svc := services.NewLeadService(
		domain.NewSession(currentUser()),
		store,
		schedule.New(),
		registry,
		cfg.Debounce(),
	)

	cli.SetLeadService(svc)
	cli.SetVersion(version)
	cli.SetDefaultWatchDir(cfg.WatchDir)
	return cli.Execute()
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
