// Command stubserver runs the in-process auth backend stub used for local
// development of session client consumers.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-session-client/internal/config"
	"github.com/MKhiriev/go-auth-session-client/internal/crypto"
	"github.com/MKhiriev/go-auth-session-client/internal/logger"
	"github.com/MKhiriev/go-auth-session-client/internal/server"
	"github.com/MKhiriev/go-auth-session-client/internal/store"
	"github.com/MKhiriev/go-auth-session-client/internal/stub"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// newStorages opens the configured store.
var newStorages = store.NewStorages

func main() {
	printBuildInfo(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run serves the stub until ctx is done. The storages are closed on every
// return path once they are open.
func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.GetStubConfig(flag.NewFlagSet("stubserver", flag.ContinueOnError), args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewWithLevel(out, "stubserver", cfg.LogLevel)

	storages, err := newStorages(ctx, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	backend := stub.NewBackend(storages, crypto.NewPasswordHasher(), *cfg, log)
	handler := stub.NewHandler(backend, log)

	srv, err := server.NewServer(handler.Init(), *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	if err = srv.Run(ctx); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}

func printBuildInfo(out io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(out, "Build version: %s\n", buildVersion)
	fmt.Fprintf(out, "Build date: %s\n", buildDate)
	fmt.Fprintf(out, "Build commit: %s\n", buildCommit)
}
