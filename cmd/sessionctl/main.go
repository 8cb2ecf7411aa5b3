// Command sessionctl inspects and manages sessions on the auth backend and
// prints login/register URLs carrying a redirect target.
//
// Usage:
//
//	sessionctl [flags] <command> [args]
//
// Commands:
//
//	get <sessionID>             print a session
//	list <userID>               print every session of a user
//	refresh <sessionID> <token> rotate the tokens of a session
//	revoke <sessionID>...       delete one or more sessions, reporting each
//	revoke-user <userID>        delete every session of a user
//	login-url <redirect>        print the login URL for redirect
//	register-url <redirect>     print the register URL for redirect
//	version                     print build information
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-session-client/authclient"
	"github.com/MKhiriev/go-auth-session-client/internal/config"
	"github.com/MKhiriev/go-auth-session-client/internal/logger"
	"github.com/MKhiriev/go-auth-session-client/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// revokeConcurrency caps the DELETE requests in flight for a multi-ID revoke.
const revokeConcurrency = 4

var errUsage = errors.New("usage: sessionctl [flags] <get|list|refresh|revoke|revoke-user|login-url|register-url|version> [args]")

func main() {
	fs := flag.NewFlagSet("sessionctl", flag.ExitOnError)

	cfg, err := config.GetClientConfig(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(2)
	}

	log := logger.NewWithLevel(os.Stderr, "sessionctl", cfg.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	client, err := authclient.New(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, client, fs.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			fs.PrintDefaults()
			stop()
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(ctx context.Context, client *authclient.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	sessions := client.Sessions()
	urls := client.URLs()

	switch {
	case command == "get" && len(args) == 1:
		session, err := sessions.GetSessionByID(ctx, args[0])
		if err != nil {
			return err
		}
		return writeJSON(out, session)

	case command == "list" && len(args) == 1:
		list, err := sessions.GetSessionsByUserID(ctx, args[0])
		if err != nil {
			return err
		}
		return writeJSON(out, list)

	case command == "refresh" && len(args) == 2:
		session, err := sessions.RefreshSession(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return writeJSON(out, session)

	case command == "revoke" && len(args) >= 1:
		return revokeAll(ctx, client, args, out)

	case command == "revoke-user" && len(args) == 1:
		msg, err := sessions.RevokeSessionsByUserID(ctx, args[0])
		if err != nil {
			return err
		}
		return writeLine(out, msg)

	case command == "login-url" && len(args) == 1:
		u, err := urls.GenerateLoginURL(args[0])
		if err != nil {
			return err
		}
		return writeLine(out, u)

	case command == "register-url" && len(args) == 1:
		u, err := urls.GenerateRegisterURL(args[0])
		if err != nil {
			return err
		}
		return writeLine(out, u)

	case command == "version" && len(args) == 0:
		printBuildInfo(out)
		return nil
	}

	return errUsage
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeLine(out io.Writer, s string) error {
	_, err := fmt.Fprintln(out, s)
	return err
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

// revokeAll attempts to delete every session in ids concurrently. The
// confirmations of the deletions that succeeded are printed in argument
// order, then the failures are returned joined.
func revokeAll(ctx context.Context, client *authclient.Client, ids []string, out io.Writer) error {
	messages := make([]string, len(ids))
	failures := make([]error, len(ids))
	jobs := make([]workers.Worker, len(ids))
	for i, id := range ids {
		jobs[i] = workers.WorkerFunc(func(ctx context.Context) error {
			messages[i], failures[i] = client.Sessions().RevokeSessionByID(ctx, id)
			return nil
		})
	}

	if err := workers.NewWorkers(revokeConcurrency, jobs...).Run(ctx); err != nil {
		return err
	}

	for i, msg := range messages {
		if failures[i] != nil {
			continue
		}
		if err := writeLine(out, msg); err != nil {
			return err
		}
	}

	return errors.Join(failures...)
}
