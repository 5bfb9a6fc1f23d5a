package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/geodata-tools/registrant/internal/backend"
	"github.com/geodata-tools/registrant/internal/config"
	"github.com/geodata-tools/registrant/internal/db"
	"github.com/geodata-tools/registrant/internal/logging"
	"github.com/geodata-tools/registrant/pkg/registrant"
)

// targetFromEnv returns the first non-empty target from REGISTRANT_TARGET or
// DATABASE_URL environment variables.
func targetFromEnv() string {
	if s := os.Getenv("REGISTRANT_TARGET"); s != "" {
		return s
	}
	return os.Getenv("DATABASE_URL")
}

// resolveTarget picks the inspection target, in order of precedence: the
// positional argument, the --connection flag, environment variables, then
// registrant.yaml in the working directory.
func resolveTarget(args []string, connFlag string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if connFlag != "" {
		return connFlag, nil
	}

	if target := targetFromEnv(); target != "" {
		return target, nil
	}

	cwd, err := os.Getwd()
	if err == nil {
		cfg, err := config.Load(cwd)
		if err == nil {
			if target := cfg.ResolveTarget(); target != "" {
				return target, nil
			}
		} else if !errors.Is(err, config.ErrConfigNotFound) {
			return "", fmt.Errorf("read %s: %w", config.ConfigFileName, err)
		}
	}

	return "", fmt.Errorf("no target given: pass a geodatabase path or connection string, "+
		"set $REGISTRANT_TARGET, or add one to %s: %w", config.ConfigFileName, registrant.ErrInvalidConfig)
}

// withPassword fills in the password for enterprise targets that use standard
// auth and carry none: $PGPASSWORD first, then an interactive prompt when
// stdin is a terminal. Non-enterprise targets pass through untouched.
func withPassword(target string) (string, error) {
	kind, err := backend.Detect(target)
	if err != nil || kind != registrant.KindEnterprise {
		return target, err
	}

	connConfig, err := db.ParseConnectionString(target)
	if err != nil {
		return "", err
	}
	if connConfig.AuthMethod != db.AuthMethodStandard ||
		connConfig.Username == "" || connConfig.Password != "" {
		return target, nil
	}

	if pass := os.Getenv("PGPASSWORD"); pass != "" {
		connConfig.Password = pass
		return db.BuildConnectionString(connConfig), nil
	}

	if term.IsTerminal(int(syscall.Stdin)) {
		fmt.Fprintf(os.Stderr, "Password for %s@%s: ", connConfig.Username, connConfig.Host)
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		connConfig.Password = string(raw)
		return db.BuildConnectionString(connConfig), nil
	}

	// No password anywhere; let the server decide whether it needs one.
	return target, nil
}

// openGeodatabase resolves the target from the command's flags and arguments,
// opens the matching backend, and wraps it in an accessor. The caller owns
// the returned Close.
func openGeodatabase(ctx context.Context, cmd *cobra.Command, args []string) (*registrant.Geodatabase, error) {
	target, err := resolveTarget(args, getConnectionFlag(cmd))
	if err != nil {
		return nil, err
	}
	verbose := getVerboseFlag(cmd)

	logger := logging.NewConsoleLogger(verbose)
	// Log before password injection so credentials never reach the log.
	logger.Verbose("opening target %s", target)

	target, err = withPassword(target)
	if err != nil {
		return nil, err
	}

	b, err := backend.Open(ctx, target, logger)
	if err != nil {
		return nil, err
	}

	gdb, err := registrant.NewGeodatabase(ctx, b,
		registrant.WithLogger(logger),
		registrant.WithTarget(target),
	)
	if err != nil {
		b.Close()
		return nil, err
	}
	return gdb, nil
}
