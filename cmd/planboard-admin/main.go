package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/planboard/planboard/config"
	"github.com/planboard/planboard/internal/bootstrap"
	domainauth "github.com/planboard/planboard/internal/domain/auth"
	apperrors "github.com/planboard/planboard/internal/errors"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"request": {
			name:        "request",
			description: "Submit an anonymous access request to the mailbox",
			run:         runRequest,
		},
		"inbox": {
			name:        "inbox",
			description: "List access requests (requires an Admin login)",
			run:         runInbox,
		},
		"mark-read": {
			name:        "mark-read",
			description: "Mark every access request in the mailbox as read",
			run:         runMarkRead,
		},
		"remove": {
			name:        "remove",
			description: "Remove an access request by id",
			run:         runRemove,
		},
		"watch": {
			name:        "watch",
			description: "Poll the mailbox for unread requests until interrupted",
			run:         runWatch,
		},
		"seed": {
			name:        "seed",
			description: "Seed sample access requests (development mode only)",
			run:         runSeed,
		},
		"migrate": {
			name:        "migrate",
			description: "Run SQLite mailbox migrations",
			run:         runMigrations,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: planboard-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, c := range commands() {
		if err := writef(os.Stdout, "  %-24s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

type loginOptions struct {
	Email    string
	Password string
}

func addLoginFlags(fs *flag.FlagSet, opts *loginOptions) {
	fs.StringVar(&opts.Email, "email", "", "Account email (or PLANBOARD_EMAIL)")
	fs.StringVar(&opts.Password, "password", "", "Account password (or PLANBOARD_PASSWORD)")
}

// resolveLoginOptions fills missing credentials from the environment, then
// falls back to an interactive prompt for the password.
func resolveLoginOptions(opts *loginOptions) error {
	if opts.Email == "" {
		opts.Email = os.Getenv("PLANBOARD_EMAIL")
	}
	if opts.Password == "" {
		opts.Password = os.Getenv("PLANBOARD_PASSWORD")
	}
	if opts.Email == "" {
		return apperrors.ValidationField("email", "Email is required")
	}
	if opts.Password == "" {
		if err := writef(os.Stderr, "Password for %s: ", opts.Email); err != nil {
			return err
		}
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read password: %w", err)
		}
		opts.Password = strings.TrimSpace(line)
	}
	if opts.Password == "" {
		return apperrors.ValidationField("password", "Password is required")
	}
	return nil
}

// login exchanges credentials and installs the authenticated session in the
// container. The session becomes the token source for every API call that
// follows.
func login(ctx context.Context, c *bootstrap.Container, opts loginOptions) (domainauth.Identity, error) {
	c.Sessions.Start(ctx)

	token, err := c.Auth.Exchange(ctx, opts.Email, opts.Password)
	if err != nil {
		return domainauth.Identity{}, err
	}
	identity, err := c.Auth.Resolve(ctx, token)
	if err != nil {
		return domainauth.Identity{}, err
	}
	c.Sessions.Login(ctx, token, &identity)
	return identity, nil
}

// loginAsAdmin is login plus the same gate the admin pages apply: any
// authenticated non-admin is turned away before a mailbox call is made.
func loginAsAdmin(ctx context.Context, c *bootstrap.Container, opts loginOptions) (domainauth.Identity, error) {
	identity, err := login(ctx, c, opts)
	if err != nil {
		return domainauth.Identity{}, err
	}
	if identity.Role != domainauth.RoleAdmin {
		return domainauth.Identity{}, apperrors.Auth("Only administrators can manage access requests")
	}
	return identity, nil
}

func buildContainer(cmdCtx *commandContext) (*bootstrap.Container, func(), error) {
	c, err := bootstrap.BuildContainer(cmdCtx.Config, cmdCtx.Logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if closeErr := c.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("container close failed", "error", closeErr)
		}
	}
	return c, cleanup, nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
