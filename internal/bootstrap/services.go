package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	goredis "github.com/redis/go-redis/v9"

	"github.com/planboard/planboard/config"
	"github.com/planboard/planboard/internal/adapters/apiclient"
	"github.com/planboard/planboard/internal/adapters/devauth"
	redisadapter "github.com/planboard/planboard/internal/adapters/redis"
	"github.com/planboard/planboard/internal/adapters/sqlite"
	"github.com/planboard/planboard/internal/adapters/watcher"
	"github.com/planboard/planboard/internal/notify"
	"github.com/planboard/planboard/internal/observability/statsd"
	"github.com/planboard/planboard/internal/ports"
	"github.com/planboard/planboard/internal/service"
)

// Container holds the wired application graph.
type Container struct {
	Config   config.AppConfig
	Logger   *slog.Logger
	Metrics  *statsd.Client
	Bus      *notify.Bus
	Sessions *service.SessionManager
	Auth     ports.AuthBackend
	Mailbox  *service.MailboxService
	Watcher  *watcher.Runner

	// MailboxRepo is the raw persistence handle behind Mailbox, exposed
	// for administrative tooling such as dev seeding.
	MailboxRepo ports.MailboxRepository

	Projects    *service.ProjectsService
	Clients     *service.ClientsService
	Tasks       *service.TasksService
	Assignments *service.AssignmentsService
	Users       *service.UsersService
	Dashboard   *service.DashboardService

	redis  *goredis.Client
	sqlite *sqlite.Store
}

// BuildContainer wires the full application from configuration. The caller
// owns the returned container and must Close it.
func BuildContainer(cfg config.AppConfig, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := statsd.NewClient(statsd.Options{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  cfg.Observability.Metrics.StatsdPrefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	c := &Container{Config: cfg, Logger: logger, Metrics: metrics}

	var mailboxRepo ports.MailboxRepository
	var vault ports.TokenVault
	switch cfg.Mailbox.Driver {
	case config.MailboxDriverSQLite:
		store, err := OpenSQLite(cfg.Mailbox.SQLite, logger)
		if err != nil {
			return nil, err
		}
		c.sqlite = store
		mailboxRepo = store.Mailbox()
		vault = store.TokenVault()
	default:
		client, err := ConnectRedis(cfg.Mailbox.Redis, logger)
		if err != nil {
			return nil, err
		}
		c.redis = client
		mailboxRepo = redisadapter.NewMailboxStoreWithPrefix(client, cfg.Mailbox.Redis.Prefix)
		vault = redisadapter.NewTokenVaultWithPrefix(client, cfg.Mailbox.Redis.Prefix)
	}

	c.Bus = notify.NewBus(notify.WithDisplayDuration(cfg.Notify.DisplayDuration))

	api, err := apiclient.New(apiclient.Options{
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		Token: func() string {
			if c.Sessions == nil {
				return ""
			}
			return c.Sessions.Token()
		},
		OnUnauthorized: func(ctx context.Context, reason string) {
			if c.Sessions != nil {
				c.Sessions.Invalidate(ctx, reason)
			}
			if c.Bus != nil {
				c.Bus.Publish("Your session has expired. Please log in again.", notify.KindError)
			}
		},
	})
	if err != nil {
		return nil, err
	}

	c.MailboxRepo = mailboxRepo

	if cfg.DevAuth {
		logger.Warn("dev auth enabled, credentials are not verified against the backend")
		c.Auth = devauth.NewProvider(devauth.Config{})
	} else {
		c.Auth = apiclient.NewAuthClient(api)
	}

	c.Sessions = service.NewSessionManager(service.SessionManagerOptions{
		Resolver: c.Auth,
		Vault:    vault,
		Logger:   logger,
	})

	c.Mailbox = service.NewMailboxService(service.MailboxServiceOptions{
		Repo:   mailboxRepo,
		Logger: logger,
	})

	assignmentsAPI := apiclient.NewAssignmentsClient(api)
	c.Projects = service.NewProjectsService(service.ProjectsServiceOptions{
		Sessions:    c.Sessions,
		API:         apiclient.NewProjectsClient(api),
		Assignments: assignmentsAPI,
		Logger:      logger,
	})
	c.Clients = service.NewClientsService(c.Sessions, apiclient.NewClientsClient(api))
	c.Tasks = service.NewTasksService(c.Sessions, apiclient.NewTasksClient(api))
	c.Assignments = service.NewAssignmentsService(c.Sessions, assignmentsAPI)
	c.Users = service.NewUsersService(c.Sessions, c.Auth)
	c.Dashboard = service.NewDashboardService(c.Sessions, apiclient.NewDashboardClient(api))

	c.Watcher, err = watcher.NewRunner(watcher.RunnerOptions{
		Mailbox:  c.Mailbox,
		Sessions: c.Sessions,
		Interval: cfg.Mailbox.PollInterval,
		Logger:   logger,
		Metrics:  metrics,
		OnUnread: newUnreadNotifier(c.Bus),
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	var errs []error
	if c.Bus != nil {
		c.Bus.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if c.sqlite != nil {
		if err := c.sqlite.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close sqlite: %w", err))
		}
	}
	if c.Metrics != nil {
		if err := c.Metrics.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close metrics: %w", err))
		}
	}
	return errors.Join(errs...)
}

// newUnreadNotifier publishes an info notification when the unread count
// rises. A steady or falling count stays quiet so the 5-second cadence does
// not spam the bus.
func newUnreadNotifier(bus *notify.Bus) func(int) {
	last := 0
	return func(count int) {
		if count > last {
			bus.Publish(fmt.Sprintf("%d unread access requests", count), notify.KindInfo)
		}
		last = count
	}
}
