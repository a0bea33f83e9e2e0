// Package app wires configuration, storage, the Discord session and the
// services together, and owns the process lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	discordadapter "github.com/UTT-Alumni/boarding-duck/internal/adapter/discord"
	"github.com/UTT-Alumni/boarding-duck/internal/adapter/redis"
	"github.com/UTT-Alumni/boarding-duck/internal/config"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/UTT-Alumni/boarding-duck/internal/service/hierarchy"
	"github.com/UTT-Alumni/boarding-duck/internal/service/onboarding"
	"github.com/UTT-Alumni/boarding-duck/internal/service/reaction"
	"github.com/UTT-Alumni/boarding-duck/internal/transport/gateway"
	"github.com/UTT-Alumni/boarding-duck/internal/transport/middleware"
	"github.com/UTT-Alumni/boarding-duck/internal/transport/rest"
)

// Gateway intents: guild metadata plus message reactions.
const intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsGuildMessageReactions

type poleRouter interface {
	ListByRolesChannel(ctx context.Context, channelID string) ([]domain.Pole, error)
}

type thematicRouter interface {
	GetByEmoji(ctx context.Context, poleID uuid.UUID, emojiKey string) (*domain.Thematic, error)
}

type routeInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Run starts the bot and blocks until ctx is cancelled or a component fails.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.InfoContext(ctx, "starting boarding-duck",
		slog.String("version", BuildVersion()),
		slog.String("guild_id", cfg.Discord.GuildID),
		slog.String("log_level", cfg.Log.Level),
	)

	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if cfg.Database.AutoMigrate {
		if _, err := st.migrate(ctx, logger); err != nil {
			return err
		}
	}

	session, err := newSession(cfg.Discord)
	if err != nil {
		return err
	}
	platform := discordadapter.New(session, cfg.Discord.GuildID, cfg.Discord.RequestTimeout, logger)

	// Routing lookups go straight to Postgres unless a cache is configured.
	var (
		poles     poleRouter     = st.poles
		thematics thematicRouter = st.thematics
		routes    routeInvalidator
		checks    = []rest.Check{{Name: "database", Pinger: st.pool, Critical: true}}
	)
	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer closeRedis(client, logger)

		cache := redis.NewRoutingCache(client, st.poles, st.thematics, cfg.Redis.TTL, logger)
		poles, thematics, routes = cache, cache, cache
		checks = append(checks, rest.Check{Name: "cache", Pinger: cache})
		logger.InfoContext(ctx, "routing cache enabled", slog.Duration("ttl", cfg.Redis.TTL))
	}

	hierarchySvc := hierarchy.NewService(logger, st.poles, st.thematics, st.projects, st.audit, st.tx, platform, routes, cfg.Messages.PoleAnchor)
	reactionSvc := reaction.NewService(logger, platform, poles, thematics)
	onboardingSvc := onboarding.NewService(logger, platform, cfg.Guild, cfg.Messages)

	dispatcher := gateway.NewDispatcher(logger, hierarchySvc, onboardingSvc, cfg.Guild.AdminRoleID)
	gw := gateway.New(logger, session, dispatcher.Handle, reactionSvc, onboardingSvc, onboardingSvc.RulesChannelID(), cfg.Discord.RequestTimeout)
	checks = append(checks, rest.Check{Name: "gateway", Pinger: gw, Critical: true})

	g, gctx := errgroup.WithContext(ctx)

	gw.Bind(gctx, session)
	if err := session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("closing discord gateway")
		return session.Close()
	})

	if cfg.Health.Addr != "" {
		srv := newHealthServer(cfg.Health.Addr, rest.NewHealthHandler(BuildVersion(), checks...), logger)
		g.Go(func() error {
			logger.Info("health server listening", slog.String("addr", cfg.Health.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("health server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Health.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	logger.Info("boarding-duck stopped")
	return err
}

// Migrate applies the pending database migrations.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	_, err = st.migrate(ctx, logger)
	return err
}

// RegisterCommands overwrites the guild slash commands with the bot's
// definitions. The application id defaults to the bot user id.
func RegisterCommands(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	session, err := newSession(cfg.Discord)
	if err != nil {
		return err
	}

	appID := cfg.Discord.ApplicationID
	if appID == "" {
		me, err := session.User("@me", discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("fetch bot user: %w", err)
		}
		appID = me.ID
	}

	created, err := session.ApplicationCommandBulkOverwrite(appID, cfg.Discord.GuildID, gateway.Definitions(), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("register commands: %w", err)
	}

	names := make([]string, 0, len(created))
	for _, c := range created {
		names = append(names, c.Name)
	}
	logger.InfoContext(ctx, "slash commands registered",
		slog.String("application_id", appID),
		slog.String("guild_id", cfg.Discord.GuildID),
		slog.Any("commands", names),
	)
	return nil
}

// Tree returns the formatted hierarchy, as the get command shows it.
func Tree(ctx context.Context, cfg *config.Config, logger *slog.Logger) (string, error) {
	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return "", err
	}
	defer st.Close()

	// Reading the tree never touches the platform.
	svc := hierarchy.NewService(logger, st.poles, st.thematics, st.projects, st.audit, st.tx, nil, nil, cfg.Messages.PoleAnchor)
	return svc.GetFormatted(ctx)
}

func newSession(cfg config.DiscordConfig) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = intents
	session.SyncEvents = cfg.SyncEvents
	return session, nil
}

func newHealthServer(addr string, health *rest.HealthHandler, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	health.Routes(mux)

	log := logger.With("transport", "http")
	return &http.Server{
		Addr:              addr,
		Handler:           healthMiddleware(log)(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func healthMiddleware(logger *slog.Logger) middleware.Middleware {
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
	)
}

func closeRedis(client *goredis.Client, logger *slog.Logger) {
	if err := client.Close(); err != nil {
		logger.Warn("close redis client", slog.String("error", err.Error()))
	}
}
