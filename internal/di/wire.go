//go:build wireinject

package di

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/wire"

	"leetstats/internal/adapter/discord"
	"leetstats/internal/adapter/leetcode"
	"leetstats/internal/adapter/logging"
	"leetstats/internal/adapter/web"
	"leetstats/internal/app"
	"leetstats/internal/config"
	"leetstats/internal/domain/ports"
	"leetstats/internal/usecase"
)

var coreSet = wire.NewSet(
	config.Load,
	provideSlogLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
	provideResolver,
	wire.Bind(new(usecase.StatsResolver), new(*usecase.Resolver)),
	usecase.NewSearch,
)

// InitializeApp wires the HTTP server and digest scheduler together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		coreSet,
		web.NewHandler,
		provideServer,
		provideNotifier,
		provideDigest,
		app.New,
		provideSchedule,
	)
	return nil, nil
}

// InitializeSearch wires the search use case for one-shot command line lookups.
func InitializeSearch() (*usecase.Search, error) {
	wire.Build(coreSet)
	return nil, nil
}

func provideSlogLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// provideResolver builds the fallback chain: stats API, each relay in order, then the stats API again.
func provideResolver(cfg *config.Config, logger ports.Logger) *usecase.Resolver {
	direct := leetcode.NewStatsAPISource(cfg.StatsAPIEndpoint, cfg.RequestTimeout)

	sources := make([]ports.StatsSource, 0, len(cfg.RelayEndpoints)+2)
	sources = append(sources, direct)
	for _, relay := range cfg.RelayEndpoints {
		sources = append(sources, leetcode.NewRelaySource(relay, cfg.GraphQLEndpoint, cfg.RequestTimeout))
	}
	sources = append(sources, direct)

	return usecase.NewResolver(logger, usecase.ResolverConfig{AttemptTimeout: cfg.AttemptTimeout}, sources...)
}

func provideServer(cfg *config.Config, handler *web.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           web.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	if cfg.DiscordWebhookURL == "" {
		return nil
	}
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger)
}

func provideDigest(cfg *config.Config, resolver usecase.StatsResolver, notifier ports.Notifier, logger ports.Logger) *usecase.StatsDigest {
	return usecase.NewStatsDigest(resolver, notifier, logger, cfg.WatchUsernames)
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
