package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains runtime configuration values.
type Config struct {
	HTTPAddr          string
	StatsAPIEndpoint  string
	GraphQLEndpoint   string
	RelayEndpoints    []string
	RequestTimeout    time.Duration
	AttemptTimeout    time.Duration
	DiscordWebhookURL string
	WatchUsernames    []string
	ScheduleCron      string
}

const (
	defaultHTTPAddr         = ":8080"
	defaultStatsAPIEndpoint = "https://leetcode-stats-api.herokuapp.com"
	defaultGraphQLEndpoint  = "https://leetcode.com/graphql/"
	defaultCron             = "0 9 * * *" // 09:00 every day
	defaultTimeout          = 30 * time.Second
	defaultAttemptTimeout   = 10 * time.Second
	minRelays               = 2
)

var defaultRelays = []string{
	"https://corsproxy.io/?",
	"https://api.allorigins.win/raw?url=",
}

type configFile struct {
	HTTPAddr string `yaml:"http_addr"`
	Sources  struct {
		StatsAPIEndpoint string   `yaml:"stats_api_endpoint"`
		GraphQLEndpoint  string   `yaml:"graphql_endpoint"`
		Relays           []string `yaml:"relays"`
		RequestTimeout   string   `yaml:"request_timeout"`
		AttemptTimeout   string   `yaml:"attempt_timeout"`
	} `yaml:"sources"`
	Digest struct {
		DiscordWebhookURL string   `yaml:"discord_webhook_url"`
		Usernames         []string `yaml:"usernames"`
		Schedule          string   `yaml:"schedule"`
	} `yaml:"digest"`
}

// Load builds a Config from defaults, the optional YAML file named by
// LEETSTATS_CONFIG, and environment variables, in increasing precedence.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:         defaultHTTPAddr,
		StatsAPIEndpoint: defaultStatsAPIEndpoint,
		GraphQLEndpoint:  defaultGraphQLEndpoint,
		RelayEndpoints:   append([]string(nil), defaultRelays...),
		RequestTimeout:   defaultTimeout,
		AttemptTimeout:   defaultAttemptTimeout,
		ScheduleCron:     defaultCron,
	}

	if path := os.Getenv("LEETSTATS_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.HTTPAddr = getenvDefault("HTTP_ADDR", cfg.HTTPAddr)
	cfg.StatsAPIEndpoint = getenvDefault("STATS_API_ENDPOINT", cfg.StatsAPIEndpoint)
	cfg.GraphQLEndpoint = getenvDefault("GRAPHQL_ENDPOINT", cfg.GraphQLEndpoint)
	cfg.RelayEndpoints = parseListDefault("RELAY_ENDPOINTS", cfg.RelayEndpoints)
	cfg.RequestTimeout = parseDurationDefault("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.AttemptTimeout = parseDurationDefault("ATTEMPT_TIMEOUT", cfg.AttemptTimeout)
	cfg.DiscordWebhookURL = getenvDefault("DISCORD_WEBHOOK_URL", cfg.DiscordWebhookURL)
	cfg.WatchUsernames = parseListDefault("WATCH_USERNAMES", cfg.WatchUsernames)
	cfg.ScheduleCron = getenvDefault("SCHEDULE_CRON", cfg.ScheduleCron)

	cfg.RelayEndpoints = dedupe(cfg.RelayEndpoints)
	if len(cfg.RelayEndpoints) < minRelays {
		return nil, fmt.Errorf("at least %d distinct relay endpoints are required, got %d", minRelays, len(cfg.RelayEndpoints))
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = defaultAttemptTimeout
	}

	return cfg, nil
}

// DigestEnabled reports whether the scheduled Discord digest should run.
func (c *Config) DigestEnabled() bool {
	return c.DiscordWebhookURL != "" && len(c.WatchUsernames) > 0
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var f configFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if f.HTTPAddr != "" {
		c.HTTPAddr = f.HTTPAddr
	}
	if f.Sources.StatsAPIEndpoint != "" {
		c.StatsAPIEndpoint = f.Sources.StatsAPIEndpoint
	}
	if f.Sources.GraphQLEndpoint != "" {
		c.GraphQLEndpoint = f.Sources.GraphQLEndpoint
	}
	if relays := trimNonEmpty(f.Sources.Relays); len(relays) > 0 {
		c.RelayEndpoints = relays
	}
	if d, err := parseDuration(f.Sources.RequestTimeout); err != nil {
		return fmt.Errorf("parse request_timeout: %w", err)
	} else if d > 0 {
		c.RequestTimeout = d
	}
	if d, err := parseDuration(f.Sources.AttemptTimeout); err != nil {
		return fmt.Errorf("parse attempt_timeout: %w", err)
	} else if d > 0 {
		c.AttemptTimeout = d
	}
	if f.Digest.DiscordWebhookURL != "" {
		c.DiscordWebhookURL = f.Digest.DiscordWebhookURL
	}
	if users := trimNonEmpty(f.Digest.Usernames); len(users) > 0 {
		c.WatchUsernames = users
	}
	if f.Digest.Schedule != "" {
		c.ScheduleCron = f.Digest.Schedule
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func parseListDefault(key string, fallback []string) []string {
	if val := os.Getenv(key); val != "" {
		if items := trimNonEmpty(strings.Split(val, ",")); len(items) > 0 {
			return items
		}
	}
	return fallback
}

func parseDuration(val string) (time.Duration, error) {
	if val == "" {
		return 0, nil
	}
	return time.ParseDuration(val)
}

func trimNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// dedupe keeps the first occurrence of each entry, preserving order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
