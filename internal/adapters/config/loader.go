// Package config provides the configuration loader for rolegraph.
package config

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"time"

	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration file at path and resolves it against the defaults.
// Secrets are read from the environment variables the file names.
func (l *Loader) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		if l.Logger != nil {
			l.Logger.Debug("no configuration file at " + path + ", using defaults")
		}
		return resolve(File{})
	}
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg, err := resolve(file)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func resolve(file File) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if err := resolveAPI(&cfg.API, file.API); err != nil {
		return domain.Config{}, err
	}
	if err := resolveCollector(&cfg.Collector, file.Collector); err != nil {
		return domain.Config{}, err
	}

	if file.Cache.Backend != "" {
		cfg.Cache.Backend = file.Cache.Backend
	}
	if file.Cache.Dir != "" {
		cfg.Cache.Dir = file.Cache.Dir
	}
	cfg.Cache.RedisAddr = file.Cache.RedisAddr
	switch cfg.Cache.Backend {
	case domain.CacheBackendFile:
	case domain.CacheBackendRedis:
		if cfg.Cache.RedisAddr == "" {
			return domain.Config{}, invalid("cache.redis_addr", "required for the redis backend")
		}
	default:
		return domain.Config{}, zerr.With(domain.ErrUnknownCacheBackend, "backend", cfg.Cache.Backend)
	}

	if file.Graph.Exclude != nil {
		cfg.Graph.Exclude = withDefaultMarkers(*file.Graph.Exclude)
	}
	if file.Graph.MinConnections != nil {
		cfg.Graph.MinConnections = *file.Graph.MinConnections
	}
	if file.Graph.MaxConnections != nil {
		cfg.Graph.MaxConnections = *file.Graph.MaxConnections
	}
	if file.Graph.Output != "" {
		cfg.Graph.Output = file.Graph.Output
	}

	cfg.Neo4j = domain.Neo4jConfig{
		URI:      file.Neo4j.URI,
		Username: file.Neo4j.Username,
		Database: file.Neo4j.Database,
	}
	if file.Neo4j.PasswordEnv != "" {
		cfg.Neo4j.Password = os.Getenv(file.Neo4j.PasswordEnv)
	}

	return cfg, nil
}

func resolveAPI(cfg *domain.APIConfig, dto APIDTO) error {
	cfg.BaseURL = dto.BaseURL
	cfg.Username = dto.Username
	if cfg.Username == "" {
		cfg.Username = os.Getenv("USER")
	}

	passwordEnv := dto.PasswordEnv
	if passwordEnv == "" {
		passwordEnv = domain.DefaultPasswordEnv
	}
	cfg.Password = os.Getenv(passwordEnv)

	if dto.PageSize < 0 {
		return invalid("api.page_size", "must not be negative")
	}
	if dto.PageSize > 0 {
		cfg.PageSize = dto.PageSize
	}
	return duration(&cfg.Timeout, "api.timeout", dto.Timeout)
}

func resolveCollector(cfg *domain.CollectorConfig, dto CollectorDTO) error {
	if dto.Workers < 0 {
		return invalid("collector.workers", "must not be negative")
	}
	if dto.Workers > 0 {
		cfg.Workers = dto.Workers
	}
	if dto.MaxAttempts < 0 {
		return invalid("collector.max_attempts", "must not be negative")
	}
	if dto.MaxAttempts > 0 {
		cfg.MaxAttempts = dto.MaxAttempts
	}
	if err := duration(&cfg.InitialBackoff, "collector.initial_backoff", dto.InitialBackoff); err != nil {
		return err
	}
	if err := duration(&cfg.MaxBackoff, "collector.max_backoff", dto.MaxBackoff); err != nil {
		return err
	}
	return duration(&cfg.Deadline, "collector.deadline", dto.Deadline)
}

// duration parses raw into dst, leaving dst untouched when raw is empty.
func duration(dst *time.Duration, key, raw string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "key", key)
	}
	if d <= 0 {
		return invalid(key, "must be positive")
	}
	*dst = d
	return nil
}

func invalid(key, reason string) error {
	return zerr.With(zerr.With(domain.ErrInvalidConfig, "key", key), "reason", reason)
}

// withDefaultMarkers appends extra to the database markers, which are always
// excluded.
func withDefaultMarkers(extra []string) []string {
	out := append([]string(nil), domain.DefaultExcludeMarkers...)
	for _, m := range extra {
		if m != "" && !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	return out
}
