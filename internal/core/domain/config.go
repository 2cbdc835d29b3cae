package domain

import (
	"path/filepath"
	"time"
)

const (
	// RolegraphDirName is the name of the internal working directory.
	RolegraphDirName = ".rolegraph"

	// CacheDirName is the name of the result cache directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the default configuration file.
	ConfigFileName = "rolegraph.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Cache backends.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
)

// Defaults applied when the configuration leaves a value unset.
const (
	DefaultPageSize       = 1000
	DefaultWorkers        = 20
	DefaultMaxAttempts    = 5
	DefaultInitialBackoff = 500 * time.Millisecond
	DefaultMaxBackoff     = 30 * time.Second
	DefaultDeadline       = 30 * time.Minute
	DefaultRequestTimeout = 30 * time.Second
	DefaultMinConnections = 0
	DefaultMaxConnections = 5
	DefaultPasswordEnv    = "ROLEGRAPH_PASSWORD"
	DefaultOutputPath     = "rolegraph.dot"
)

// DefaultCachePath returns the default directory of the file cache.
// It joins .rolegraph and cache.
func DefaultCachePath() string {
	return filepath.Join(RolegraphDirName, CacheDirName)
}

// Config is the resolved application configuration.
type Config struct {
	API       APIConfig
	Collector CollectorConfig
	Cache     CacheConfig
	Graph     GraphConfig
	Neo4j     Neo4jConfig
}

// APIConfig configures the inventory API client.
type APIConfig struct {
	BaseURL  string
	Username string
	Password string
	PageSize int
	Timeout  time.Duration
}

// CollectorConfig configures the collector worker pool and retry policy.
type CollectorConfig struct {
	Workers        int
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Deadline       time.Duration
}

// CacheConfig selects and configures the result cache backend.
type CacheConfig struct {
	Backend   string
	Dir       string
	RedisAddr string
}

// GraphConfig configures graph construction and pruning.
type GraphConfig struct {
	Exclude        []string
	MinConnections int
	MaxConnections int
	Output         string
}

// Neo4jConfig configures the optional graph database sink.
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
	Database string
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			PageSize: DefaultPageSize,
			Timeout:  DefaultRequestTimeout,
		},
		Collector: CollectorConfig{
			Workers:        DefaultWorkers,
			MaxAttempts:    DefaultMaxAttempts,
			InitialBackoff: DefaultInitialBackoff,
			MaxBackoff:     DefaultMaxBackoff,
			Deadline:       DefaultDeadline,
		},
		Cache: CacheConfig{
			Backend: CacheBackendFile,
			Dir:     DefaultCachePath(),
		},
		Graph: GraphConfig{
			Exclude:        append([]string(nil), DefaultExcludeMarkers...),
			MinConnections: DefaultMinConnections,
			MaxConnections: DefaultMaxConnections,
			Output:         DefaultOutputPath,
		},
	}
}
