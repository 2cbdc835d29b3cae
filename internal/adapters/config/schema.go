package config

// File represents the structure of the rolegraph.yaml configuration file.
type File struct {
	API       APIDTO       `yaml:"api"`
	Collector CollectorDTO `yaml:"collector"`
	Cache     CacheDTO     `yaml:"cache"`
	Graph     GraphDTO     `yaml:"graph"`
	Neo4j     Neo4jDTO     `yaml:"neo4j"`
}

// APIDTO configures the inventory API client.
type APIDTO struct {
	BaseURL     string `yaml:"base_url"`
	Username    string `yaml:"username"`
	PasswordEnv string `yaml:"password_env"`
	Timeout     string `yaml:"timeout"`
	PageSize    int    `yaml:"page_size"`
}

// CollectorDTO configures the worker pool and retry policy.
type CollectorDTO struct {
	Workers        int    `yaml:"workers"`
	MaxAttempts    int    `yaml:"max_attempts"`
	InitialBackoff string `yaml:"initial_backoff"`
	MaxBackoff     string `yaml:"max_backoff"`
	Deadline       string `yaml:"deadline"`
}

// CacheDTO selects the cache backend.
type CacheDTO struct {
	Backend   string `yaml:"backend"`
	Dir       string `yaml:"dir"`
	RedisAddr string `yaml:"redis_addr"`
}

// GraphDTO configures graph construction.
// Pointers distinguish an explicit zero from an unset value.
type GraphDTO struct {
	Exclude        *[]string `yaml:"exclude"`
	MinConnections *int      `yaml:"min_connections"`
	MaxConnections *int      `yaml:"max_connections"`
	Output         string    `yaml:"output"`
}

// Neo4jDTO configures the graph database sink.
type Neo4jDTO struct {
	URI         string `yaml:"uri"`
	Username    string `yaml:"username"`
	PasswordEnv string `yaml:"password_env"`
	Database    string `yaml:"database"`
}
