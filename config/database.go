package config

// DBConfig contains PostgreSQL database configuration (tenant metadata).
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"activity"`
	Password string `env:"PASSWORD" envDefault:"activity"`
	Name     string `env:"NAME"     envDefault:"activity"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
}

// MongoConfig contains legacy document store configuration.
type MongoConfig struct {
	URI      string `env:"URI"      envDefault:"mongodb://localhost:27017"`
	Database string `env:"DATABASE" envDefault:"activity"`
}

// ClickHouseConfig contains analytical store configuration. The workflow-run,
// step-run, and trace-log tables all live in the same ClickHouse database.
type ClickHouseConfig struct {
	Addr     []string `env:"ADDR"     envDefault:"localhost:9000"`
	Database string   `env:"DATABASE" envDefault:"activity"`
	User     string   `env:"USER"     envDefault:"default"`
	Password string   `env:"PASSWORD" envDefault:""`
}

// RedisConfig contains Redis configuration (feature flags).
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
