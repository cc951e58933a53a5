package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Режимы симуляции
const (
	SimulationModeMock = "mock"
	SimulationModeHTTP = "http"
)

// Источники реестра
const (
	RegistrySourceSeed     = "seed"
	RegistrySourcePostgres = "postgres"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Log        LogConfig
	Worker     WorkerConfig
	Simulation SimulationConfig
	Registry   RegistryConfig
	Events     EventsConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled         bool
	ConsumerGroup   string
	MaxBatchSize    int
	PollInterval    time.Duration
	ShutdownTimeout time.Duration
	// ClaimMinIdle - через сколько неподтверждённое сообщение забирается другим consumer'ом
	ClaimMinIdle time.Duration
}

// SimulationConfig - выбор и настройка стратегии симуляции
type SimulationConfig struct {
	Mode    string
	BaseURL string
	// Timeout - таймаут внешнего вызова, ноль означает без ограничения
	Timeout       time.Duration
	MockMinDelay  time.Duration
	MockMaxDelay  time.Duration
	StatusTimeout time.Duration
}

type RegistryConfig struct {
	Source string
	Table  string
}

type EventsConfig struct {
	Enabled bool
}

// Load - чтение .env (если есть) и окружения процесса
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - Load с явным путём к env файлу
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:         v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:   v.GetString("WORKER_CONSUMER_GROUP"),
			MaxBatchSize:    v.GetInt("WORKER_MAX_BATCH_SIZE"),
			PollInterval:    time.Duration(v.GetInt("WORKER_POLL_INTERVAL_MS")) * time.Millisecond,
			ShutdownTimeout: time.Duration(v.GetInt("WORKER_SHUTDOWN_TIMEOUT")) * time.Second,
			ClaimMinIdle:    time.Duration(v.GetInt("WORKER_CLAIM_MIN_IDLE")) * time.Second,
		},
		Simulation: SimulationConfig{
			Mode:          strings.ToLower(strings.TrimSpace(v.GetString("SIMULATION_MODE"))),
			BaseURL:       strings.TrimRight(v.GetString("SIMULATION_BASE_URL"), "/"),
			Timeout:       time.Duration(v.GetInt("SIMULATION_TIMEOUT")) * time.Second,
			MockMinDelay:  time.Duration(v.GetInt("SIMULATION_MOCK_MIN_DELAY_MS")) * time.Millisecond,
			MockMaxDelay:  time.Duration(v.GetInt("SIMULATION_MOCK_MAX_DELAY_MS")) * time.Millisecond,
			StatusTimeout: time.Duration(v.GetInt("SIMULATION_STATUS_TIMEOUT")) * time.Second,
		},
		Registry: RegistryConfig{
			Source: strings.ToLower(strings.TrimSpace(v.GetString("REGISTRY_SOURCE"))),
			Table:  v.GetString("REGISTRY_TABLE"),
		},
		Events: EventsConfig{
			Enabled: v.GetBool("EVENTS_ENABLED"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_CONSUMER_GROUP", "simulation-workers")
	v.SetDefault("WORKER_MAX_BATCH_SIZE", 5)
	v.SetDefault("WORKER_POLL_INTERVAL_MS", 500)
	v.SetDefault("WORKER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("WORKER_CLAIM_MIN_IDLE", 300)

	v.SetDefault("SIMULATION_MODE", SimulationModeMock)
	v.SetDefault("SIMULATION_BASE_URL", "http://localhost:8000")
	v.SetDefault("SIMULATION_TIMEOUT", 0)
	v.SetDefault("SIMULATION_MOCK_MIN_DELAY_MS", 10000)
	v.SetDefault("SIMULATION_MOCK_MAX_DELAY_MS", 20000)
	v.SetDefault("SIMULATION_STATUS_TIMEOUT", 5)

	v.SetDefault("REGISTRY_SOURCE", RegistrySourceSeed)
	v.SetDefault("REGISTRY_TABLE", "districts")
}

// Validate - проверка перечислений и диапазонов при старте
func (c *Config) Validate() error {
	switch c.Simulation.Mode {
	case SimulationModeMock, SimulationModeHTTP:
	default:
		return fmt.Errorf("invalid SIMULATION_MODE %q: want %q or %q", c.Simulation.Mode, SimulationModeMock, SimulationModeHTTP)
	}

	switch c.Registry.Source {
	case RegistrySourceSeed, RegistrySourcePostgres:
	default:
		return fmt.Errorf("invalid REGISTRY_SOURCE %q: want %q or %q", c.Registry.Source, RegistrySourceSeed, RegistrySourcePostgres)
	}

	if c.Simulation.MockMinDelay < 0 || c.Simulation.MockMaxDelay < c.Simulation.MockMinDelay {
		return fmt.Errorf("invalid mock delay range [%s, %s]", c.Simulation.MockMinDelay, c.Simulation.MockMaxDelay)
	}

	if c.Simulation.Mode == SimulationModeHTTP && c.Simulation.BaseURL == "" {
		return fmt.Errorf("SIMULATION_BASE_URL is required in %q mode", SimulationModeHTTP)
	}

	if c.Worker.MaxBatchSize <= 0 {
		return fmt.Errorf("WORKER_MAX_BATCH_SIZE must be positive")
	}

	if c.Worker.ClaimMinIdle <= 0 {
		return fmt.Errorf("WORKER_CLAIM_MIN_IDLE must be positive")
	}

	return nil
}

// CORSOriginList - разбор списка origin через запятую
func (c *Config) CORSOriginList() []string {
	return splitList(c.Server.CORSOrigins)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
