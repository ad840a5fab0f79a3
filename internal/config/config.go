package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every runtime setting the server reads from the environment.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Websocket WebsocketConfig
	Security  SecurityConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// URL returns a PostgreSQL connection URL for pgx.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// MenuTTL bounds how stale the cached public menu may get.
	MenuTTL time.Duration
}

type KafkaConfig struct {
	Brokers []string
	GroupID string
	// EventsTopic receives a mirror of every event broadcast by this service.
	EventsTopic string
	// RelayTopics are external topics folded back into the websocket hub.
	RelayTopics []string
}

type WebsocketConfig struct {
	SendBuffer int
}

type SecurityConfig struct {
	// JWTSecret enables bearer auth on mutating order routes when non-empty.
	JWTSecret string
}

type LoggingConfig struct {
	Level     string
	Format    string
	Directory string
}

// Load reads the configuration from environment variables, applying defaults
// suitable for local development.
func Load() (*Config, error) {
	dbPort, err := envInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	redisDB, err := envInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	sendBuffer, err := envInt("WS_SEND_BUFFER", 8)
	if err != nil {
		return nil, err
	}
	menuTTL, err := envDuration("MENU_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: envString("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     envString("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     envString("DB_USER", "postgres"),
			Password: envString("DB_PASSWORD", "postgres"),
			Name:     envString("DB_NAME", "mesapos"),
		},
		Redis: RedisConfig{
			Addr:     envString("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
			MenuTTL:  menuTTL,
		},
		Kafka: KafkaConfig{
			Brokers:     envList("KAFKA_BROKERS"),
			GroupID:     envString("KAFKA_GROUP_ID", "mesapos"),
			EventsTopic: envString("KAFKA_EVENTS_TOPIC", "pos.events"),
			RelayTopics: envList("KAFKA_RELAY_TOPICS"),
		},
		Websocket: WebsocketConfig{
			SendBuffer: sendBuffer,
		},
		Security: SecurityConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Logging: LoggingConfig{
			Level:     envString("LOG_LEVEL", "info"),
			Format:    envString("LOG_FORMAT", "text"),
			Directory: envString("LOG_DIR", "./logs"),
		},
	}

	if cfg.Database.Name == "" {
		return nil, fmt.Errorf("DB_NAME must not be empty")
	}
	return cfg, nil
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envList(key string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
