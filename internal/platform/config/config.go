package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath es el archivo que se intenta leer si CONFIG_PATH no viene.
const DefaultPath = "config.yaml"

// Config de la API. Se lee de YAML (opcional) y luego se pisan valores por env.
type Config struct {
	Port string `yaml:"port"`

	DBDSN          string `yaml:"dbDsn"`
	MigrateOnStart bool   `yaml:"migrateOnStart"`

	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`

	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
	AppName   string `yaml:"appName"`

	SessionTTL          time.Duration `yaml:"sessionTtl"`
	SessionCookieName   string        `yaml:"sessionCookieName"`
	SessionCookieSecure bool          `yaml:"sessionCookieSecure"`

	LoginRatePerMinute int      `yaml:"loginRatePerMinute"`
	CORSAllowedOrigins []string `yaml:"corsAllowedOrigins"`

	SeedDefaultUsers bool `yaml:"seedDefaultUsers"`
}

// Defaults devuelve la configuración base para dev.
func Defaults() Config {
	return Config{
		Port:               "8080",
		MigrateOnStart:     true,
		LogLevel:           "info",
		LogFormat:          "text",
		AppName:            "pet-clinic-admin",
		SessionTTL:         24 * time.Hour,
		SessionCookieName:  "SESSION",
		LoginRatePerMinute: 20,
		CORSAllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
			"http://localhost:8081",
			"http://localhost:4200",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
			"http://127.0.0.1:8080",
		},
		SeedDefaultUsers: true,
	}
}

// Load lee path (o CONFIG_PATH, o config.yaml). Si el archivo no existe se usan defaults + env.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if strings.TrimSpace(path) == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// sin archivo: seguimos con defaults
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Port = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_DSN")); v != "" {
		cfg.DBDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_ADDR")); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		cfg.LogFormat = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_NAME")); v != "" {
		cfg.AppName = v
	}
	if v := strings.TrimSpace(os.Getenv("SESSION_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}
	if v := strings.TrimSpace(os.Getenv("SESSION_COOKIE_NAME")); v != "" {
		cfg.SessionCookieName = v
	}
	if v := strings.TrimSpace(os.Getenv("SESSION_COOKIE_SECURE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SESSION_COOKIE_SECURE: %w", err)
		}
		cfg.SessionCookieSecure = b
	}
	if v := strings.TrimSpace(os.Getenv("LOGIN_RATE_PER_MINUTE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LOGIN_RATE_PER_MINUTE: %w", err)
		}
		cfg.LoginRatePerMinute = n
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		cfg.CORSAllowedOrigins = splitCSV(v)
	}
	if v := strings.TrimSpace(os.Getenv("SEED_DEFAULT_USERS")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SEED_DEFAULT_USERS: %w", err)
		}
		cfg.SeedDefaultUsers = b
	}
	if v := strings.TrimSpace(os.Getenv("MIGRATE_ON_START")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MIGRATE_ON_START: %w", err)
		}
		cfg.MigrateOnStart = b
	}
	return nil
}

// Validate rechaza valores que romperían el arranque.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: port is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("config: invalid port %q", c.Port)
	}
	if c.SessionTTL <= 0 {
		return errors.New("config: session ttl must be positive")
	}
	if strings.TrimSpace(c.SessionCookieName) == "" {
		return errors.New("config: session cookie name is required")
	}
	if c.LoginRatePerMinute < 0 {
		return errors.New("config: login rate must be >= 0")
	}
	return nil
}

// Addr devuelve ":<port>" para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
