package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads server.yaml from config/ or /config, overridden by
// FORMBUILDER_SERVER_* environment variables. A missing file is not an error.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		v := viper.GetViper()
		v.SetConfigName("server")
		v.AddConfigPath("config")
		v.AddConfigPath("/config")

		cfg, err := Load(v)
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = cfg
	})

	return configInstance
}

// Load builds the configuration from v, which must already know where to
// look for its config file.
func Load(v *viper.Viper) (AppConfig, error) {
	v.SetEnvPrefix("formbuilder_server")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel: v.GetString("general.log_level"),
		},
		HTTP: HTTPConfig{
			Addr:           v.GetString("http.addr"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Store: StoreConfig{
			Backend:   v.GetString("store.backend"),
			DSN:       v.GetString("store.dsn"),
			Namespace: v.GetString("store.namespace"),
			CacheTTL:  v.GetDuration("store.cache_ttl"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Telemetry: TelemetryConfig{
			Enabled:  v.GetBool("telemetry.enabled"),
			Endpoint: v.GetString("telemetry.endpoint"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("http.addr", ":3000")
	v.SetDefault("http.allowed_origins", []string{"http://localhost:5173", "http://127.0.0.1:5173"})
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.namespace", "formBuilder_savedForms")
	v.SetDefault("store.cache_ttl", "0s")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4317")
}

type AppConfig struct {
	General   GeneralConfig
	HTTP      HTTPConfig
	Store     StoreConfig
	Redis     RedisConfig
	Telemetry TelemetryConfig
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

type StoreConfig struct {
	// Backend is one of memory, sqlite, postgres or redis.
	Backend   string
	DSN       string
	Namespace string
	CacheTTL  time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type TelemetryConfig struct {
	Enabled  bool
	Endpoint string
}
