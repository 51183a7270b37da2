package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyLogLevel       = "log.level"
	KeyHTTPPort       = "http.port"
	KeyAuthSigningKey = "auth.signing_key"
	KeyAuthUsername   = "auth.username"
	KeyAuthPassword   = "auth.password_hash"
	KeyAuthTokenTTL   = "auth.token_ttl"
	envPrefix         = "TYPEWISE"
	defaultConfigName = "config"
	defaultConfigPath = "configs"
	defaultHTTPPort   = "8080"
	defaultLogLevel   = "info"
	defaultTokenTTL   = 24 * time.Hour
)

// Config is the resolved application configuration.
type Config struct {
	LogLevel string
	HTTPPort string
	Auth     Auth
}

type Auth struct {
	SigningKey   string
	Username     string
	PasswordHash string
	TokenTTL     time.Duration
}

// New returns a viper instance with defaults and env binding applied.
// TYPEWISE_HTTP_PORT overrides http.port, and so on.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyHTTPPort, defaultHTTPPort)
	v.SetDefault(KeyAuthTokenTTL, defaultTokenTTL)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v. With an empty path it looks for
// configs/config.yml and tolerates its absence.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultConfigPath)
		v.SetConfigName(defaultConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) Config {
	port := v.GetString(KeyHTTPPort)
	if port == "" {
		port = defaultHTTPPort
	}
	return Config{
		LogLevel: v.GetString(KeyLogLevel),
		HTTPPort: port,
		Auth: Auth{
			SigningKey:   v.GetString(KeyAuthSigningKey),
			Username:     v.GetString(KeyAuthUsername),
			PasswordHash: v.GetString(KeyAuthPassword),
			TokenTTL:     v.GetDuration(KeyAuthTokenTTL),
		},
	}
}
