package config

import (
	"fmt"
	"reflect"
	"strings"

	"mc-panel/core/database"
	"mc-panel/core/jars"
	"mc-panel/core/logger"
	"mc-panel/core/manager"
	"mc-panel/core/middleware/auth"
	"mc-panel/core/server"
	"mc-panel/core/storage"
	"mc-panel/core/tasks"
	"mc-panel/feature/admins"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the panel.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Session holds the session cookie settings.
	Session auth.Config `mapstructure:"session"`
	// Manager describes how to invoke the server manager CLI.
	Manager manager.Config `mapstructure:"manager"`
	// Jars selects where the jar catalog is read from.
	Jars jars.Config `mapstructure:"jars"`
	// Storage holds configuration for the S3 jar bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the credential database.
	Database database.Config `mapstructure:"database"`
	// Tasks bounds the lifecycle task history.
	Tasks tasks.Config `mapstructure:"tasks"`
	// Admin holds the optional bootstrap credential.
	Admin admins.Config `mapstructure:"admin"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and the .env
// file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings that would only fail later at request time.
func (c *Config) Validate() error {
	if err := c.Server.ValidateCookieKey(); err != nil {
		return err
	}
	if !c.Jars.IsValidSource() {
		return fmt.Errorf("unsupported jar source: %s", c.Jars.Source)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session cookie name must not be empty")
	}
	return nil
}

// bindValues registers every mapstructure key with its `default` tag so
// AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Set even when empty, otherwise AutomaticEnv never sees the key.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
