package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Log struct {
		Level string
	} `mapstructure:"log"`

	Data struct {
		Materials string
		Machines  string
		Component string
	} `mapstructure:"data"`

	Sizing struct {
		Family    string
		TargetUOM string `mapstructure:"target_uom"`
	} `mapstructure:"sizing"`

	Output struct {
		Format string
		Report string
	} `mapstructure:"output"`

	Metrics struct {
		File string
	} `mapstructure:"metrics"`
}

// Load reads configuration from an optional file, a .env file next to the
// working directory, and SIZING_* environment variables, in increasing
// order of precedence. An empty path skips the config file.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("app.env", "prod")
	v.SetDefault("log.level", "")
	v.SetDefault("data.materials", "")
	v.SetDefault("data.machines", "")
	v.SetDefault("data.component", "")
	v.SetDefault("sizing.family", "paper")
	v.SetDefault("sizing.target_uom", "")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.report", "")
	v.SetDefault("metrics.file", "")

	v.SetEnvPrefix("SIZING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("failed to decode config: %w", err)
	}
	return c, nil
}
