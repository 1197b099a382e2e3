package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configDir  = ".spidy"
	configName = "config"
	configType = "toml"
	envPrefix  = "SPIDY"
	envFile    = ".env"

	KeyWakeWord       = "wake_word"
	KeyIdleThreshold  = "idle.threshold"
	KeyCheckInterval  = "idle.check_interval"
	KeyCatalogPath    = "catalog.path"
	KeyMobile         = "runtime.mobile"
	KeyLauncherMode   = "launcher.mode"
	KeyLauncherCmd    = "launcher.command"
	KeySynthEngine    = "synth.engine"
	KeySynthCommand   = "synth.command"
	KeySynthArgs      = "synth.args"
	KeyRestartOnError = "recognition.restart_on_error"
	KeyLogLevel       = "log.level"
	KeyLogFile        = "log.file"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	WakeWord    string            `mapstructure:"wake_word" validate:"required"`
	Idle        IdleConfig        `mapstructure:"idle"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Runtime     RuntimeConfig     `mapstructure:"runtime"`
	Launcher    LauncherConfig    `mapstructure:"launcher"`
	Synth       SynthConfig       `mapstructure:"synth"`
	Recognition RecognitionConfig `mapstructure:"recognition"`
	Log         LogConfig         `mapstructure:"log"`
}

type IdleConfig struct {
	Threshold     time.Duration `mapstructure:"threshold" validate:"gt=0"`
	CheckInterval time.Duration `mapstructure:"check_interval" validate:"gt=0"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type RuntimeConfig struct {
	Mobile bool `mapstructure:"mobile"`
}

type LauncherConfig struct {
	Mode    string `mapstructure:"mode" validate:"oneof=web native chain"`
	Command string `mapstructure:"command"`
}

type SynthConfig struct {
	Engine  string   `mapstructure:"engine" validate:"oneof=silent exec"`
	Command string   `mapstructure:"command" validate:"required_if=Engine exec"`
	Args    []string `mapstructure:"args"`
}

type RecognitionConfig struct {
	RestartOnError bool `mapstructure:"restart_on_error"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	File  string `mapstructure:"file"`
}

// SetDefaults registers every key so env overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyWakeWord, "spidy")
	v.SetDefault(KeyIdleThreshold, 30*time.Second)
	v.SetDefault(KeyCheckInterval, 5*time.Second)
	v.SetDefault(KeyCatalogPath, "")
	v.SetDefault(KeyMobile, false)
	v.SetDefault(KeyLauncherMode, "web")
	v.SetDefault(KeyLauncherCmd, "")
	v.SetDefault(KeySynthEngine, "silent")
	v.SetDefault(KeySynthCommand, "espeak-ng")
	v.SetDefault(KeySynthArgs, []string{})
	v.SetDefault(KeyRestartOnError, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
}

// Load reads ~/.spidy/config.toml when present, then SPIDY_* environment
// variables, with a .env file in the working directory loaded first. The
// same viper instance can be handed to adapters reading their own keys.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	SetDefaults(v)
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.WakeWord = strings.TrimSpace(c.WakeWord)
	c.Launcher.Mode = strings.ToLower(strings.TrimSpace(c.Launcher.Mode))
	c.Synth.Engine = strings.ToLower(strings.TrimSpace(c.Synth.Engine))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

func Validate(cfg Config) error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, ", "))
}

func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
