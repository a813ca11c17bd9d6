package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rajannraj/rtomock/internal/certificate"
	"github.com/rajannraj/rtomock/internal/exam"
)

// EnvPrefix is prepended to every environment variable, e.g. RTOMOCK_EXAM_DURATION.
const EnvPrefix = "RTOMOCK"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files, .env, environment
// variables and command-line flags.
type Config struct {
	Env         string      `mapstructure:"env"` // local, production
	DB          string      `mapstructure:"db"`  // SQLite file for preferences
	Log         Log         `mapstructure:"log"`
	Bank        Bank        `mapstructure:"bank"`
	Exam        Exam        `mapstructure:"exam"`
	Certificate Certificate `mapstructure:"certificate"`
}

// Log configures the zap logger.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Bank points at an alternate question bank. Empty means the embedded one.
type Bank struct {
	File string `mapstructure:"file"`
}

// Exam holds the test rules.
type Exam struct {
	Duration         time.Duration `mapstructure:"duration"`
	QuestionCount    int           `mapstructure:"question_count"`
	PassPercent      int           `mapstructure:"pass_percent"`
	ExcellentPercent int           `mapstructure:"excellent_percent"`
}

// Certificate holds export and branding settings.
type Certificate struct {
	OutputDir  string `mapstructure:"output_dir"`
	Prefix     string `mapstructure:"prefix"`
	SchoolName string `mapstructure:"school_name"`
	SchoolLine string `mapstructure:"school_line"`
	Logo       string `mapstructure:"logo"`
}

// ExamConfig converts the exam section for the session machine.
func (c *Config) ExamConfig() exam.Config {
	return exam.Config{
		QuestionCount: c.Exam.QuestionCount,
		Duration:      c.Exam.Duration,
		Policy: exam.Policy{
			PassPercent:      c.Exam.PassPercent,
			ExcellentPercent: c.Exam.ExcellentPercent,
		},
	}
}

// Branding converts the certificate section.
func (c *Config) Branding() certificate.Branding {
	return certificate.Branding{
		Prefix:     c.Certificate.Prefix,
		SchoolName: c.Certificate.SchoolName,
		SchoolLine: c.Certificate.SchoolLine,
		LogoPath:   c.Certificate.Logo,
	}
}

// Options controls where Load looks.
type Options struct {
	ConfigFile string         // explicit config file; empty searches the default paths
	EnvFile    string         // .env file; empty means ".env" in the working directory
	Flags      *pflag.FlagSet // flags bound by key name, may be nil
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"db":       "db",
	"log-file": "log.file",
	"bank":     "bank.file",
	"out":      "certificate.output_dir",
}

// Load reads configuration in increasing priority: defaults, config file,
// .env, environment, flags.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "rtomock"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		secondsToDurationHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// secondsToDurationHook reads a bare number such as RTOMOCK_EXAM_DURATION=1200
// as seconds. Values with a unit ("20m", "1200s") are left to the standard
// duration hook.
func secondsToDurationHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if to != durationType || from == durationType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return data, nil
			}
			return time.Duration(n) * time.Second, nil
		case int:
			return time.Duration(v) * time.Second, nil
		case int64:
			return time.Duration(v) * time.Second, nil
		case float64:
			return time.Duration(v * float64(time.Second)), nil
		}
		return data, nil
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("db", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("bank.file", "")
	v.SetDefault("exam.duration", exam.DefaultDuration)
	v.SetDefault("exam.question_count", exam.DefaultQuestionCount)
	v.SetDefault("exam.pass_percent", exam.DefaultPassPercent)
	v.SetDefault("exam.excellent_percent", exam.DefaultExcellentPercent)
	v.SetDefault("certificate.output_dir", ".")
	v.SetDefault("certificate.prefix", certificate.DefaultPrefix)
	v.SetDefault("certificate.school_name", certificate.DefaultSchoolName)
	v.SetDefault("certificate.school_line", certificate.DefaultSchoolLine)
	v.SetDefault("certificate.logo", "")
}

func (c *Config) resolvePaths() error {
	if c.DB == "" {
		p, err := DefaultDBPath()
		if err != nil {
			return err
		}
		c.DB = p
	}
	if c.Log.File == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return err
		}
		c.Log.File = p
	}
	return nil
}

// Validate rejects values the program cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Exam.Duration < time.Second {
		errs = append(errs, fmt.Errorf("exam.duration must be at least 1s, got %s", c.Exam.Duration))
	}
	if c.Exam.QuestionCount <= 0 {
		errs = append(errs, fmt.Errorf("exam.question_count must be positive, got %d", c.Exam.QuestionCount))
	}
	if err := c.ExamConfig().Policy.Validate(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// DefaultDBPath returns $XDG_DATA_HOME/rtomock/rtomock.db, falling back to
// ~/.local/share.
func DefaultDBPath() (string, error) {
	return xdgPath("XDG_DATA_HOME", filepath.Join(".local", "share"), "rtomock.db")
}

// DefaultLogPath returns $XDG_STATE_HOME/rtomock/rtomock.log, falling back to
// ~/.local/state.
func DefaultLogPath() (string, error) {
	return xdgPath("XDG_STATE_HOME", filepath.Join(".local", "state"), "rtomock.log")
}

func xdgPath(env, fallback, file string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, "rtomock", file), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
