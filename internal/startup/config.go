package startup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"music-scheduler/internal/logging"
)

const (
	databaseFile = "scheduler.db"
	uploadSubdir = "uploads"
)

// Config is the daemon configuration, read from the environment.
type Config struct {
	Port                  string        `envconfig:"PORT" default:"8080"`
	MetricsPort           string        `envconfig:"METRICS_PORT" default:"9090"`
	MetricsEnabled        bool          `envconfig:"METRICS_ENABLED" default:"true"`
	DataDir               string        `envconfig:"DATA_DIR" default:"/data"`
	ScheduleCheckInterval time.Duration `envconfig:"SCHEDULE_CHECK_INTERVAL" default:"1m"`
	Timezone              string        `envconfig:"TIMEZONE" default:"Local"`
	OEmbedEndpoint        string        `envconfig:"OEMBED_ENDPOINT" default:"https://noembed.com/embed"`
	DefaultVolume         int           `envconfig:"DEFAULT_VOLUME" default:"70"`
	LogHealthChecks       bool          `envconfig:"LOG_HEALTH_CHECKS" default:"true"`
	TitleFetchWorkers     int           `envconfig:"TITLE_FETCH_WORKERS"`
	MaxUploadMB           int64         `envconfig:"MAX_UPLOAD_MB" default:"200"`

	// Derived from the fields above by parseConfig.
	DatabasePath string         `ignored:"true"`
	UploadDir    string         `ignored:"true"`
	Location     *time.Location `ignored:"true"`
}

// MaxUploadBytes returns the multipart upload ceiling in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// LoadConfig reads .env (if present) and the environment, validates the
// result and prepares the data directory.
func LoadConfig() (*Config, error) {
	printBanner()
	logSystemInfo()

	section("CONFIGURATION")
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Warn("  Failed to read .env: %v", err)
	}

	config, err := parseConfig()
	if err != nil {
		return nil, err
	}
	logConfig(config)

	section("DIRECTORY SETUP")
	if err := prepareDirectories(config); err != nil {
		return nil, err
	}
	return config, nil
}

// parseConfig fills a Config from the environment and derives the rest.
func parseConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	switch {
	case config.ScheduleCheckInterval <= 0:
		return nil, fmt.Errorf("SCHEDULE_CHECK_INTERVAL must be positive, got %v", config.ScheduleCheckInterval)
	case config.DefaultVolume < 1 || config.DefaultVolume > 100:
		return nil, fmt.Errorf("DEFAULT_VOLUME must be between 1 and 100, got %d", config.DefaultVolume)
	case config.MaxUploadMB <= 0:
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", config.MaxUploadMB)
	}

	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", config.Timezone, err)
	}
	config.Location = loc

	if config.DataDir, err = filepath.Abs(config.DataDir); err != nil {
		return nil, fmt.Errorf("resolving DATA_DIR: %w", err)
	}
	config.DatabasePath = filepath.Join(config.DataDir, databaseFile)
	config.UploadDir = filepath.Join(config.DataDir, uploadSubdir)

	return &config, nil
}

func logConfig(c *Config) {
	workers := "auto"
	if c.TitleFetchWorkers > 0 {
		workers = fmt.Sprint(c.TitleFetchWorkers)
	}

	for _, kv := range [][2]any{
		{"PORT", c.Port},
		{"METRICS_PORT", c.MetricsPort},
		{"METRICS_ENABLED", c.MetricsEnabled},
		{"DATA_DIR", c.DataDir},
		{"SCHEDULE_CHECK_INTERVAL", c.ScheduleCheckInterval},
		{"TIMEZONE", c.Location},
		{"OEMBED_ENDPOINT", c.OEmbedEndpoint},
		{"DEFAULT_VOLUME", c.DefaultVolume},
		{"TITLE_FETCH_WORKERS", workers},
		{"MAX_UPLOAD_MB", c.MaxUploadMB},
		{"LOG_HEALTH_CHECKS", c.LogHealthChecks},
		{"LOG_LEVEL", logging.GetLevel()},
	} {
		logging.Info("  %-25s %v", kv[0].(string)+":", kv[1])
	}
}

// prepareDirectories creates DATA_DIR and its uploads folder and checks that
// both accept writes. The database and every upload live under them.
func prepareDirectories(c *Config) error {
	for _, dir := range []struct{ name, path string }{
		{"data", c.DataDir},
		{"upload", c.UploadDir},
	} {
		if err := ensureDirectory(dir.path, dir.name); err != nil {
			return fmt.Errorf("%s directory: %w", dir.name, err)
		}
		if err := checkWritable(dir.path); err != nil {
			return fmt.Errorf("%s directory %s is not writable: %w", dir.name, dir.path, err)
		}
		logging.Info("  [OK] %s directory is writable: %s", dir.name, dir.path)
	}
	return nil
}

func ensureDirectory(path, name string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logging.Debug("  Creating %s directory %s", name, path)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("checking %s: %w", path, err)
	case !info.IsDir():
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	return nil
}

// checkWritable creates and removes a scratch file in dir.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".write-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		logging.Warn("closing %s: %v", name, err)
	}
	return os.Remove(name)
}
