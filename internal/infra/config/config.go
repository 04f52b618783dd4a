package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Download  DownloadConfig  `mapstructure:"download" yaml:"download"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Store     StoreConfig     `mapstructure:"store" yaml:"store"`
	Web       WebConfig       `mapstructure:"web" yaml:"web"`

	Port string `mapstructure:"port" yaml:"port"`
}

type DownloadConfig struct {
	// WorkDir is the parent of every per-request scratch directory
	WorkDir      string `mapstructure:"work_dir" yaml:"work_dir"`
	YTDLPPath    string `mapstructure:"ytdlp_path" yaml:"ytdlp_path"`
	FFmpegPath   string `mapstructure:"ffmpeg_path" yaml:"ffmpeg_path"`
	Retries      int    `mapstructure:"retries" yaml:"retries"`
	AudioBitrate string `mapstructure:"audio_bitrate" yaml:"audio_bitrate"`
	TagAudio     bool   `mapstructure:"tag_audio" yaml:"tag_audio"`
}

type RateLimitConfig struct {
	PerSecond float64 `mapstructure:"per_second" yaml:"per_second"`
	Burst     int     `mapstructure:"burst" yaml:"burst"`
}

type LogConfig struct {
	Path          string `mapstructure:"path" yaml:"path"`
	Level         string `mapstructure:"level" yaml:"level"`
	IncludeStdout bool   `mapstructure:"include_stdout" yaml:"include_stdout"`
}

type StoreConfig struct {
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

type WebConfig struct {
	StaticDir string `mapstructure:"static_dir" yaml:"static_dir"`
}

func Load(path string) (*Config, error) {

	if path == "" {
		path = "config.yaml"
	}

	v := viper.New()

	// Set Defaults
	v.SetDefault("port", "8080")
	v.SetDefault("download.work_dir", "./work")
	v.SetDefault("download.retries", 5)
	v.SetDefault("download.audio_bitrate", "192K")
	v.SetDefault("download.tag_audio", true)
	v.SetDefault("rate_limit.per_second", 25)
	v.SetDefault("rate_limit.burst", 50)
	v.SetDefault("log.path", "tubegrab.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.include_stdout", true)
	v.SetDefault("store.sqlite_path", "./data/tubegrab.db")
	v.SetDefault("web.static_dir", "./web")

	// The config file is optional: defaults plus env vars are enough to run,
	// matching how the service is usually deployed in a container.
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// Support Environment Variables
	v.SetEnvPrefix("TUBEGRAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		c.Port = "8080"
	}

	if c.Download.WorkDir == "" {
		c.Download.WorkDir = "./work"
	}

	if c.Download.Retries < 0 {
		return fmt.Errorf("download.retries must not be negative, got %d", c.Download.Retries)
	}

	if c.RateLimit.PerSecond <= 0 {
		// Default to a sane value
		c.RateLimit.PerSecond = 25
	}

	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = int(c.RateLimit.PerSecond) * 2
	}

	return nil
}
