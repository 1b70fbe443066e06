package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Channel ChannelConfig `yaml:"channel"`
	Paths   PathsConfig   `yaml:"paths"`
	Filter  FilterConfig  `yaml:"filter"`
	Whisper WhisperConfig `yaml:"whisper"`
	LLM     LLMConfig     `yaml:"llm"`
	Archive ArchiveConfig `yaml:"archive"`
	Intake  IntakeConfig  `yaml:"intake"`
	Git     GitConfig     `yaml:"git"`
	Logging LoggingConfig `yaml:"logging"`
}

type ChannelConfig struct {
	ID string `yaml:"id"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	State  string `yaml:"state"`
	Temp   string `yaml:"temp"`
}

type FilterConfig struct {
	Exclusions   []string `yaml:"exclusions"`
	LookbackDays int      `yaml:"lookback_days"`
	ListingLimit int      `yaml:"listing_limit"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
	Prompt     string `yaml:"prompt"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`

	// API keys come from the environment, never from the file.
	OpenAIKey  string   `yaml:"-"`
	GeminiKeys []string `yaml:"-"`
}

type ArchiveConfig struct {
	DocxExport bool `yaml:"docx_export"`
}

type IntakeConfig struct {
	Dir           string   `yaml:"dir"`
	Extensions    []string `yaml:"extensions"`
	SettleSeconds int      `yaml:"settle_seconds"`
	MaxConcurrent int      `yaml:"max_concurrent"`
}

type GitConfig struct {
	RepoDir string `yaml:"repo_dir"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the configuration file, validates it and fills defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.PopulateFromEnv()
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.State == "" {
		c.Paths.State = "state.json"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads <= 0 {
		c.Whisper.Threads = 4
	}
	if len(c.Filter.Exclusions) == 0 {
		c.Filter.Exclusions = []string{"Daily", "Morning"}
	}
	if c.Filter.LookbackDays <= 0 {
		c.Filter.LookbackDays = 7
	}
	if c.Filter.ListingLimit <= 0 {
		c.Filter.ListingLimit = 20
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.Intake.Dir == "" {
		c.Intake.Dir = "data/intake"
	}
	if len(c.Intake.Extensions) == 0 {
		c.Intake.Extensions = []string{".mp3", ".m4a", ".wav", ".flac", ".mp4", ".mov", ".mkv", ".webm"}
	}
	if c.Intake.SettleSeconds <= 0 {
		c.Intake.SettleSeconds = 2
	}
	if c.Intake.MaxConcurrent <= 0 {
		c.Intake.MaxConcurrent = 1
	}
	if c.Git.RepoDir == "" {
		c.Git.RepoDir = "."
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// PopulateFromEnv fills secrets and overrides from environment variables.
func (c *Config) PopulateFromEnv() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.LLM.OpenAIKey = key
	}
	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				c.LLM.GeminiKeys = append(c.LLM.GeminiKeys, k)
			}
		}
	}
	if id := os.Getenv("YOUTUBE_CHANNEL_ID"); id != "" {
		c.Channel.ID = id
	}
	if model := os.Getenv("GPT_MODEL"); model != "" {
		c.LLM.Model = model
	}
}
