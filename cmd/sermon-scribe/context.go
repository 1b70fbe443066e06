package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mwcockerill/sermon-scribe/internal/archive"
	"github.com/mwcockerill/sermon-scribe/internal/config"
	"github.com/mwcockerill/sermon-scribe/internal/discovery"
	"github.com/mwcockerill/sermon-scribe/internal/llm"
	"github.com/mwcockerill/sermon-scribe/internal/logger"
	"github.com/mwcockerill/sermon-scribe/internal/processor"
	"github.com/mwcockerill/sermon-scribe/internal/report"
	"github.com/mwcockerill/sermon-scribe/internal/sermon"
	"github.com/mwcockerill/sermon-scribe/internal/state"
	"github.com/mwcockerill/sermon-scribe/pkg/executor"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := "config.yaml"
		if c.configFlag != nil && strings.TrimSpace(*c.configFlag) != "" {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// pipeline bundles the collaborators a run mode needs.
type pipeline struct {
	cfg  *config.Config
	log  logger.Logger
	exec executor.Executor
	proc processor.Processor
}

// buildPipeline wires the full processing stack from the loaded configuration.
// channelOverride takes precedence over both the YOUTUBE_CHANNEL_ID environment
// variable and the config file.
func (c *commandContext) buildPipeline(channelOverride string, requireChannel bool) (*pipeline, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if channelOverride != "" {
		cfg.Channel.ID = channelOverride
	}
	if requireChannel && cfg.Channel.ID == "" {
		return nil, fmt.Errorf("no channel ID provided: use --channel, set YOUTUBE_CHANNEL_ID or configure channel.id")
	}

	log := logger.New(cfg.Logging.Level)
	exec := executor.New()

	provider, err := llm.New(llm.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.OpenAIKey,
		BaseURL:  cfg.LLM.BaseURL,
		APIKeys:  cfg.LLM.GeminiKeys,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("init llm provider: %w", err)
	}

	source := discovery.New(cfg.Channel.ID, exec, log)
	tracker := state.NewTracker(cfg.Paths.State)
	writer := archive.NewWriter(cfg.Paths.Output)
	locator := sermon.NewLocator(provider, log)
	cleaner := sermon.NewCleaner(provider, log)

	proc := processor.New(cfg, source, tracker, writer, locator, cleaner, exec, log)

	return &pipeline{cfg: cfg, log: log, exec: exec, proc: proc}, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (p *pipeline) saveReport(ctx context.Context, rep *report.Report) {
	path, err := rep.Save(p.cfg.Paths.Output)
	if err != nil {
		p.log.Warn(ctx, "Failed to write run report: %v", err)
		return
	}
	p.log.Info(ctx, "Run report written: %s", path)
}
