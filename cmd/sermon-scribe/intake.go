package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwcockerill/sermon-scribe/internal/watcher"
)

func newIntakeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "intake",
		Short: "Watch a local directory and transcribe recordings dropped into it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.buildPipeline("", false)
			if err != nil {
				return err
			}
			cfg := p.cfg
			if err := ensureDirectories(cfg.Intake.Dir, cfg.Paths.Output, cfg.Paths.Temp); err != nil {
				return err
			}

			settle := time.Duration(cfg.Intake.SettleSeconds) * time.Second
			w, err := watcher.New(cfg.Intake.Dir, cfg.Intake.Extensions, settle, cfg.Intake.MaxConcurrent, p.proc.ProcessLocal, p.log)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			runCtx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				errChan <- w.Start(runCtx)
			}()

			p.log.Info(runCtx, "========================================")
			p.log.Info(runCtx, "Sermon intake is ready")
			p.log.Info(runCtx, "Monitoring: %s", cfg.Intake.Dir)
			p.log.Info(runCtx, "Output: %s", cfg.Paths.Output)
			p.log.Info(runCtx, "Press Ctrl+C to stop")
			p.log.Info(runCtx, "========================================")

			select {
			case <-sigChan:
				p.log.Info(runCtx, "Shutdown signal received")
				cancel()
				// Start drains in-flight processing before returning.
				<-errChan
			case err := <-errChan:
				if err != nil && !errors.Is(err, context.Canceled) {
					return fmt.Errorf("watch intake directory: %w", err)
				}
			}

			p.log.Info(context.Background(), "Intake stopped")
			return nil
		},
	}
}
