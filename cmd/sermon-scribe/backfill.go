package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mwcockerill/sermon-scribe/internal/processor"
	"github.com/mwcockerill/sermon-scribe/internal/publisher"
	"github.com/mwcockerill/sermon-scribe/internal/report"
)

func newBackfillCommand(ctx *commandContext) *cobra.Command {
	var (
		channelFlag string
		daysFlag    int
		dryRunFlag  bool
		pushFlag    bool
		reportFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Process recent channel uploads that have no transcript yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			p, err := ctx.buildPipeline(channelFlag, true)
			if err != nil {
				return err
			}
			if err := ensureDirectories(p.cfg.Paths.Output, p.cfg.Paths.Temp); err != nil {
				return err
			}

			rep, err := p.proc.Backfill(runCtx, processor.BackfillOptions{
				LookbackDays: daysFlag,
				DryRun:       dryRunFlag,
			})
			if err != nil {
				return err
			}
			if reportFlag {
				p.saveReport(runCtx, rep)
			}
			if dryRunFlag {
				return nil
			}

			persisted := rep.Count(report.StatusPersisted)
			if pushFlag && persisted > 0 {
				pub := publisher.New(p.cfg.Git.RepoDir, p.exec, p.log)
				message := publisher.CommitMessage(persisted)
				if err := pub.Publish(runCtx, rep.PersistedPaths(), message); err != nil {
					return fmt.Errorf("push transcripts: %w", err)
				}
			}

			// A run where every candidate failed is an error; a run of
			// nothing but no-sermon skips is not.
			if failed := rep.Count(report.StatusFailed); failed > 0 && persisted == 0 {
				return fmt.Errorf("no transcripts produced: %d of %d videos failed", failed, len(rep.Outcomes))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&channelFlag, "channel", "", "YouTube channel ID (overrides YOUTUBE_CHANNEL_ID and the config)")
	cmd.Flags().IntVar(&daysFlag, "days", 0, "Look back this many days (default from config, 7)")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Show what would be processed without doing it")
	cmd.Flags().BoolVar(&pushFlag, "push", false, "Commit and push produced transcripts")
	cmd.Flags().BoolVar(&reportFlag, "report", false, "Write a JSON run report into the output directory")

	return cmd
}
