package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newMonitorCommand(ctx *commandContext) *cobra.Command {
	var channelFlag string
	var reportFlag bool

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Check the channel feed once and process any new uploads",
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

			rep, err := p.proc.Monitor(runCtx)
			if err != nil {
				return err
			}
			if reportFlag {
				p.saveReport(runCtx, rep)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&channelFlag, "channel", "", "YouTube channel ID (overrides YOUTUBE_CHANNEL_ID and the config)")
	cmd.Flags().BoolVar(&reportFlag, "report", false, "Write a JSON run report into the output directory")

	return cmd
}
