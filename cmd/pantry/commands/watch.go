package commands

import (
	"sync"
	"time"

	"github.com/spf13/cobra"

	enginesync "go.trai.ch/pantry/internal/engine/sync"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	var streamFor time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Open the demo list and stream reconciled snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c.seedDemo()

			out := cmd.OutOrStdout()
			var mu sync.Mutex
			c.app.Controller.SetOnChange(func(snap enginesync.Snapshot) {
				mu.Lock()
				defer mu.Unlock()
				printSnapshot(out, snap)
			})

			if err := c.app.Controller.Open(ctx, demoOwnerID, demoListID); err != nil {
				return err
			}
			defer c.app.Controller.Close()

			select {
			case <-ctx.Done():
			case <-time.After(streamFor):
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&streamFor, "for", 5*time.Second, "How long to stream before exiting")
	return cmd
}
