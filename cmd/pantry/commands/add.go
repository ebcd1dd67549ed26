package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"go.trai.ch/pantry/internal/core/domain"
	enginesync "go.trai.ch/pantry/internal/engine/sync"
)

func (c *CLI) newAddCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to the demo list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c.seedDemo()

			// Wait for the first item snapshot so duplicate detection and the
			// product catalog see the current list.
			ready := make(chan struct{}, 1)
			c.app.Controller.SetOnChange(func(enginesync.Snapshot) {
				select {
				case ready <- struct{}{}:
				default:
				}
			})
			if err := c.app.Controller.Open(ctx, demoOwnerID, demoListID); err != nil {
				return err
			}
			defer c.app.Controller.Close()
			select {
			case <-ready:
			case <-time.After(2 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}

			name := strings.Join(args, " ")
			out := cmd.OutOrStdout()
			for _, dup := range c.app.Controller.CheckDuplicates(name) {
				fmt.Fprintf(out, "similar item already on the list: %s\n", dup.Name)
			}

			id, err := c.app.Controller.AddItem(ctx, domain.ListItem{
				Name:     name,
				Category: category,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "added %q (%s)\n", name, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category id for the new item")
	return cmd
}
