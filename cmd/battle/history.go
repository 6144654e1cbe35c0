package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

func (c *cli) newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently recorded battles",
		Long: `List recently recorded battles. Only the redis backend keeps results
between runs.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.cfg.History.Backend == config.HistoryNone {
				return errors.FailedPrecondition("battle history is disabled")
			}

			a, err := newApp(cmd.Context(), c.cfg, appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			return c.printHistory(cmd.Context(), a.repo, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of battles to list")

	return cmd
}
