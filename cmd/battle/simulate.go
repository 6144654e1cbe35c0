package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
)

// simulation tallies a batch of bot-vs-bot battles
type simulation struct {
	battles    int
	wins       map[string]int
	draws      int
	totalTurns int
}

func (c *cli) newSimulateCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run bot-vs-bot battles and report win rates",
		Long: `Run a batch of bot-vs-bot battles. The batch is fully reproducible
from the seed it reports.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				return errors.InvalidArgumentf("-n must be positive: %d", count)
			}
			sim, err := c.simulate(cmd.Context(), count)
			if err != nil {
				return err
			}
			c.printSimulation(sim)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 100, "number of battles to run")

	return cmd
}

func (c *cli) simulate(ctx context.Context, count int) (*simulation, error) {
	a, err := newApp(ctx, c.cfg, appOptions{
		creatureIDs: idgen.NewSequential("creature"),
		exitPolicy:  battle.Quit,
	})
	if err != nil {
		return nil, err
	}
	defer a.Close()

	sim := &simulation{wins: map[string]int{}}
	for i := 0; i < count; i++ {
		red, redControl, err := a.newBot("Red", "bot-red")
		if err != nil {
			return nil, err
		}
		blue, blueControl, err := a.newBot("Blue", "bot-blue")
		if err != nil {
			return nil, err
		}

		out, err := a.battles.Run(ctx, &battle.RunInput{
			Player:   &battle.Combatant{Actor: red, Controller: redControl},
			Opponent: &battle.Combatant{Actor: blue, Controller: blueControl},
			Seed:     c.cfg.Battle.Seed,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "battle %d failed", i+1)
		}

		sim.battles++
		sim.totalTurns += out.Result.Turns
		if out.Winner == nil {
			sim.draws++
			continue
		}
		sim.wins[out.Winner.Name]++
	}

	return sim, nil
}

func (c *cli) printSimulation(sim *simulation) {
	fmt.Fprintf(c.out, "Simulated %d battles (seed %d)\n", sim.battles, c.cfg.Battle.Seed)
	for _, name := range []string{"Red", "Blue"} {
		wins := sim.wins[name]
		fmt.Fprintf(c.out, "%-5s wins: %d (%.1f%%)\n", name, wins, 100*float64(wins)/float64(sim.battles))
	}
	if sim.draws > 0 {
		fmt.Fprintf(c.out, "Draws: %d\n", sim.draws)
	}
	fmt.Fprintf(c.out, "Average turns: %.2f\n", float64(sim.totalTurns)/float64(sim.battles))
}
