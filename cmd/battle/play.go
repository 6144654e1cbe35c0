package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/actors"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/notify"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/prompt"
	battlerecord "github.com/KirkDiggler/rpg-battle/internal/repositories/battle_record"
)

const playerID = "player-1"

// Main menu entries
const (
	menuBattle  = "Battle"
	menuHistory = "History"
	menuQuit    = "Quit"
)

func (c *cli) newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Battle a bot from the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := c.play(cmd.Context())
			if errors.IsCanceled(err) {
				fmt.Fprintln(c.out, "Goodbye!")
				return nil
			}
			return err
		},
	}

	cmd.Flags().String("name", "Player", "your name")
	cmd.Flags().StringSlice("roster", nil, "species ids for your roster; empty picks at random")
	_ = c.v.BindPFlag("player.name", cmd.Flags().Lookup("name"))
	_ = c.v.BindPFlag("player.roster", cmd.Flags().Lookup("roster"))

	return cmd
}

func (c *cli) play(ctx context.Context) error {
	term := prompt.NewTerminal(c.in, c.out)

	a, err := newApp(ctx, c.cfg, appOptions{exitPolicy: confirmExit(term)})
	if err != nil {
		return err
	}
	defer a.Close()

	out := notify.SubscribeWriter(a.bus, c.out, playerID)
	defer func() { _ = out.Close() }()

	player, err := c.newPlayer(a)
	if err != nil {
		return err
	}
	human, err := actors.NewHuman(&actors.HumanConfig{Prompter: term})
	if err != nil {
		return err
	}

	for round := 1; ; round++ {
		choice, err := term.Choose(ctx, fmt.Sprintf("Welcome, %s!", player.Name), []string{menuBattle, menuHistory, menuQuit})
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if err := c.printHistory(ctx, a.repo, 5); err != nil {
				return err
			}
			continue
		case 2:
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}

		bot, botControl, err := a.newBot(fmt.Sprintf("Rival #%d", round), fmt.Sprintf("bot-%d", round))
		if err != nil {
			return err
		}

		result, err := a.battles.Run(ctx, &battle.RunInput{
			Player:   &battle.Combatant{Actor: player, Controller: human},
			Opponent: &battle.Combatant{Actor: bot, Controller: botControl},
			Seed:     c.cfg.Battle.Seed,
		})
		if err != nil {
			return err
		}
		if result.Exit == entities.SceneQuit {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}
	}
}

// confirmExit returns to the menu only on an explicit yes
func confirmExit(term *prompt.Terminal) battle.ExitPolicy {
	return battle.ExitPolicyFunc(func(ctx context.Context, _ *entities.BattleResult) (entities.SceneExit, error) {
		again, err := term.Confirm(ctx, "The battle is over. Return to the menu?")
		if err != nil {
			return "", err
		}
		if again {
			return entities.SceneReturnToMenu, nil
		}
		return entities.SceneQuit, nil
	})
}

func (c *cli) newPlayer(a *app) (*entities.Actor, error) {
	var (
		roster []*entities.Creature
		err    error
	)
	if len(c.cfg.Player.Roster) > 0 {
		roster, err = a.catalog.BuildRoster(c.cfg.Player.Roster)
	} else {
		roster, err = a.catalog.RandomRoster(a.roller, c.cfg.Battle.RosterSize)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to build player roster")
	}

	return &entities.Actor{
		ID:     playerID,
		Name:   c.cfg.Player.Name,
		Kind:   entities.ActorPlayer,
		Roster: roster,
	}, nil
}

func (c *cli) printHistory(ctx context.Context, repo battlerecord.Repository, limit int) error {
	if repo == nil {
		fmt.Fprintln(c.out, "Battle history is disabled.")
		return nil
	}

	out, err := repo.ListRecent(ctx, &battlerecord.ListRecentInput{Limit: limit})
	if err != nil {
		return err
	}
	if len(out.Results) == 0 {
		fmt.Fprintln(c.out, "No battles recorded yet.")
		return nil
	}

	for _, r := range out.Results {
		fmt.Fprintf(c.out, "%s  %s  %s\n", r.EndedAt.Format("2006-01-02 15:04"), r.ID, describeResult(r))
	}
	return nil
}

func describeResult(r *entities.BattleResult) string {
	if r.WinnerName == "" {
		return fmt.Sprintf("%s and %s drew after %d turns", r.PlayerName, r.BotName, r.Turns)
	}
	return fmt.Sprintf("%s beat %s in %d turns", r.WinnerName, r.LoserName, r.Turns)
}
