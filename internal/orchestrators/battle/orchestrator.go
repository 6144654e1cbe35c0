// Package battle runs a full two-actor battle: setup, action collection,
// turn resolution, recording the result and choosing the scene exit.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	battlerecord "github.com/KirkDiggler/rpg-battle/internal/repositories/battle_record"
)

// DefaultMaxChoiceAttempts is how many illegal choices an actor may make in
// one turn before the battle fails
const DefaultMaxChoiceAttempts = 3

// Service defines the interface for battle operations
type Service interface {
	// Run plays a battle to completion
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Resolver    engine.TurnResolver
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// Optional
	Notifier   engine.Notifier
	Repository battlerecord.Repository
	ExitPolicy ExitPolicy

	HPPolicy          HPPolicy
	MaxChoiceAttempts int
	// MaxTurns aborts a battle that runs too long; zero is unlimited
	MaxTurns int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.HPPolicy != "" {
		errors.ValidateEnum("HPPolicy", string(c.HPPolicy), HPPolicies(), vb)
	}
	if c.MaxChoiceAttempts < 0 {
		vb.Field("MaxChoiceAttempts", "must not be negative")
	}
	if c.MaxTurns < 0 {
		vb.Field("MaxTurns", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	resolver    engine.TurnResolver
	idGen       idgen.Generator
	clock       clock.Clock
	notifier    engine.Notifier
	repo        battlerecord.Repository
	exitPolicy  ExitPolicy
	hpPolicy    HPPolicy
	maxAttempts int
	maxTurns    int
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		resolver:    cfg.Resolver,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		notifier:    cfg.Notifier,
		repo:        cfg.Repository,
		exitPolicy:  cfg.ExitPolicy,
		hpPolicy:    cfg.HPPolicy,
		maxAttempts: cfg.MaxChoiceAttempts,
		maxTurns:    cfg.MaxTurns,
	}
	if o.notifier == nil {
		o.notifier = engine.Discard
	}
	if o.exitPolicy == nil {
		o.exitPolicy = ReturnToMenu
	}
	if o.hpPolicy == "" {
		o.hpPolicy = HPResetOnStart
	}
	if o.maxAttempts == 0 {
		o.maxAttempts = DefaultMaxChoiceAttempts
	}

	return o, nil
}

// Run plays a battle to completion
func (o *orchestrator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if err := validateRunInput(input); err != nil {
		return nil, err
	}

	player, opponent := input.Player, input.Opponent
	startedAt := o.clock.Now()

	if o.hpPolicy == HPResetOnStart {
		restore(player.Actor, opponent.Actor)
	}

	o.broadcast(ctx, fmt.Sprintf("%s challenges %s!", opponent.Actor.Name, player.Actor.Name))
	for _, c := range []*Combatant{player, opponent} {
		if sent := c.Actor.SendOutFirst(); sent != nil {
			o.broadcast(ctx, fmt.Sprintf("%s sent out %s!", c.Actor.Name, sent.Name))
		}
	}

	slog.Info("Battle started",
		"player", player.Actor.Name,
		"opponent", opponent.Actor.Name,
		"seed", input.Seed,
	)

	var (
		outcome *engine.TurnOutcome
		turn    int
	)
	for {
		turn++
		if o.maxTurns > 0 && turn > o.maxTurns {
			return nil, errors.Abortedf("battle exceeded %d turns", o.maxTurns).
				WithMeta("player", player.Actor.ID).
				WithMeta("opponent", opponent.Actor.ID)
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "battle canceled")
		}

		first, err := o.collect(ctx, player, opponent)
		if err != nil {
			return nil, err
		}
		second, err := o.collect(ctx, opponent, player)
		if err != nil {
			return nil, err
		}

		outcome, err = o.resolver.ResolveTurn(ctx, &engine.TurnInput{
			Turn:   turn,
			First:  first,
			Second: second,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve turn %d", turn)
		}
		if outcome.Ended {
			break
		}
	}

	result := o.buildResult(input, outcome, turn, startedAt)

	slog.Info("Battle finished",
		"battle_id", result.ID,
		"winner", result.WinnerName,
		"turns", result.Turns,
	)

	o.record(ctx, result)

	if o.hpPolicy == HPResetOnEnd {
		restore(player.Actor, opponent.Actor)
	}

	exit, err := o.exitPolicy.AfterBattle(ctx, result)
	if err != nil {
		return nil, errors.Wrap(err, "failed to choose scene exit")
	}

	return &RunOutput{
		Result: result,
		Exit:   exit,
		Winner: outcome.Winner,
		Loser:  outcome.Loser,
	}, nil
}

func validateRunInput(input *RunInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	for field, c := range map[string]*Combatant{"Player": input.Player, "Opponent": input.Opponent} {
		if c == nil {
			vb.RequiredField(field)
			continue
		}
		if c.Actor == nil {
			vb.RequiredField(field + ".Actor")
		} else if len(c.Actor.Roster) == 0 {
			vb.Field(field+".Actor.Roster", "must not be empty")
		}
		if c.Controller == nil {
			vb.RequiredField(field + ".Controller")
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if input.Player.Actor == input.Opponent.Actor {
		return errors.InvalidArgument("an actor cannot battle itself")
	}
	return nil
}

// collect asks c for an action, re-asking on illegal choices. An actor with
// nothing able to act queues no action.
func (o *orchestrator) collect(ctx context.Context, c, opponent *Combatant) (*engine.Move, error) {
	move := &engine.Move{Actor: c.Actor, Controller: c.Controller}
	if len(c.Actor.LegalActions()) == 0 {
		return move, nil
	}

	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		action, err := c.Controller.ChooseAction(ctx, c.Actor, opponent.Actor)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to collect action from %s", c.Actor.Name)
		}

		verr := c.Actor.ValidateAction(action)
		if verr == nil {
			move.Action = action
			return move, nil
		}

		slog.Warn("Rejected illegal action",
			"actor_id", c.Actor.ID,
			"attempt", attempt,
			"error", verr,
		)
		o.notifier.Notify(ctx, &engine.Notification{
			Recipient: c.Actor,
			Message:   fmt.Sprintf("That action is not allowed: %s", errors.GetMessage(verr)),
		})
	}

	return nil, errors.FailedPreconditionf("%s made %d illegal choices", c.Actor.Name, o.maxAttempts).
		WithMeta("actor_id", c.Actor.ID)
}

func (o *orchestrator) buildResult(input *RunInput, outcome *engine.TurnOutcome, turns int, startedAt time.Time) *entities.BattleResult {
	result := &entities.BattleResult{
		ID:         o.idGen.Generate(),
		PlayerName: input.Player.Actor.Name,
		BotName:    input.Opponent.Actor.Name,
		Turns:      turns,
		Seed:       input.Seed,
		StartedAt:  startedAt,
		EndedAt:    o.clock.Now(),
	}
	if outcome.Winner != nil {
		result.WinnerID = outcome.Winner.ID
		result.WinnerName = outcome.Winner.Name
		result.Survivors = entities.SummarizeRoster(outcome.Winner)
	}
	if outcome.Loser != nil {
		result.LoserName = outcome.Loser.Name
	}
	return result
}

// record saves the result when a repository is configured. The battle never
// depends on persistence, so failures are only logged.
func (o *orchestrator) record(ctx context.Context, result *entities.BattleResult) {
	if o.repo == nil {
		return
	}
	if _, err := o.repo.Save(ctx, &battlerecord.SaveInput{Result: result}); err != nil {
		slog.Warn("Failed to record battle result",
			"battle_id", result.ID,
			"error", err,
		)
	}
}

func (o *orchestrator) broadcast(ctx context.Context, msg string) {
	o.notifier.Notify(ctx, &engine.Notification{Message: msg})
}

func restore(actors ...*entities.Actor) {
	for _, a := range actors {
		if healed := a.RestoreAll(); healed > 0 {
			slog.Debug("Restored roster HP", "actor", a.Name, "healed", healed)
		}
	}
}
