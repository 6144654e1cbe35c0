package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// tieBreakSides is the die rolled when both attackers share a speed
const tieBreakSides = 2

// Config holds the dependencies for the turn resolver
type Config struct {
	Roller   dice.Roller
	Notifier Notifier
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type resolver struct {
	roller   dice.Roller
	notifier Notifier
}

// New creates a turn resolver. A nil Notifier discards messages.
func New(cfg *Config) (TurnResolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = Discard
	}

	return &resolver{
		roller:   cfg.Roller,
		notifier: notifier,
	}, nil
}

// turn is the working state of one ResolveTurn call
type turn struct {
	*resolver
	ctx     context.Context
	number  int
	moves   [2]*Move
	outcome *TurnOutcome
}

// attacker is an attack queued by the creature that was active at queue time
type attacker struct {
	move     *Move
	opponent *Move
	creature *entities.Creature
	skill    *entities.Skill
}

// ResolveTurn applies both moves: swaps first, then attacks by descending
// speed. Every HP change is followed by a faint check and a battle-end check,
// and once the battle ends any remaining action is discarded.
func (r *resolver) ResolveTurn(ctx context.Context, input *TurnInput) (*TurnOutcome, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMove("First", input.First); err != nil {
		return nil, err
	}
	if err := validateMove("Second", input.Second); err != nil {
		return nil, err
	}

	t := &turn{
		resolver: r,
		ctx:      ctx,
		number:   input.Turn,
		moves:    [2]*Move{input.First, input.Second},
		outcome:  &TurnOutcome{},
	}

	if t.checkBattleEnd() {
		return t.outcome, nil
	}
	for _, m := range t.moves {
		if m.Action == nil {
			return nil, errors.FailedPreconditionf("%s queued no action but can still fight", m.Actor.Name).
				WithMeta("actor_id", m.Actor.ID)
		}
	}

	if err := t.swapPhase(); err != nil {
		return nil, err
	}

	order, err := t.attackOrder()
	if err != nil {
		return nil, err
	}

	for _, a := range order {
		if t.outcome.Ended {
			break
		}
		if err := t.executeAttack(a); err != nil {
			return nil, err
		}
	}

	return t.outcome, nil
}

func validateMove(field string, m *Move) error {
	vb := errors.NewValidationBuilder()
	if m == nil {
		vb.RequiredField(field)
		return vb.Build()
	}
	if m.Actor == nil {
		vb.RequiredField(field + ".Actor")
	}
	if m.Controller == nil {
		vb.RequiredField(field + ".Controller")
	}
	return vb.Build()
}

func (t *turn) opponentOf(m *Move) *Move {
	if t.moves[0] == m {
		return t.moves[1]
	}
	return t.moves[0]
}

// swapPhase applies every queued swap before any attack is ordered
func (t *turn) swapPhase() error {
	for _, m := range t.moves {
		swap, ok := m.Action.(*entities.Swap)
		if !ok {
			continue
		}

		previous := m.Actor.Active
		if err := m.Actor.SwitchTo(swap.Target); err != nil {
			return errors.Wrap(err, "failed to apply swap")
		}

		msg := fmt.Sprintf("%s swapped to %s!", m.Actor.Name, swap.Target.Name)
		if previous != nil {
			msg = fmt.Sprintf("%s withdrew %s and sent out %s!", m.Actor.Name, previous.Name, swap.Target.Name)
		}
		t.emit(&Event{
			Kind:     EventSwapped,
			Actor:    m.Actor,
			Creature: swap.Target,
			Message:  msg,
		})
	}
	return nil
}

// attackOrder sorts attackers by descending speed. Only an exact tie between
// two attackers consumes a roll from the shared roller.
func (t *turn) attackOrder() ([]*attacker, error) {
	var order []*attacker
	for _, m := range t.moves {
		attack, ok := m.Action.(*entities.Attack)
		if !ok {
			continue
		}
		order = append(order, &attacker{
			move:     m,
			opponent: t.opponentOf(m),
			creature: m.Actor.Active,
			skill:    attack.Skill,
		})
	}

	if len(order) < 2 {
		return order, nil
	}

	first, second := order[0], order[1]
	switch {
	case second.creature.Stats.Speed > first.creature.Stats.Speed:
		order[0], order[1] = second, first
	case second.creature.Stats.Speed == first.creature.Stats.Speed:
		roll, err := t.roller.Roll(tieBreakSides)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll speed tie-break")
		}
		t.outcome.TieBreakRolled = true
		if roll != 1 {
			order[0], order[1] = second, first
		}
		slog.Debug("Speed tie broken",
			"turn", t.number,
			"roll", roll,
			"first", order[0].move.Actor.Name,
		)
	}
	return order, nil
}

func (t *turn) executeAttack(a *attacker) error {
	actor := a.move.Actor
	if actor.Active != a.creature || a.creature.IsFainted() {
		t.emit(&Event{
			Kind:     EventSkipped,
			Actor:    actor,
			Creature: a.creature,
			Skill:    a.skill,
			Message:  fmt.Sprintf("%s can no longer use %s.", a.creature.Name, a.skill.Name),
		})
		return nil
	}

	defenderOwner := a.opponent.Actor
	defender := defenderOwner.Active
	if defender == nil {
		t.checkBattleEnd()
		return nil
	}

	result := CalculateDamage(a.creature, defender, a.skill)
	defender.ApplyDamage(result.Final)

	msg := fmt.Sprintf("%s used %s!", a.creature.Name, a.skill.Name)
	if eff := Effectiveness(result.Multiplier); eff != "" {
		msg += " " + eff
	}
	msg += fmt.Sprintf(" %s took %d damage (%d/%d HP).", defender.Name, result.Final, defender.HP, defender.MaxHP)

	t.emit(&Event{
		Kind:     EventAttacked,
		Actor:    actor,
		Creature: a.creature,
		Target:   defender,
		Skill:    a.skill,
		Damage:   &result,
		Message:  msg,
	})

	if defender.IsFainted() {
		return t.handleFaint(a.opponent, defender)
	}
	return nil
}

// handleFaint runs the forced swap for the owner of a fainted creature, or
// ends the battle when nothing healthy remains.
func (t *turn) handleFaint(owner *Move, fainted *entities.Creature) error {
	t.emit(&Event{
		Kind:     EventFainted,
		Actor:    owner.Actor,
		Creature: fainted,
		Message:  fmt.Sprintf("%s's %s fainted!", owner.Actor.Name, fainted.Name),
	})

	if t.checkBattleEnd() {
		return nil
	}

	replacement, err := owner.Controller.ChooseReplacement(t.ctx, owner.Actor)
	if err != nil {
		return errors.Wrapf(err, "failed to choose replacement for %s", owner.Actor.Name)
	}
	if replacement == nil || replacement == fainted {
		return errors.InvalidArgument("a healthy replacement is required").
			WithMeta("actor_id", owner.Actor.ID)
	}
	if err := owner.Actor.SwitchTo(replacement); err != nil {
		return errors.Wrap(err, "invalid replacement")
	}

	t.emit(&Event{
		Kind:     EventReplaced,
		Actor:    owner.Actor,
		Creature: replacement,
		Target:   fainted,
		Message:  fmt.Sprintf("%s sent out %s!", owner.Actor.Name, replacement.Name),
	})
	return nil
}

// checkBattleEnd ends the battle when either roster is fully fainted
func (t *turn) checkBattleEnd() bool {
	if t.outcome.Ended {
		return true
	}

	for _, m := range t.moves {
		if !m.Actor.AllFainted() {
			continue
		}

		m.Actor.ClearActive()
		winner := t.opponentOf(m).Actor
		t.outcome.Ended = true
		t.outcome.Winner = winner
		t.outcome.Loser = m.Actor
		t.emit(&Event{
			Kind:    EventBattleEnded,
			Actor:   m.Actor,
			Winner:  winner,
			Message: fmt.Sprintf("%s has no creatures left. %s wins!", m.Actor.Name, winner.Name),
		})
		return true
	}
	return false
}

func (t *turn) emit(e *Event) {
	e.Turn = t.number
	t.outcome.Events = append(t.outcome.Events, e)
	t.notifier.Notify(t.ctx, &Notification{
		Message: e.Message,
		Event:   e,
	})
}
