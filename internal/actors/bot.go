package actors

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/roller"
)

// DefaultAttackChance is the percentage of turns a bot attacks rather than swaps
const DefaultAttackChance = 80

// Personality tunes bot decisions
type Personality struct {
	// AttackChance is a percentage in [0, 100]
	AttackChance int
}

// DefaultPersonality attacks 80% of the time
func DefaultPersonality() Personality {
	return Personality{AttackChance: DefaultAttackChance}
}

// BotConfig holds the dependencies for a Bot controller
type BotConfig struct {
	Roller      dice.Roller
	Personality *Personality
}

// Validate ensures all required dependencies are provided
func (c *BotConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Personality != nil {
		errors.ValidateRange("Personality.AttackChance", c.Personality.AttackChance, 0, 100, vb)
	}
	return vb.Build()
}

// Bot picks actions at random according to its Personality
type Bot struct {
	roller      dice.Roller
	personality Personality
}

// Ensure Bot implements engine.Controller
var _ engine.Controller = (*Bot)(nil)

// NewBot creates a bot controller. A nil Personality uses DefaultPersonality.
func NewBot(cfg *BotConfig) (*Bot, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	personality := DefaultPersonality()
	if cfg.Personality != nil {
		personality = *cfg.Personality
	}

	return &Bot{
		roller:      cfg.Roller,
		personality: personality,
	}, nil
}

// ChooseAction rolls d100: at or under AttackChance it attacks with a random
// skill, otherwise it swaps to a random bench creature. With an empty bench
// it always attacks.
func (b *Bot) ChooseAction(_ context.Context, self, _ *entities.Actor) (entities.Action, error) {
	if self == nil {
		return nil, errors.InvalidArgument("self is required")
	}
	if len(self.LegalActions()) == 0 {
		return nil, nil
	}

	roll, err := b.roller.Roll(100)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll bot decision")
	}

	bench := self.Bench()
	skills := self.Active.Skills
	attack := roll <= b.personality.AttackChance || len(bench) == 0
	if len(skills) == 0 {
		attack = false
	}

	if attack {
		idx, err := roller.Pick(b.roller, len(skills))
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick skill")
		}
		slog.Debug("Bot chose attack",
			"actor_id", self.ID,
			"roll", roll,
			"skill", skills[idx].ID,
		)
		return &entities.Attack{Skill: skills[idx]}, nil
	}

	idx, err := roller.Pick(b.roller, len(bench))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick swap target")
	}
	slog.Debug("Bot chose swap",
		"actor_id", self.ID,
		"roll", roll,
		"target", bench[idx].ID,
	)
	return &entities.Swap{Target: bench[idx]}, nil
}

// ChooseReplacement picks uniformly among healthy bench creatures
func (b *Bot) ChooseReplacement(_ context.Context, self *entities.Actor) (*entities.Creature, error) {
	if self == nil {
		return nil, errors.InvalidArgument("self is required")
	}
	bench := self.Bench()
	if len(bench) == 0 {
		return nil, errors.FailedPreconditionf("%s has no healthy creature to send out", self.Name)
	}

	idx, err := roller.Pick(b.roller, len(bench))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick replacement")
	}
	return bench[idx], nil
}
