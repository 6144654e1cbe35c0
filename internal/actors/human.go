package actors

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Menu labels
const (
	OptionAttack = "Attack"
	OptionSwap   = "Swap"
	OptionBack   = "Back"
)

// HumanConfig holds the dependencies for a Human controller
type HumanConfig struct {
	Prompter Prompter
}

// Validate ensures all required dependencies are provided
func (c *HumanConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Prompter == nil {
		vb.RequiredField("Prompter")
	}
	return vb.Build()
}

// Human chooses actions through a Prompter
type Human struct {
	prompter Prompter
}

// Ensure Human implements engine.Controller
var _ engine.Controller = (*Human)(nil)

// NewHuman creates a menu-driven controller
func NewHuman(cfg *HumanConfig) (*Human, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Human{prompter: cfg.Prompter}, nil
}

// ChooseAction walks the Attack/Swap menu. Sub-menus end with Back, which
// returns to the top menu. A nil action means the actor cannot act.
func (h *Human) ChooseAction(ctx context.Context, self, opponent *entities.Actor) (entities.Action, error) {
	if self == nil {
		return nil, errors.InvalidArgument("self is required")
	}
	if len(self.LegalActions()) == 0 {
		return nil, nil
	}

	title := fmt.Sprintf("What will %s do?", self.Active.Name)
	if opponent != nil && opponent.Active != nil {
		title = fmt.Sprintf("%s (%d/%d HP) vs %s's %s (%d/%d HP). What will %s do?",
			self.Active.Name, self.Active.HP, self.Active.MaxHP,
			opponent.Name, opponent.Active.Name, opponent.Active.HP, opponent.Active.MaxHP,
			self.Active.Name)
	}

	for {
		var top []string
		if len(self.Active.Skills) > 0 {
			top = append(top, OptionAttack)
		}
		bench := self.Bench()
		if len(bench) > 0 {
			top = append(top, OptionSwap)
		}

		choice, err := h.choose(ctx, title, top)
		if err != nil {
			return nil, err
		}

		var action entities.Action
		switch top[choice] {
		case OptionAttack:
			action, err = h.chooseSkill(ctx, self.Active)
		case OptionSwap:
			action, err = h.chooseSwap(ctx, bench)
		}
		if err != nil {
			return nil, err
		}
		if action != nil {
			return action, nil
		}
	}
}

// chooseSkill returns nil when Back is selected
func (h *Human) chooseSkill(ctx context.Context, active *entities.Creature) (entities.Action, error) {
	options := make([]string, 0, len(active.Skills)+1)
	for _, skill := range active.Skills {
		options = append(options, fmt.Sprintf("%s (%s, power %d)", skill.Name, skill.Type, skill.BaseDamage))
	}
	options = append(options, OptionBack)

	choice, err := h.choose(ctx, "Choose a skill", options)
	if err != nil {
		return nil, err
	}
	if choice == len(active.Skills) {
		return nil, nil
	}
	return &entities.Attack{Skill: active.Skills[choice]}, nil
}

// chooseSwap returns nil when Back is selected
func (h *Human) chooseSwap(ctx context.Context, bench []*entities.Creature) (entities.Action, error) {
	options := append(creatureOptions(bench), OptionBack)

	choice, err := h.choose(ctx, "Swap to", options)
	if err != nil {
		return nil, err
	}
	if choice == len(bench) {
		return nil, nil
	}
	return &entities.Swap{Target: bench[choice]}, nil
}

// ChooseReplacement lists only healthy bench creatures and has no Back
func (h *Human) ChooseReplacement(ctx context.Context, self *entities.Actor) (*entities.Creature, error) {
	if self == nil {
		return nil, errors.InvalidArgument("self is required")
	}
	bench := self.Bench()
	if len(bench) == 0 {
		return nil, errors.FailedPreconditionf("%s has no healthy creature to send out", self.Name)
	}

	choice, err := h.choose(ctx, fmt.Sprintf("%s, choose your next creature", self.Name), creatureOptions(bench))
	if err != nil {
		return nil, err
	}
	return bench[choice], nil
}

func (h *Human) choose(ctx context.Context, title string, options []string) (int, error) {
	choice, err := h.prompter.Choose(ctx, title, options)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read choice")
	}
	if choice < 0 || choice >= len(options) {
		return 0, errors.InvalidArgumentf("choice %d out of range", choice)
	}
	return choice, nil
}

func creatureOptions(creatures []*entities.Creature) []string {
	options := make([]string, 0, len(creatures)+1)
	for _, c := range creatures {
		options = append(options, fmt.Sprintf("%s (%s, %d/%d HP)", c.Name, c.Type, c.HP, c.MaxHP))
	}
	return options
}
