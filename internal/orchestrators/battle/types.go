package battle

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
)

// HPPolicy decides when roster HP is restored
type HPPolicy string

const (
	// HPResetOnStart restores both rosters before the first turn
	HPResetOnStart HPPolicy = "reset_on_start"
	// HPResetOnEnd restores both rosters after the result is recorded
	HPResetOnEnd HPPolicy = "reset_on_end"
	// HPResetNever carries damage from one battle to the next
	HPResetNever HPPolicy = "never"
)

// HPPolicies lists the accepted policies
func HPPolicies() []string {
	return []string{string(HPResetOnStart), string(HPResetOnEnd), string(HPResetNever)}
}

// ExitPolicy chooses the scene to return to once a battle is over
type ExitPolicy interface {
	AfterBattle(ctx context.Context, result *entities.BattleResult) (entities.SceneExit, error)
}

// ExitPolicyFunc adapts a function to ExitPolicy
type ExitPolicyFunc func(ctx context.Context, result *entities.BattleResult) (entities.SceneExit, error)

// AfterBattle calls f
func (f ExitPolicyFunc) AfterBattle(ctx context.Context, result *entities.BattleResult) (entities.SceneExit, error) {
	return f(ctx, result)
}

// ReturnToMenu always goes back to the menu
var ReturnToMenu ExitPolicy = ExitPolicyFunc(func(context.Context, *entities.BattleResult) (entities.SceneExit, error) {
	return entities.SceneReturnToMenu, nil
})

// Quit always leaves
var Quit ExitPolicy = ExitPolicyFunc(func(context.Context, *entities.BattleResult) (entities.SceneExit, error) {
	return entities.SceneQuit, nil
})

// Combatant is one side of a battle
type Combatant struct {
	Actor      *entities.Actor
	Controller engine.Controller
}

// RunInput contains parameters for running a battle
type RunInput struct {
	Player   *Combatant
	Opponent *Combatant
	// Seed is recorded on the result so a battle can be replayed
	Seed int64
}

// RunOutput contains the result of a finished battle
type RunOutput struct {
	Result *entities.BattleResult
	Exit   entities.SceneExit
	Winner *entities.Actor
	Loser  *entities.Actor
}
