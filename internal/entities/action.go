package entities

// ActionKind tags the variant of an Action
type ActionKind string

const (
	// ActionAttack uses one of the active creature's skills on the opponent
	ActionAttack ActionKind = "attack"
	// ActionSwap replaces the active creature with a healthy bench member
	ActionSwap ActionKind = "swap"
)

// Action is what an actor queues for a turn: either *Attack or *Swap.
// A nil Action means the actor had nothing legal to do.
type Action interface {
	Kind() ActionKind
	isAction()
}

// Attack queues a skill of the active creature
type Attack struct {
	Skill *Skill
}

// Kind implements Action
func (a *Attack) Kind() ActionKind { return ActionAttack }

func (a *Attack) isAction() {}

// Swap queues a change of active creature
type Swap struct {
	Target *Creature
}

// Kind implements Action
func (s *Swap) Kind() ActionKind { return ActionSwap }

func (s *Swap) isAction() {}
