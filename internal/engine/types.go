package engine

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities"
)

// Move is one actor's queued action for the turn
type Move struct {
	Actor      *entities.Actor
	Controller Controller
	// Action is nil when the actor had nothing legal to queue
	Action entities.Action
}

// TurnInput carries both moves. Order matters only for swaps and for the
// tie-break roll: a roll of 1 lets First attack first.
type TurnInput struct {
	Turn   int
	First  *Move
	Second *Move
}

// EventKind classifies what happened during resolution
type EventKind string

const (
	EventSwapped     EventKind = "swapped"
	EventAttacked    EventKind = "attacked"
	EventSkipped     EventKind = "skipped"
	EventFainted     EventKind = "fainted"
	EventReplaced    EventKind = "replaced"
	EventBattleEnded EventKind = "battle_ended"
)

// Event records a single state change
type Event struct {
	Kind     EventKind
	Turn     int
	Actor    *entities.Actor
	Creature *entities.Creature
	Target   *entities.Creature
	Skill    *entities.Skill
	Damage   *DamageResult
	Winner   *entities.Actor
	Message  string
}

// Notification is what a Notifier receives. A nil Recipient is a broadcast.
type Notification struct {
	Recipient *entities.Actor
	Message   string
	Event     *Event
}

// TurnOutcome is the resolved result of a turn
type TurnOutcome struct {
	Events         []*Event
	Ended          bool
	Winner         *entities.Actor
	Loser          *entities.Actor
	TieBreakRolled bool
}

// EventsOfKind filters the outcome's events
func (o *TurnOutcome) EventsOfKind(kind EventKind) []*Event {
	var out []*Event
	for _, e := range o.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
