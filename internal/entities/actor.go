package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// ActorKind distinguishes the human-driven side from the scripted side
type ActorKind string

const (
	ActorPlayer ActorKind = "player"
	ActorBot    ActorKind = "bot"
)

// Actor is one of the two battle participants
type Actor struct {
	ID     string
	Name   string
	Kind   ActorKind
	Roster []*Creature

	// Active points into Roster. Nil once every member has fainted.
	Active *Creature
}

// Ensure Actor implements core.Entity
var _ core.Entity = (*Actor)(nil)

// GetID implements core.Entity
func (a *Actor) GetID() string {
	return a.ID
}

// GetType implements core.Entity
func (a *Actor) GetType() string {
	return string(a.Kind)
}

// HasMember reports whether c belongs to this actor's roster
func (a *Actor) HasMember(c *Creature) bool {
	if c == nil {
		return false
	}
	for _, m := range a.Roster {
		if m == c {
			return true
		}
	}
	return false
}

// Healthy returns every roster member with HP left, in roster order
func (a *Actor) Healthy() []*Creature {
	var out []*Creature
	for _, m := range a.Roster {
		if !m.IsFainted() {
			out = append(out, m)
		}
	}
	return out
}

// Bench returns the healthy members that are not currently active
func (a *Actor) Bench() []*Creature {
	var out []*Creature
	for _, m := range a.Roster {
		if m != a.Active && !m.IsFainted() {
			out = append(out, m)
		}
	}
	return out
}

// AllFainted reports whether the whole roster is out of HP
func (a *Actor) AllFainted() bool {
	for _, m := range a.Roster {
		if !m.IsFainted() {
			return false
		}
	}
	return true
}

// SwitchTo makes target the active creature
func (a *Actor) SwitchTo(target *Creature) error {
	if !a.HasMember(target) {
		return errors.InvalidArgument("swap target is not in the roster").
			WithMeta("actor_id", a.ID)
	}
	if target.IsFainted() {
		return errors.InvalidArgumentf("%s has fainted", target.Name).
			WithMeta("actor_id", a.ID)
	}
	a.Active = target
	return nil
}

// ClearActive drops the active pointer once nothing can fight
func (a *Actor) ClearActive() {
	a.Active = nil
}

// SendOutFirst activates the first healthy roster member when none is active
func (a *Actor) SendOutFirst() *Creature {
	if a.Active != nil && !a.Active.IsFainted() {
		return a.Active
	}
	a.Active = nil
	for _, m := range a.Roster {
		if !m.IsFainted() {
			a.Active = m
			break
		}
	}
	return a.Active
}

// RestoreAll heals every roster member to full HP and returns the total gained
func (a *Actor) RestoreAll() int {
	healed := 0
	for _, m := range a.Roster {
		healed += m.Restore()
	}
	return healed
}

// LegalActions lists every action the actor may queue this turn. It is
// empty when the actor has no active creature.
func (a *Actor) LegalActions() []Action {
	if a.Active == nil || a.Active.IsFainted() {
		return nil
	}

	actions := make([]Action, 0, len(a.Active.Skills)+len(a.Roster))
	for _, skill := range a.Active.Skills {
		actions = append(actions, &Attack{Skill: skill})
	}
	for _, c := range a.Bench() {
		actions = append(actions, &Swap{Target: c})
	}
	return actions
}

// ValidateAction rejects actions that are not legal for the current state
func (a *Actor) ValidateAction(action Action) error {
	if a.Active == nil || a.Active.IsFainted() {
		return errors.FailedPrecondition("no creature is able to act").
			WithMeta("actor_id", a.ID)
	}

	switch act := action.(type) {
	case *Attack:
		if act.Skill == nil {
			return errors.InvalidArgument("attack requires a skill").
				WithMeta("actor_id", a.ID)
		}
		if !a.Active.HasSkill(act.Skill) {
			return errors.InvalidArgumentf("%s does not know %s", a.Active.Name, act.Skill.Name).
				WithMeta("actor_id", a.ID).
				WithMeta("skill", act.Skill.ID)
		}
	case *Swap:
		if act.Target == nil {
			return errors.InvalidArgument("swap requires a target").
				WithMeta("actor_id", a.ID)
		}
		if !a.HasMember(act.Target) {
			return errors.InvalidArgumentf("%s is not on %s's team", act.Target.Name, a.Name).
				WithMeta("actor_id", a.ID).
				WithMeta("target", act.Target.ID)
		}
		if act.Target == a.Active {
			return errors.InvalidArgumentf("%s is already in battle", act.Target.Name).
				WithMeta("actor_id", a.ID).
				WithMeta("target", act.Target.ID)
		}
		if act.Target.IsFainted() {
			return errors.InvalidArgumentf("%s has fainted", act.Target.Name).
				WithMeta("actor_id", a.ID).
				WithMeta("target", act.Target.ID)
		}
	default:
		return errors.InvalidArgument("no action chosen").
			WithMeta("actor_id", a.ID)
	}
	return nil
}
