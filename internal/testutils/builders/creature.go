// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities"
)

// CreatureBuilder provides a fluent interface for building test Creature instances
type CreatureBuilder struct {
	creature *entities.Creature
}

// NewCreatureBuilder creates a new builder with minimal, balanced defaults
func NewCreatureBuilder() *CreatureBuilder {
	return &CreatureBuilder{
		creature: &entities.Creature{
			ID:        "creature-test-1",
			SpeciesID: "testmon",
			Name:      "Testmon",
			MaxHP:     20,
			HP:        20,
			Type:      entities.ElementNormal,
			Stats: entities.Stats{
				Attack:    5,
				Defense:   5,
				SpAttack:  5,
				SpDefense: 5,
				Speed:     5,
			},
		},
	}
}

// WithID sets the instance ID
func (b *CreatureBuilder) WithID(id string) *CreatureBuilder {
	b.creature.ID = id
	return b
}

// WithName sets the display name and derives the species ID from it
func (b *CreatureBuilder) WithName(name string) *CreatureBuilder {
	b.creature.Name = name
	b.creature.SpeciesID = name
	return b
}

// WithType sets the element type
func (b *CreatureBuilder) WithType(t entities.ElementType) *CreatureBuilder {
	b.creature.Type = t
	return b
}

// WithHP sets both current and max HP
func (b *CreatureBuilder) WithHP(hp int) *CreatureBuilder {
	b.creature.HP = hp
	b.creature.MaxHP = hp
	return b
}

// WithCurrentHP sets only current HP
func (b *CreatureBuilder) WithCurrentHP(hp int) *CreatureBuilder {
	b.creature.HP = hp
	return b
}

// WithStats replaces the stat block
func (b *CreatureBuilder) WithStats(stats entities.Stats) *CreatureBuilder {
	b.creature.Stats = stats
	return b
}

// WithSpeed sets the speed stat
func (b *CreatureBuilder) WithSpeed(speed int) *CreatureBuilder {
	b.creature.Stats.Speed = speed
	return b
}

// WithSkills sets the skill list
func (b *CreatureBuilder) WithSkills(skills ...*entities.Skill) *CreatureBuilder {
	b.creature.Skills = skills
	return b
}

// Build returns the built creature
func (b *CreatureBuilder) Build() *entities.Creature {
	return b.creature
}

// ActorBuilder builds battle participants
type ActorBuilder struct {
	actor *entities.Actor
}

// NewActorBuilder creates a player actor with an empty roster
func NewActorBuilder() *ActorBuilder {
	return &ActorBuilder{
		actor: &entities.Actor{
			ID:   "actor-test-1",
			Name: "Tester",
			Kind: entities.ActorPlayer,
		},
	}
}

// WithID sets the actor ID
func (b *ActorBuilder) WithID(id string) *ActorBuilder {
	b.actor.ID = id
	return b
}

// WithName sets the actor name
func (b *ActorBuilder) WithName(name string) *ActorBuilder {
	b.actor.Name = name
	return b
}

// AsBot marks the actor as the scripted side
func (b *ActorBuilder) AsBot() *ActorBuilder {
	b.actor.Kind = entities.ActorBot
	return b
}

// WithRoster sets the roster and makes the first member active
func (b *ActorBuilder) WithRoster(creatures ...*entities.Creature) *ActorBuilder {
	b.actor.Roster = creatures
	if len(creatures) > 0 {
		b.actor.Active = creatures[0]
	}
	return b
}

// Build returns the built actor
func (b *ActorBuilder) Build() *entities.Actor {
	return b.actor
}
