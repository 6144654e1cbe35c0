package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

const (
	// EntityTypeCreature is the core.Entity type of a creature
	EntityTypeCreature = "creature"
)

// Stats is the stat block used by the damage formula and turn ordering
type Stats struct {
	Attack    int `yaml:"attack" json:"attack"`
	Defense   int `yaml:"defense" json:"defense"`
	SpAttack  int `yaml:"sp_attack" json:"sp_attack"`
	SpDefense int `yaml:"sp_defense" json:"sp_defense"`
	Speed     int `yaml:"speed" json:"speed"`
}

// Skill is an attack a creature knows. Skills are immutable and shared
// between every creature of a species.
type Skill struct {
	ID         string
	Name       string
	BaseDamage int
	IsPhysical bool
	Type       ElementType
}

// Creature is one battling monster instance
type Creature struct {
	ID        string
	SpeciesID string
	Name      string
	MaxHP     int
	HP        int
	Stats     Stats
	Type      ElementType
	Skills    []*Skill
}

// Ensure Creature implements core.Entity
var _ core.Entity = (*Creature)(nil)

// GetID implements core.Entity
func (c *Creature) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Creature) GetType() string {
	return EntityTypeCreature
}

// IsFainted reports whether the creature has no HP left
func (c *Creature) IsFainted() bool {
	return c.HP <= 0
}

// ApplyDamage subtracts damage, floored at zero, and returns the HP actually lost
func (c *Creature) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.HP
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
	return before - c.HP
}

// Heal restores HP up to MaxHP and returns the HP actually gained
func (c *Creature) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.HP
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	return c.HP - before
}

// Restore heals to MaxHP and returns the HP gained
func (c *Creature) Restore() int {
	return c.Heal(c.MaxHP - c.HP)
}

// HasSkill reports whether skill is one of this creature's skills
func (c *Creature) HasSkill(skill *Skill) bool {
	if skill == nil {
		return false
	}
	for _, s := range c.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
