// Package prototypes loads creature species and skills from YAML and
// instantiates fresh creatures from them.
package prototypes

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/roller"
)

// Species is the template every creature instance is built from
type Species struct {
	ID     string
	Name   string
	Type   entities.ElementType
	MaxHP  int
	Stats  entities.Stats
	Skills []*entities.Skill
}

// Catalog holds validated species and skills. It is read-only after Load.
type Catalog struct {
	skills  map[string]*entities.Skill
	species map[string]*Species
	ids     idgen.Generator
}

// Skill looks up a skill by id
func (c *Catalog) Skill(id string) (*entities.Skill, error) {
	skill, ok := c.skills[id]
	if !ok {
		return nil, errors.NotFoundf("skill %q not found", id)
	}
	return skill, nil
}

// Species looks up a species by id
func (c *Catalog) Species(id string) (*Species, error) {
	sp, ok := c.species[id]
	if !ok {
		return nil, errors.NotFoundf("species %q not found", id)
	}
	return sp, nil
}

// SpeciesIDs returns every species id in sorted order
func (c *Catalog) SpeciesIDs() []string {
	ids := make([]string, 0, len(c.species))
	for id := range c.species {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NewCreature instantiates a full-HP creature with a fresh instance id.
// Skills are shared with the species.
func (c *Catalog) NewCreature(speciesID string) (*entities.Creature, error) {
	sp, err := c.Species(speciesID)
	if err != nil {
		return nil, err
	}

	skills := make([]*entities.Skill, len(sp.Skills))
	copy(skills, sp.Skills)

	return &entities.Creature{
		ID:        c.ids.Generate(),
		SpeciesID: sp.ID,
		Name:      sp.Name,
		MaxHP:     sp.MaxHP,
		HP:        sp.MaxHP,
		Stats:     sp.Stats,
		Type:      sp.Type,
		Skills:    skills,
	}, nil
}

// BuildRoster instantiates one creature per species id, in order
func (c *Catalog) BuildRoster(speciesIDs []string) ([]*entities.Creature, error) {
	if len(speciesIDs) == 0 {
		return nil, errors.InvalidArgument("at least one species is required")
	}

	roster := make([]*entities.Creature, 0, len(speciesIDs))
	for _, id := range speciesIDs {
		creature, err := c.NewCreature(id)
		if err != nil {
			return nil, err
		}
		roster = append(roster, creature)
	}
	return roster, nil
}

// RandomRoster picks size species uniformly, with repeats allowed
func (c *Catalog) RandomRoster(r dice.Roller, size int) ([]*entities.Creature, error) {
	if r == nil {
		return nil, errors.InvalidArgument("roller is required")
	}
	if size <= 0 {
		return nil, errors.InvalidArgumentf("roster size must be positive: %d", size)
	}

	ids := c.SpeciesIDs()
	picked := make([]string, 0, size)
	for i := 0; i < size; i++ {
		idx, err := roller.Pick(r, len(ids))
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick species")
		}
		picked = append(picked, ids[idx])
	}
	return c.BuildRoster(picked)
}
