package prototypes

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
)

//go:embed data/default.yaml
var defaultPack []byte

type fileData struct {
	Skills  []skillData   `yaml:"skills"`
	Species []speciesData `yaml:"species"`
}

type skillData struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	BaseDamage int    `yaml:"base_damage"`
	Physical   bool   `yaml:"physical"`
	Type       string `yaml:"type"`
}

type speciesData struct {
	ID     string         `yaml:"id"`
	Name   string         `yaml:"name"`
	Type   string         `yaml:"type"`
	MaxHP  int            `yaml:"max_hp"`
	Stats  entities.Stats `yaml:"stats"`
	Skills []string       `yaml:"skills"`
}

// LoadDefault loads the embedded creature pack. A nil generator uses
// prefixed UUIDs for creature instance ids.
func LoadDefault(ids idgen.Generator) (*Catalog, error) {
	return Load(bytes.NewReader(defaultPack), ids)
}

// LoadFile loads a creature pack from path
func LoadFile(path string, ids idgen.Generator) (*Catalog, error) {
	f, err := os.Open(path) // #nosec G304 -- operator supplied data file
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("prototype file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open prototype file %s", path)
	}
	defer func() { _ = f.Close() }()

	catalog, err := Load(f, ids)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return catalog, nil
}

// Load decodes and validates a creature pack. Validation rejects unknown
// element types, unknown or duplicate ids, and non-positive HP or stats.
func Load(r io.Reader, ids idgen.Generator) (*Catalog, error) {
	var data fileData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("prototype data is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode prototype data")
	}

	if ids == nil {
		ids = idgen.NewUUID("creature")
	}

	catalog := &Catalog{
		skills:  make(map[string]*entities.Skill, len(data.Skills)),
		species: make(map[string]*Species, len(data.Species)),
		ids:     ids,
	}

	vb := errors.NewValidationBuilder()
	for i, sd := range data.Skills {
		skill, ok := buildSkill(i, sd, vb)
		if !ok {
			continue
		}
		if _, dup := catalog.skills[skill.ID]; dup {
			vb.Fieldf(fieldName("skills", i, "id"), "duplicate skill id %q", skill.ID)
			continue
		}
		catalog.skills[skill.ID] = skill
	}

	for i, sd := range data.Species {
		sp, ok := catalog.buildSpecies(i, sd, vb)
		if !ok {
			continue
		}
		if _, dup := catalog.species[sp.ID]; dup {
			vb.Fieldf(fieldName("species", i, "id"), "duplicate species id %q", sp.ID)
			continue
		}
		catalog.species[sp.ID] = sp
	}

	if len(data.Species) == 0 {
		vb.Field("species", "at least one species is required")
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func buildSkill(i int, sd skillData, vb *errors.ValidationBuilder) (*entities.Skill, bool) {
	valid := true
	if sd.ID == "" {
		vb.RequiredField(fieldName("skills", i, "id"))
		valid = false
	}
	if sd.Name == "" {
		vb.RequiredField(fieldName("skills", i, "name"))
		valid = false
	}
	if sd.BaseDamage < 0 {
		vb.Field(fieldName("skills", i, "base_damage"), "must not be negative")
		valid = false
	}
	elem, err := entities.ParseElementType(sd.Type)
	if err != nil {
		vb.Fieldf(fieldName("skills", i, "type"), "unknown element type %q, want one of: %s", sd.Type, elementList)
		valid = false
	}
	if !valid {
		return nil, false
	}

	return &entities.Skill{
		ID:         sd.ID,
		Name:       sd.Name,
		BaseDamage: sd.BaseDamage,
		IsPhysical: sd.Physical,
		Type:       elem,
	}, true
}

func (c *Catalog) buildSpecies(i int, sd speciesData, vb *errors.ValidationBuilder) (*Species, bool) {
	valid := true
	if sd.ID == "" {
		vb.RequiredField(fieldName("species", i, "id"))
		valid = false
	}
	if sd.Name == "" {
		vb.RequiredField(fieldName("species", i, "name"))
		valid = false
	}
	elem, err := entities.ParseElementType(sd.Type)
	if err != nil {
		vb.Fieldf(fieldName("species", i, "type"), "unknown element type %q, want one of: %s", sd.Type, elementList)
		valid = false
	}
	// sp_defense is a divisor in the special damage formula
	positive := []struct {
		field string
		value int
	}{
		{"max_hp", sd.MaxHP},
		{"stats.attack", sd.Stats.Attack},
		{"stats.defense", sd.Stats.Defense},
		{"stats.sp_attack", sd.Stats.SpAttack},
		{"stats.sp_defense", sd.Stats.SpDefense},
		{"stats.speed", sd.Stats.Speed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errors.ValidatePositive(fieldName("species", i, p.field), p.value, vb)
			valid = false
		}
	}
	if len(sd.Skills) == 0 {
		vb.Field(fieldName("species", i, "skills"), "at least one skill is required")
		valid = false
	}

	skills := make([]*entities.Skill, 0, len(sd.Skills))
	for _, id := range sd.Skills {
		skill, err := c.Skill(id)
		if err != nil {
			vb.Fieldf(fieldName("species", i, "skills"), "unknown skill %q", id)
			valid = false
			continue
		}
		skills = append(skills, skill)
	}
	if !valid {
		return nil, false
	}

	return &Species{
		ID:     sd.ID,
		Name:   sd.Name,
		Type:   elem,
		MaxHP:  sd.MaxHP,
		Stats:  sd.Stats,
		Skills: skills,
	}, true
}

var elementList = strings.Join(entities.ElementNames(), ", ")

func fieldName(list string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, i, field)
}
