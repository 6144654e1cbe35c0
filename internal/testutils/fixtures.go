package testutils

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

// Skills shared by the fixture creatures
var (
	SkillLick = &entities.Skill{
		ID:         "lick",
		Name:       "Lick",
		BaseDamage: 5,
		IsPhysical: false,
		Type:       entities.ElementWater,
	}
	SkillScratch = &entities.Skill{
		ID:         "scratch",
		Name:       "Scratch",
		BaseDamage: 4,
		IsPhysical: true,
		Type:       entities.ElementNormal,
	}
	SkillEmber = &entities.Skill{
		ID:         "ember",
		Name:       "Ember",
		BaseDamage: 6,
		IsPhysical: false,
		Type:       entities.ElementFire,
	}
	SkillVineWhip = &entities.Skill{
		ID:         "vine_whip",
		Name:       "Vine Whip",
		BaseDamage: 5,
		IsPhysical: true,
		Type:       entities.ElementLeaf,
	}
)

// Bubwool is a fast water creature: speed 10, sp_attack 8
func Bubwool() *entities.Creature {
	return builders.NewCreatureBuilder().
		WithID("bubwool-1").
		WithName("Bubwool").
		WithType(entities.ElementWater).
		WithHP(20).
		WithStats(entities.Stats{Attack: 6, Defense: 5, SpAttack: 8, SpDefense: 6, Speed: 10}).
		WithSkills(SkillLick, SkillScratch).
		Build()
}

// Scizard is a slow fire creature: speed 5, sp_defense 4
func Scizard() *entities.Creature {
	return builders.NewCreatureBuilder().
		WithID("scizard-1").
		WithName("Scizard").
		WithType(entities.ElementFire).
		WithHP(20).
		WithStats(entities.Stats{Attack: 7, Defense: 4, SpAttack: 6, SpDefense: 4, Speed: 5}).
		WithSkills(SkillEmber, SkillScratch).
		Build()
}

// Sproutle is a leaf creature used as a bench member
func Sproutle() *entities.Creature {
	return builders.NewCreatureBuilder().
		WithID("sproutle-1").
		WithName("Sproutle").
		WithType(entities.ElementLeaf).
		WithHP(24).
		WithStats(entities.Stats{Attack: 5, Defense: 6, SpAttack: 5, SpDefense: 6, Speed: 6}).
		WithSkills(SkillVineWhip, SkillScratch).
		Build()
}
