package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

func TestCalculateDamage(t *testing.T) {
	testCases := []struct {
		name       string
		attacker   *entities.Creature
		defender   *entities.Creature
		skill      *entities.Skill
		raw        float64
		multiplier float64
		final      int
	}{
		{
			name:       "special super effective",
			attacker:   testutils.Bubwool(),
			defender:   testutils.Scizard(),
			skill:      testutils.SkillLick,
			raw:        10,
			multiplier: 2.0,
			final:      20,
		},
		{
			name:       "special not very effective",
			attacker:   testutils.Scizard(),
			defender:   testutils.Bubwool(),
			skill:      testutils.SkillEmber,
			raw:        6,
			multiplier: 0.5,
			final:      3,
		},
		{
			name:       "physical neutral",
			attacker:   testutils.Bubwool(),
			defender:   testutils.Scizard(),
			skill:      testutils.SkillScratch,
			raw:        6,
			multiplier: 1.0,
			final:      6,
		},
		{
			name:     "special result is floored",
			attacker: builders.NewCreatureBuilder().WithStats(entities.Stats{SpAttack: 5}).Build(),
			defender: builders.NewCreatureBuilder().WithStats(entities.Stats{SpDefense: 3}).Build(),
			skill: &entities.Skill{
				Name: "Gust", BaseDamage: 2, Type: entities.ElementNormal,
			},
			raw:        5.0 / 3.0 * 2,
			multiplier: 1.0,
			final:      3,
		},
		{
			name:     "negative physical raw still deals chip damage",
			attacker: builders.NewCreatureBuilder().WithStats(entities.Stats{Attack: 1}).Build(),
			defender: builders.NewCreatureBuilder().WithStats(entities.Stats{Defense: 50}).Build(),
			skill: &entities.Skill{
				Name: "Tap", BaseDamage: 1, IsPhysical: true, Type: entities.ElementNormal,
			},
			raw:        -48,
			multiplier: 1.0,
			final:      1,
		},
		{
			name:     "halved to zero is clamped to one",
			attacker: builders.NewCreatureBuilder().WithStats(entities.Stats{Attack: 1}).Build(),
			defender: builders.NewCreatureBuilder().WithType(entities.ElementWater).WithStats(entities.Stats{Defense: 1}).Build(),
			skill: &entities.Skill{
				Name: "Spark", BaseDamage: 1, IsPhysical: true, Type: entities.ElementFire,
			},
			raw:        1,
			multiplier: 0.5,
			final:      1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.CalculateDamage(tc.attacker, tc.defender, tc.skill)
			assert.InDelta(t, tc.raw, result.Raw, 1e-9)
			assert.Equal(t, tc.multiplier, result.Multiplier)
			assert.Equal(t, tc.final, result.Final)
		})
	}
}

func TestDamageNeverBelowOne(t *testing.T) {
	for atk := 0; atk <= 12; atk += 3 {
		for def := 1; def <= 40; def += 7 {
			for base := 0; base <= 10; base += 5 {
				for _, physical := range []bool{true, false} {
					for skillType := 0; skillType < entities.NumElementTypes; skillType++ {
						for defType := 0; defType < entities.NumElementTypes; defType++ {
							attacker := builders.NewCreatureBuilder().
								WithStats(entities.Stats{Attack: atk, SpAttack: atk}).
								Build()
							defender := builders.NewCreatureBuilder().
								WithType(entities.ElementType(defType)).
								WithStats(entities.Stats{Defense: def, SpDefense: def}).
								Build()
							skill := &entities.Skill{
								BaseDamage: base,
								IsPhysical: physical,
								Type:       entities.ElementType(skillType),
							}

							result := engine.CalculateDamage(attacker, defender, skill)
							assert.GreaterOrEqual(t, result.Final, engine.MinDamage)
						}
					}
				}
			}
		}
	}
}
