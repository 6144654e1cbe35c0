package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
)

// MinDamage is the chip damage every hit deals regardless of stats
const MinDamage = 1

// DamageResult breaks down a damage calculation
type DamageResult struct {
	Raw        float64
	Multiplier float64
	Final      int
}

// CalculateDamage applies the damage formula. Physical skills use
// attack + base - defense; special skills scale base damage by
// sp_attack / sp_defense. The result is floored after the type multiplier and
// never drops below MinDamage, even when raw damage is negative.
//
// SpDefense must be positive; prototypes are validated on load.
func CalculateDamage(attacker, defender *entities.Creature, skill *entities.Skill) DamageResult {
	var raw float64
	if skill.IsPhysical {
		raw = float64(attacker.Stats.Attack + skill.BaseDamage - defender.Stats.Defense)
	} else {
		raw = float64(attacker.Stats.SpAttack) / float64(defender.Stats.SpDefense) * float64(skill.BaseDamage)
	}

	multiplier := Multiplier(skill.Type, defender.Type)
	final := int(math.Floor(raw * multiplier))
	if final < MinDamage {
		final = MinDamage
	}

	return DamageResult{
		Raw:        raw,
		Multiplier: multiplier,
		Final:      final,
	}
}
