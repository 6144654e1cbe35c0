package engine

import "github.com/KirkDiggler/rpg-battle/internal/entities"

const (
	multiplierSuper   = 2.0
	multiplierNeutral = 1.0
	multiplierWeak    = 0.5
)

// typeChart[attacking][defending]. fire beats leaf, leaf beats water,
// water beats fire; normal is neutral both ways.
var typeChart = func() [entities.NumElementTypes][entities.NumElementTypes]float64 {
	var chart [entities.NumElementTypes][entities.NumElementTypes]float64
	for atk := range chart {
		for def := range chart[atk] {
			chart[atk][def] = multiplierNeutral
		}
	}

	beats := map[entities.ElementType]entities.ElementType{
		entities.ElementFire:  entities.ElementLeaf,
		entities.ElementLeaf:  entities.ElementWater,
		entities.ElementWater: entities.ElementFire,
	}
	for strong, weak := range beats {
		chart[strong][weak] = multiplierSuper
		chart[weak][strong] = multiplierWeak
	}
	return chart
}()

// Multiplier returns the damage multiplier of a skill type against a defender type
func Multiplier(attacking, defending entities.ElementType) float64 {
	if !attacking.Valid() || !defending.Valid() {
		return multiplierNeutral
	}
	return typeChart[attacking][defending]
}

// Effectiveness describes a multiplier for battle messages
func Effectiveness(multiplier float64) string {
	switch {
	case multiplier > multiplierNeutral:
		return "It's super effective!"
	case multiplier < multiplierNeutral:
		return "It's not very effective..."
	default:
		return ""
	}
}
