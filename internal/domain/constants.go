package domain

// MaxDepositAmount is the per-operation ceiling for a self-service top-up.
const MaxDepositAmount = 5000

// Rarity draw weights. Weights are fixed per tier and never configured per item.
const (
	WeightCommon    = 10
	WeightUncommon  = 5
	WeightRare      = 3
	WeightEpic      = 2
	WeightLegendary = 1
)

// Weight returns the draw weight of the tier, or 0 for an unknown tier.
func (r Rarity) Weight() int {
	switch r {
	case RarityCommon:
		return WeightCommon
	case RarityUncommon:
		return WeightUncommon
	case RarityRare:
		return WeightRare
	case RarityEpic:
		return WeightEpic
	case RarityLegendary:
		return WeightLegendary
	default:
		return 0
	}
}

// Icon returns the emoji used when presenting the tier.
func (r Rarity) Icon() string {
	switch r {
	case RarityCommon:
		return "🥔"
	case RarityUncommon:
		return "🥕"
	case RarityRare:
		return "🍅"
	case RarityEpic:
		return "🍆"
	case RarityLegendary:
		return "🎃"
	default:
		return ""
	}
}
