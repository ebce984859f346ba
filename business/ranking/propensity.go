package ranking

import (
	"math"

	"landingCards/domain"
)

// blend combines a base score with the service type's propensity default:
//
//	final = (1 - effect) * base + effect * (1 + default)
//
// The +1 offset on the propensity term is part of the scoring contract.
func blend(base float64, serviceType int, card *domain.CardDefinition, prop domain.PropensityConfig) (propScore, final float64) {
	propScore = prop.DefaultScore(serviceType)
	effect := card.DomainPropensityEffect
	final = round2((1-effect)*base + effect*(1+propScore))
	return propScore, final
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
