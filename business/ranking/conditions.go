package ranking

import "landingCards/domain"

// evalContext carries the per-pass facts a predicate can consult.
type evalContext struct {
	facts    domain.OnboardingFacts
	produced map[string]bool // card ids with at least one instance so far
}

// evaluateCondition decides show eligibility for one card and service type.
// Unknown predicate kinds and unknown fact names are a silent false: a
// condition the engine does not recognize hides the card, it never errors.
func evaluateCondition(p domain.Predicate, ec evalContext) bool {
	switch p.Kind {
	case domain.PredicateAlways:
		return true
	case domain.PredicateFactTrue:
		return knownFact(p.Fact) && ec.facts.Fact(p.Fact)
	case domain.PredicateFactFalse:
		return knownFact(p.Fact) && !ec.facts.Fact(p.Fact)
	case domain.PredicateScoreOverThreshold:
		// the threshold gate runs per item during scoring
		return true
	case domain.PredicateCardAbsent:
		return p.CardID != "" && !ec.produced[p.CardID]
	}
	return false
}

func knownFact(name string) bool {
	switch name {
	case domain.FactHasActiveOrder,
		domain.FactHasAwaitingRating,
		domain.FactHasAbandonedBasket,
		domain.FactAvailablePlayAndWin,
		domain.FactUserChurnStatus:
		return true
	}
	return false
}
