package ranking

import "landingCards/domain"

// exclusionState is the excluded-card accumulator threaded through one
// evaluation pass. Rules fire once their trigger card has produced an
// instance, so they only affect cards processed later in priority order; a
// card already collected is never retroactively removed.
type exclusionState struct {
	rules    []domain.ExclusionRule
	excluded map[string]bool
	fired    map[int]bool
	records  []domain.ExcludedCard
}

func newExclusionState(rules []domain.ExclusionRule) *exclusionState {
	return &exclusionState{
		rules:    rules,
		excluded: make(map[string]bool),
		fired:    make(map[int]bool),
		records:  []domain.ExcludedCard{},
	}
}

func (e *exclusionState) isExcluded(cardID string) bool {
	return e.excluded[cardID]
}

// record notes a skipped card for the response's excluded list.
func (e *exclusionState) record(cardID string) {
	e.records = append(e.records, domain.ExcludedCard{
		CardID: cardID,
		Reason: domain.ExclusionReasonRule,
	})
}

// apply fires every rule whose trigger card has produced an instance so far.
func (e *exclusionState) apply(produced map[string]bool) {
	for i, rule := range e.rules {
		if e.fired[i] || !produced[rule.IfCardExists] {
			continue
		}
		e.fired[i] = true
		for _, id := range rule.Exclude {
			e.excluded[id] = true
		}
	}
}
