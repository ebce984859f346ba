package ranking

import (
	"time"

	"landingCards/domain"
)

// scoredInstance is one candidate card instance before blending.
type scoredInstance struct {
	base float64
	item *domain.RecoItem
}

// computeInstances produces the base-scored instances of one card for one
// service type. accepted counts SAR items taken per card id, cumulative
// across service types, so max_suggestion_count caps the card as a whole.
func computeInstances(
	card *domain.CardDefinition,
	serviceType int,
	req *domain.RankingRequest,
	facts domain.OnboardingFacts,
	accepted map[string]int,
) []scoredInstance {
	switch card.ScoreKind() {
	case domain.ScoreKindStatic:
		return []scoredInstance{{base: *card.Score}}
	case domain.ScoreKindAgeBucketed:
		return []scoredInstance{{base: ageBucketScore(card, req.RequestTime, facts)}}
	case domain.ScoreKindTimeOfDay:
		return []scoredInstance{{base: timeOfDayScore(card, req.RequestTime)}}
	case domain.ScoreKindRecommendation:
		return recommendationInstances(card, serviceType, req, accepted)
	}
	return nil
}

// ageBucketScore selects the bucket whose [min_age, max_age) window contains
// the age of the show condition's reference event at request time.
func ageBucketScore(card *domain.CardDefinition, at time.Time, facts domain.OnboardingFacts) float64 {
	ref := facts.FactTime(card.ShowCondition.Fact)
	if ref == nil {
		return card.FallbackScore
	}
	age := at.Sub(*ref)
	for _, b := range card.Scores.AgeBuckets {
		if age >= b.MinAge.Duration() && age < b.MaxAge.Duration() {
			return b.Score
		}
	}
	return card.FallbackScore
}

// timeOfDayScore selects the window containing the request's wall-clock
// time. The hour comes from request_time, never the process clock.
func timeOfDayScore(card *domain.CardDefinition, at time.Time) float64 {
	minute := at.Hour()*60 + at.Minute()
	for _, w := range card.Scores.TimeWindows {
		start, err := parseClock(w.Start)
		if err != nil {
			continue
		}
		end, err := parseClock(w.End)
		if err != nil {
			continue
		}
		if inClockWindow(minute, start, end) {
			return w.Score
		}
	}
	return card.FallbackScore
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// inClockWindow reports whether minute falls in [start, end), treating
// end <= start as a window that wraps past midnight (23:00 -> 08:00).
func inClockWindow(minute, start, end int) bool {
	if start == end {
		return false
	}
	if end > start {
		return minute >= start && minute < end
	}
	return minute >= start || minute < end
}

func recommendationInstances(
	card *domain.CardDefinition,
	serviceType int,
	req *domain.RankingRequest,
	accepted map[string]int,
) []scoredInstance {
	rc, ok := req.RecoFor(serviceType, card.CardID)
	if !ok {
		return nil
	}
	dps, ok := rc.ForDaypart(req.Daypart)
	if !ok {
		return nil
	}

	if dps.Scalar != nil {
		base := *dps.Scalar * 100
		if belowThreshold(card, base) {
			return nil
		}
		return []scoredInstance{{base: base}}
	}

	var out []scoredInstance
	for i := range dps.Items {
		if card.MaxSuggestionCount > 0 && accepted[card.CardID] >= card.MaxSuggestionCount {
			break
		}
		base := dps.Items[i].Score * 100
		if belowThreshold(card, base) {
			continue
		}
		accepted[card.CardID]++
		out = append(out, scoredInstance{base: base, item: &dps.Items[i]})
	}
	return out
}

func belowThreshold(card *domain.CardDefinition, score float64) bool {
	return card.Threshold != nil && score < *card.Threshold
}
