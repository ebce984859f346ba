package domain

import (
	"encoding/json"
	"strings"
)

// PredicateKind tags the supported show-condition variants.
type PredicateKind string

const (
	PredicateAlways             PredicateKind = "always"
	PredicateFactTrue           PredicateKind = "fact_true"
	PredicateFactFalse          PredicateKind = "fact_false"
	PredicateScoreOverThreshold PredicateKind = "score_over_threshold"
	PredicateCardAbsent         PredicateKind = "card_absent"
	PredicateUnknown            PredicateKind = "unknown"
)

// Onboarding fact names referenced by predicates.
const (
	FactHasActiveOrder      = "has_active_order"
	FactHasAwaitingRating   = "has_awaiting_rating"
	FactHasAbandonedBasket  = "has_abandoned_basket"
	FactAvailablePlayAndWin = "available_play_and_win"
	FactUserChurnStatus     = "user_churn_status"
)

// Predicate is a tagged condition descriptor. Configuration documents carry
// either the structured object form or one of the legacy console strings;
// both decode into the same variant. Unknown text decodes to PredicateUnknown
// rather than failing, so a bad condition hides a card instead of rejecting
// the whole configuration.
type Predicate struct {
	Kind   PredicateKind `json:"kind"`
	Fact   string        `json:"fact,omitempty"`
	CardID string        `json:"card_id,omitempty"`

	raw string // legacy string form, kept for round-tripping
}

// legacy fact spellings seen in stored configurations
var factAliases = map[string]string{
	"has_abononed_basket": FactHasAbandonedBasket,
	"is_exist":            FactHasAwaitingRating,
}

func canonicalFact(name string) string {
	if alias, ok := factAliases[name]; ok {
		return alias
	}
	return name
}

// ParsePredicate maps a legacy console condition string onto the tagged
// representation. Anything it does not recognize becomes PredicateUnknown.
func ParsePredicate(s string) Predicate {
	p := Predicate{Kind: PredicateUnknown, raw: s}

	expr := strings.TrimSpace(s)
	if expr == "true" || expr == "unconditional_true" {
		p.Kind = PredicateAlways
		return p
	}
	if expr == "score > threshold" {
		p.Kind = PredicateScoreOverThreshold
		return p
	}

	subject, value, ok := splitComparison(expr)
	if !ok {
		return p
	}

	switch {
	case strings.HasPrefix(subject, "user."):
		p.Fact = canonicalFact(strings.TrimPrefix(subject, "user."))
		p.Kind = PredicateFactTrue
		if value == "false" {
			p.Kind = PredicateFactFalse
		}
	case strings.HasSuffix(subject, ".is_exist"):
		p.Fact = canonicalFact(strings.TrimSuffix(subject, ".is_exist"))
		p.Kind = PredicateFactTrue
		if value == "false" {
			p.Kind = PredicateFactFalse
		}
	case value == "false" && !strings.Contains(subject, "."):
		// "<card_id> == false": show only when that card was not produced
		p.Kind = PredicateCardAbsent
		p.CardID = subject
	}

	return p
}

func splitComparison(expr string) (subject, value string, ok bool) {
	parts := strings.Split(expr, "==")
	if len(parts) != 2 {
		return "", "", false
	}
	subject = strings.TrimSpace(parts[0])
	value = strings.TrimSpace(parts[1])
	if subject == "" || (value != "true" && value != "false") {
		return "", "", false
	}
	return subject, value, true
}

func (p *Predicate) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = ParsePredicate(s)
		return nil
	}

	type alias Predicate
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Fact = canonicalFact(a.Fact)
	if a.Kind == "" {
		a.Kind = PredicateUnknown
	}
	*p = Predicate(a)
	return nil
}

func (p Predicate) MarshalJSON() ([]byte, error) {
	if p.raw != "" {
		return json.Marshal(p.raw)
	}
	type alias Predicate
	return json.Marshal(alias(p))
}

// String reports the legacy text when the predicate came from one, otherwise
// the kind tag.
func (p Predicate) String() string {
	if p.raw != "" {
		return p.raw
	}
	return string(p.Kind)
}
