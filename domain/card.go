package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// Card sources.
const (
	SourceOnboarding  = "onboarding"
	SourceSAR         = "SAR"
	SourceFoodListing = "food_listing"
)

// Expire condition tags recognized by the expiry calculator.
const (
	ExpireEndOfDaypart = "end_of_daypart"
	ExpireEndOfDay     = "end_of_day"
	ExpireEndOfNextDay = "end_of_next_day"
)

// ScoreKind identifies which scoring shape a card uses.
type ScoreKind string

const (
	ScoreKindStatic         ScoreKind = "static"
	ScoreKindAgeBucketed    ScoreKind = "age_bucketed"
	ScoreKindTimeOfDay      ScoreKind = "time_of_day"
	ScoreKindRecommendation ScoreKind = "recommendation"
	ScoreKindNone           ScoreKind = ""
)

type DurationValue struct {
	Value int    `json:"value" validate:"gte=0"`
	Unit  string `json:"unit" validate:"oneof=second minute hour day"`
}

func (d DurationValue) Duration() time.Duration {
	switch d.Unit {
	case "second":
		return time.Duration(d.Value) * time.Second
	case "minute":
		return time.Duration(d.Value) * time.Minute
	case "hour":
		return time.Duration(d.Value) * time.Hour
	case "day":
		return time.Duration(d.Value) * 24 * time.Hour
	}
	return 0
}

// AgeBucket scores an instance by how old its reference event is,
// over the half-open window [MinAge, MaxAge).
type AgeBucket struct {
	MinAge DurationValue `json:"min_age"`
	MaxAge DurationValue `json:"max_age"`
	Score  float64       `json:"score"`
}

// TimeWindow scores an instance by wall-clock time of day over the half-open
// window [Start, End). Windows may wrap past midnight (e.g. 23:00 -> 08:00).
type TimeWindow struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Score float64 `json:"score"`
}

// ScoreSpec is the polymorphic "scores" node of a card definition: an ordered
// list of age buckets, an ordered list of time-of-day windows, or a marker
// object meaning "derive from upstream SAR recommendation scores".
type ScoreSpec struct {
	AgeBuckets  []AgeBucket
	TimeWindows []TimeWindow
	FromReco    bool
}

func (s *ScoreSpec) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '{' {
		// marker object, e.g. {"score_dict_from_SAR_per_daypart": {}}
		s.FromReco = true
		return nil
	}

	var probe []map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return err
	}
	if len(probe) == 0 {
		return nil
	}

	if _, ok := probe[0]["min_age"]; ok {
		return json.Unmarshal(trimmed, &s.AgeBuckets)
	}
	return json.Unmarshal(trimmed, &s.TimeWindows)
}

func (s ScoreSpec) MarshalJSON() ([]byte, error) {
	switch {
	case s.FromReco:
		return json.Marshal(map[string]any{"score_dict_from_SAR_per_daypart": map[string]any{}})
	case len(s.AgeBuckets) > 0:
		return json.Marshal(s.AgeBuckets)
	default:
		return json.Marshal(s.TimeWindows)
	}
}

type CardDefinition struct {
	CardID                 string     `json:"card_id" validate:"required"`
	Source                 string     `json:"source,omitempty"`
	ServiceTypes           []int      `json:"service_types" validate:"min=1"`
	ShowCondition          Predicate  `json:"show_condition"`
	ExpireCondition        string     `json:"expire_condition,omitempty"`
	HideOnClick            bool       `json:"hide_on_click"`
	Score                  *float64   `json:"score,omitempty"`
	Scores                 *ScoreSpec `json:"scores,omitempty"`
	FallbackScore          float64    `json:"fallback_score,omitempty"`
	DomainPropensityEffect float64    `json:"domain_propensity_effect" validate:"gte=0,lte=1"`
	Threshold              *float64   `json:"threshold,omitempty"`
	MaxSuggestionCount     int        `json:"max_suggestion_count,omitempty" validate:"gte=0"`
}

// ScoreKind resolves which of the scoring shapes this card carries.
// A SAR-sourced card is recommendation-derived regardless of its scores node.
func (c *CardDefinition) ScoreKind() ScoreKind {
	if c.Source == SourceSAR || (c.Scores != nil && c.Scores.FromReco) {
		return ScoreKindRecommendation
	}
	if c.Score != nil {
		return ScoreKindStatic
	}
	if c.Scores != nil {
		if len(c.Scores.AgeBuckets) > 0 {
			return ScoreKindAgeBucketed
		}
		if len(c.Scores.TimeWindows) > 0 {
			return ScoreKindTimeOfDay
		}
	}
	return ScoreKindNone
}
