package domain

import "strconv"

// DefaultCardPriority is the sentinel rank for cards missing from
// card_priorities; they are evaluated last.
const DefaultCardPriority = 999

type GlobalSettings struct {
	CardPriorities map[string]int `json:"card_priorities"`
}

func (g GlobalSettings) Priority(cardID string) int {
	if p, ok := g.CardPriorities[cardID]; ok {
		return p
	}
	return DefaultCardPriority
}

// ExclusionRule drops the listed cards once the trigger card has produced at
// least one instance in the current evaluation pass.
type ExclusionRule struct {
	IfCardExists string   `json:"if_card_exists" validate:"required"`
	Exclude      []string `json:"exclude" validate:"min=1"`
}

// PropensityConfig carries per-service-type baseline preference scores and
// the cross-card exclusion rules. DefaultScores is keyed by the stringified
// service type code, matching the wire document.
type PropensityConfig struct {
	Enabled        bool               `json:"enabled"`
	DefaultScores  map[string]float64 `json:"default_scores" validate:"dive,gte=0,lte=100"`
	ExclusionRules []ExclusionRule    `json:"exclusion_rules" validate:"dive"`
}

// DefaultScore returns the propensity baseline for a service type, or 0 when
// none is configured or the blend is disabled.
func (p PropensityConfig) DefaultScore(serviceType int) float64 {
	if !p.Enabled {
		return 0
	}
	return p.DefaultScores[strconv.Itoa(serviceType)]
}

// RankingConfig is the configuration document supplied by the operator
// console for one evaluation call.
type RankingConfig struct {
	ConfigVersion       string           `json:"config_version" validate:"required"`
	GlobalSettings      GlobalSettings   `json:"global_settings"`
	UseDomainPropensity PropensityConfig `json:"use_domain_propensity"`
	Cards               []CardDefinition `json:"cards" validate:"min=1,dive"`
}
