package domain

import "time"

// MaxDisplayedCards caps the externally visible displayed_cards list.
const MaxDisplayedCards = 5

// ExclusionReasonRule marks a card dropped by an exclusion rule.
const ExclusionReasonRule = "exclusion_rule"

type DismissBehavior struct {
	HideOnClick     bool   `json:"hide_on_click"`
	ExpireCondition string `json:"expire_condition"`
}

// DisplayedCard is one ranked card instance in the response.
type DisplayedCard struct {
	CardID                 string          `json:"card_id"`
	ServiceType            int             `json:"service_type"`
	DisplayOrder           int             `json:"display_order"`
	BaseScore              float64         `json:"base_score"`
	DomainPropensityScore  float64         `json:"domain_propensity_score"`
	DomainPropensityEffect float64         `json:"domain_propensity_effect"`
	FinalScore             float64         `json:"final_score"`
	ExpiresAt              time.Time       `json:"expires_at"`
	ProductID              string          `json:"product_id,omitempty"`
	RestaurantID           string          `json:"restaurant_id,omitempty"`
	RefillEligible         *bool           `json:"refill_eligible,omitempty"`
	DismissBehavior        DismissBehavior `json:"dismiss_behavior"`
}

type ExcludedCard struct {
	CardID string `json:"card_id"`
	Reason string `json:"reason"`
}

type RankingResponse struct {
	UserID         string          `json:"user_id"`
	Environment    string          `json:"environment"`
	ResponseTime   time.Time       `json:"response_time"`
	Daypart        string          `json:"daypart"`
	DisplayedCards []DisplayedCard `json:"displayed_cards"`
	ExcludedCards  []ExcludedCard  `json:"excluded_cards"`
}
