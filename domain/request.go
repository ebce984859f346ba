package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Dayparts used to key recommendation scores and expiry boundaries.
const (
	DaypartMorning   = "morning"
	DaypartAfternoon = "afternoon"
	DaypartEvening   = "evening"
	DaypartNight     = "night"
)

// OnboardingFacts is the per-service-type user state snapshot supplied by the
// onboarding upstream.
type OnboardingFacts struct {
	HasActiveOrder        bool       `json:"has_active_order"`
	ActiveOrderTime       *time.Time `json:"active_order_time"`
	HasAwaitingRating     bool       `json:"has_awaiting_rating"`
	AwaitingRatingTime    *time.Time `json:"awaiting_rating_time"`
	UserChurnStatus       bool       `json:"user_churn_status"`
	HasAbandonedBasket    bool       `json:"has_abandoned_basket"`
	BasketLastUpdatedTime *time.Time `json:"basket_last_updated_time"`
	AvailablePlayAndWin   bool       `json:"available_play_and_win"`
}

// Fact resolves a named boolean fact. Unknown names report false.
func (f OnboardingFacts) Fact(name string) bool {
	switch name {
	case FactHasActiveOrder:
		return f.HasActiveOrder
	case FactHasAwaitingRating:
		return f.HasAwaitingRating
	case FactHasAbandonedBasket:
		return f.HasAbandonedBasket
	case FactAvailablePlayAndWin:
		return f.AvailablePlayAndWin
	case FactUserChurnStatus:
		return f.UserChurnStatus
	}
	return false
}

// FactTime resolves the companion timestamp of a named fact, used as the
// reference event for age-bucketed scoring.
func (f OnboardingFacts) FactTime(name string) *time.Time {
	switch name {
	case FactHasActiveOrder:
		return f.ActiveOrderTime
	case FactHasAwaitingRating:
		return f.AwaitingRatingTime
	case FactHasAbandonedBasket:
		return f.BasketLastUpdatedTime
	}
	return nil
}

// RecoItem is one upstream recommendation entry with its [0,1] score and
// optional item metadata.
type RecoItem struct {
	ProductID      string  `json:"product_id,omitempty"`
	RestaurantID   string  `json:"restaurant_id,omitempty"`
	RefillEligible *bool   `json:"refill_eligible,omitempty"`
	Score          float64 `json:"score"`
}

// DaypartScores holds the upstream value for one daypart: either an ordered
// item list or a single scalar score.
type DaypartScores struct {
	Items  []RecoItem
	Scalar *float64
}

func (d *DaypartScores) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &d.Items)
	}
	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	d.Scalar = &v
	return nil
}

func (d DaypartScores) MarshalJSON() ([]byte, error) {
	if d.Scalar != nil {
		return json.Marshal(*d.Scalar)
	}
	return json.Marshal(d.Items)
}

// RecoCardScores is the upstream SAR payload for one card, keyed by daypart.
type RecoCardScores struct {
	Scores map[string]DaypartScores `json:"scores"`
}

// ForDaypart returns the scores for the requested daypart, falling back to
// the morning bucket when the key is absent.
func (r RecoCardScores) ForDaypart(daypart string) (DaypartScores, bool) {
	if v, ok := r.Scores[daypart]; ok {
		return v, true
	}
	v, ok := r.Scores[DaypartMorning]
	return v, ok
}

// RankingRequest is the per-call snapshot of user state and upstream scores.
// Onboarding and RecoScores are keyed by the stringified service type code.
type RankingRequest struct {
	UserID      string                               `json:"user_id" validate:"required"`
	RequestTime time.Time                            `json:"request_time" validate:"required"`
	Daypart     string                               `json:"daypart" validate:"required,oneof=morning afternoon evening night"`
	Onboarding  map[string]OnboardingFacts           `json:"onboarding"`
	RecoScores  map[string]map[string]RecoCardScores `json:"reco_scores,omitempty"`
}

func (r *RankingRequest) FactsFor(serviceType int) (OnboardingFacts, bool) {
	f, ok := r.Onboarding[strconv.Itoa(serviceType)]
	return f, ok
}

func (r *RankingRequest) RecoFor(serviceType int, cardID string) (RecoCardScores, bool) {
	byCard, ok := r.RecoScores[strconv.Itoa(serviceType)]
	if !ok {
		return RecoCardScores{}, false
	}
	rc, ok := byCard[cardID]
	return rc, ok
}
