package ranking

import (
	"testing"
	"time"

	"landingCards/domain"
)

var testEvalTime = time.Date(2025, 7, 1, 13, 0, 0, 0, time.UTC)

func fptr(v float64) *float64 { return &v }

func TestComputeInstancesStatic(t *testing.T) {
	card := &domain.CardDefinition{CardID: "c", Score: fptr(100)}
	req := &domain.RankingRequest{RequestTime: testEvalTime}

	insts := computeInstances(card, 10, req, domain.OnboardingFacts{}, map[string]int{})
	if len(insts) != 1 || insts[0].base != 100 {
		t.Fatalf("got %+v", insts)
	}
}

func TestAgeBucketScoreMatchesWindow(t *testing.T) {
	card := &domain.CardDefinition{
		CardID:        "order_rating_tip",
		ShowCondition: domain.Predicate{Kind: domain.PredicateFactTrue, Fact: domain.FactHasAwaitingRating},
		Scores: &domain.ScoreSpec{AgeBuckets: []domain.AgeBucket{
			{MinAge: domain.DurationValue{Value: 0, Unit: "second"}, MaxAge: domain.DurationValue{Value: 2, Unit: "hour"}, Score: 50},
			{MinAge: domain.DurationValue{Value: 2, Unit: "hour"}, MaxAge: domain.DurationValue{Value: 1, Unit: "day"}, Score: 25},
			{MinAge: domain.DurationValue{Value: 1, Unit: "day"}, MaxAge: domain.DurationValue{Value: 2, Unit: "day"}, Score: 10},
		}},
		FallbackScore: 3,
	}

	cases := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{"fresh", 30 * time.Minute, 50},
		{"lower bound inclusive", 2 * time.Hour, 25},
		{"next day", 30 * time.Hour, 10},
		{"upper bound exclusive", 48 * time.Hour, 3},
		{"too old", 100 * time.Hour, 3},
	}
	for _, tc := range cases {
		ref := testEvalTime.Add(-tc.age)
		facts := domain.OnboardingFacts{HasAwaitingRating: true, AwaitingRatingTime: &ref}
		if got := ageBucketScore(card, testEvalTime, facts); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAgeBucketScoreMissingReferenceFallsBack(t *testing.T) {
	card := &domain.CardDefinition{
		ShowCondition: domain.Predicate{Kind: domain.PredicateFactTrue, Fact: domain.FactHasAwaitingRating},
		Scores:        &domain.ScoreSpec{AgeBuckets: []domain.AgeBucket{{MaxAge: domain.DurationValue{Value: 1, Unit: "day"}, Score: 50}}},
		FallbackScore: 7,
	}
	// awaiting_rating_time is null in the snapshot
	if got := ageBucketScore(card, testEvalTime, domain.OnboardingFacts{HasAwaitingRating: true}); got != 7 {
		t.Fatalf("got %v, want fallback 7", got)
	}
}

func TestTimeOfDayScore(t *testing.T) {
	card := &domain.CardDefinition{
		Scores: &domain.ScoreSpec{TimeWindows: []domain.TimeWindow{
			{Start: "08:00", End: "11:00", Score: 10},
			{Start: "11:00", End: "13:00", Score: 70},
			{Start: "13:00", End: "15:00", Score: 20},
			{Start: "23:00", End: "08:00", Score: 5},
		}},
		FallbackScore: 1,
	}

	cases := []struct {
		clock string
		want  float64
	}{
		{"2025-07-01T09:30:00Z", 10},
		{"2025-07-01T11:00:00Z", 70}, // start inclusive
		{"2025-07-01T13:00:00Z", 20}, // end exclusive, next window takes over
		{"2025-07-01T23:30:00Z", 5},  // wraps past midnight
		{"2025-07-01T02:00:00Z", 5},
		{"2025-07-01T16:00:00Z", 1}, // gap -> fallback
	}
	for _, tc := range cases {
		at, err := time.Parse(time.RFC3339, tc.clock)
		if err != nil {
			t.Fatal(err)
		}
		if got := timeOfDayScore(card, at); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.clock, got, tc.want)
		}
	}
}

func sarRequest(daypart string, items map[string][]domain.RecoItem) *domain.RankingRequest {
	scores := make(map[string]domain.DaypartScores, len(items))
	for dp, list := range items {
		scores[dp] = domain.DaypartScores{Items: list}
	}
	return &domain.RankingRequest{
		RequestTime: testEvalTime,
		Daypart:     daypart,
		RecoScores: map[string]map[string]domain.RecoCardScores{
			"10": {"market_product_suggestion": {Scores: scores}},
		},
	}
}

func TestRecommendationInstancesThresholdAndScale(t *testing.T) {
	card := &domain.CardDefinition{
		CardID:    "market_product_suggestion",
		Source:    domain.SourceSAR,
		Threshold: fptr(40),
	}
	req := sarRequest(domain.DaypartAfternoon, map[string][]domain.RecoItem{
		domain.DaypartAfternoon: {
			{ProductID: "a", Score: 0.9},
			{ProductID: "b", Score: 0.39},
			{ProductID: "c", Score: 0.6},
		},
	})

	insts := recommendationInstances(card, 10, req, map[string]int{})
	if len(insts) != 2 {
		t.Fatalf("got %d instances, want 2", len(insts))
	}
	if insts[0].base != 90 || insts[0].item.ProductID != "a" {
		t.Fatalf("first instance: %+v", insts[0])
	}
	if insts[1].base != 60 || insts[1].item.ProductID != "c" {
		t.Fatalf("second instance: %+v", insts[1])
	}
}

func TestRecommendationInstancesMaxCountAcrossServiceTypes(t *testing.T) {
	card := &domain.CardDefinition{
		CardID:             "market_product_suggestion",
		Source:             domain.SourceSAR,
		MaxSuggestionCount: 2,
	}
	req := sarRequest(domain.DaypartAfternoon, map[string][]domain.RecoItem{
		domain.DaypartAfternoon: {
			{ProductID: "a", Score: 0.9},
			{ProductID: "b", Score: 0.8},
			{ProductID: "c", Score: 0.7},
		},
	})

	accepted := map[string]int{}
	first := recommendationInstances(card, 10, req, accepted)
	if len(first) != 2 {
		t.Fatalf("first service type got %d, want 2", len(first))
	}

	// the counter is shared, a second service type yields nothing more
	second := recommendationInstances(card, 10, req, accepted)
	if len(second) != 0 {
		t.Fatalf("second service type got %d, want 0", len(second))
	}
}

func TestRecommendationInstancesDaypartFallbackToMorning(t *testing.T) {
	card := &domain.CardDefinition{CardID: "market_product_suggestion", Source: domain.SourceSAR}
	req := sarRequest(domain.DaypartNight, map[string][]domain.RecoItem{
		domain.DaypartMorning: {{ProductID: "m", Score: 0.5}},
	})

	insts := recommendationInstances(card, 10, req, map[string]int{})
	if len(insts) != 1 || insts[0].item.ProductID != "m" {
		t.Fatalf("got %+v", insts)
	}
}

func TestRecommendationInstancesScalar(t *testing.T) {
	v := 0.75
	req := &domain.RankingRequest{
		RequestTime: testEvalTime,
		Daypart:     domain.DaypartAfternoon,
		RecoScores: map[string]map[string]domain.RecoCardScores{
			"3": {"market_ready_basket": {Scores: map[string]domain.DaypartScores{
				domain.DaypartAfternoon: {Scalar: &v},
			}}},
		},
	}

	card := &domain.CardDefinition{CardID: "market_ready_basket", Source: domain.SourceSAR}
	insts := recommendationInstances(card, 3, req, map[string]int{})
	if len(insts) != 1 || insts[0].base != 75 || insts[0].item != nil {
		t.Fatalf("got %+v", insts)
	}

	// scalar below threshold yields nothing
	card.Threshold = fptr(80)
	if got := recommendationInstances(card, 3, req, map[string]int{}); len(got) != 0 {
		t.Fatalf("thresholded scalar produced %+v", got)
	}
}

func TestRecommendationInstancesMissingDataIsSoft(t *testing.T) {
	card := &domain.CardDefinition{CardID: "market_product_suggestion", Source: domain.SourceSAR}

	// no reco entry at all
	req := &domain.RankingRequest{RequestTime: testEvalTime, Daypart: domain.DaypartAfternoon}
	if got := recommendationInstances(card, 10, req, map[string]int{}); len(got) != 0 {
		t.Fatalf("missing reco_scores produced %+v", got)
	}
}
