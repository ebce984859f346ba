package domain

import (
	"encoding/json"
	"testing"
)

func TestParsePredicateLegacyStrings(t *testing.T) {
	cases := []struct {
		in       string
		wantKind PredicateKind
		wantFact string
		wantCard string
	}{
		{"true", PredicateAlways, "", ""},
		{"unconditional_true", PredicateAlways, "", ""},
		{"user.has_active_order == true", PredicateFactTrue, FactHasActiveOrder, ""},
		{"user.has_active_order == false", PredicateFactFalse, FactHasActiveOrder, ""},
		{"has_awaiting_rating.is_exist == true", PredicateFactTrue, FactHasAwaitingRating, ""},
		{"user.available_play_and_win == true", PredicateFactTrue, FactAvailablePlayAndWin, ""},
		{"user.has_abandoned_basket == true", PredicateFactTrue, FactHasAbandonedBasket, ""},
		// misspelling present in stored configurations
		{"user.has_abononed_basket == true", PredicateFactTrue, FactHasAbandonedBasket, ""},
		{"score > threshold", PredicateScoreOverThreshold, "", ""},
		{"food_product_suggestion == false", PredicateCardAbsent, "", "food_product_suggestion"},
		{"something nobody ever wrote", PredicateUnknown, "", ""},
		{"user.has_active_order == maybe", PredicateUnknown, "", ""},
		{"", PredicateUnknown, "", ""},
	}

	for _, tc := range cases {
		got := ParsePredicate(tc.in)
		if got.Kind != tc.wantKind {
			t.Errorf("ParsePredicate(%q).Kind = %q, want %q", tc.in, got.Kind, tc.wantKind)
		}
		if got.Fact != tc.wantFact {
			t.Errorf("ParsePredicate(%q).Fact = %q, want %q", tc.in, got.Fact, tc.wantFact)
		}
		if got.CardID != tc.wantCard {
			t.Errorf("ParsePredicate(%q).CardID = %q, want %q", tc.in, got.CardID, tc.wantCard)
		}
	}
}

func TestPredicateUnmarshalStringForm(t *testing.T) {
	var p Predicate
	if err := json.Unmarshal([]byte(`"user.has_active_order == true"`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Kind != PredicateFactTrue || p.Fact != FactHasActiveOrder {
		t.Fatalf("got kind=%q fact=%q", p.Kind, p.Fact)
	}

	// the legacy text survives a round trip unchanged
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"user.has_active_order == true"` {
		t.Fatalf("round trip produced %s", out)
	}
}

func TestPredicateUnmarshalObjectForm(t *testing.T) {
	var p Predicate
	err := json.Unmarshal([]byte(`{"kind":"card_absent","card_id":"food_product_suggestion"}`), &p)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Kind != PredicateCardAbsent || p.CardID != "food_product_suggestion" {
		t.Fatalf("got kind=%q card_id=%q", p.Kind, p.CardID)
	}
}

func TestPredicateUnmarshalEmptyObjectIsUnknown(t *testing.T) {
	var p Predicate
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Kind != PredicateUnknown {
		t.Fatalf("got kind=%q, want unknown", p.Kind)
	}
}
