package ranking

import (
	"errors"
	"fmt"

	"landingCards/domain"
)

// Structural validation failures. Both documents are checked atomically
// before any computation; data content beyond this never fails a call.
var (
	ErrInvalidConfig  = errors.New("invalid configuration document")
	ErrInvalidRequest = errors.New("invalid request document")
)

// ValidateConfig checks a configuration document without evaluating it.
// Operators use this to vet an edited document before publishing.
func (s *Service) ValidateConfig(cfg *domain.RankingConfig) error {
	return s.validateConfig(cfg)
}

func (s *Service) validateConfig(cfg *domain.RankingConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: missing document", ErrInvalidConfig)
	}
	if err := s.validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]bool, len(cfg.Cards))
	for i := range cfg.Cards {
		card := &cfg.Cards[i]
		if seen[card.CardID] {
			return fmt.Errorf("%w: duplicate card_id %q", ErrInvalidConfig, card.CardID)
		}
		seen[card.CardID] = true

		if err := validateScoreShape(card); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

func validateScoreShape(card *domain.CardDefinition) error {
	shapes := 0
	if card.Score != nil {
		shapes++
	}
	if card.Scores != nil {
		if len(card.Scores.AgeBuckets) > 0 {
			shapes++
		}
		if len(card.Scores.TimeWindows) > 0 {
			shapes++
		}
		if card.Scores.FromReco {
			shapes++
		}
	}

	kind := card.ScoreKind()
	if kind == domain.ScoreKindNone {
		return fmt.Errorf("card %q has no scoring spec", card.CardID)
	}
	if shapes > 1 {
		return fmt.Errorf("card %q declares more than one scoring spec", card.CardID)
	}

	switch kind {
	case domain.ScoreKindAgeBucketed:
		for _, b := range card.Scores.AgeBuckets {
			if !validUnit(b.MinAge.Unit) || !validUnit(b.MaxAge.Unit) {
				return fmt.Errorf("card %q has an age bucket with an unknown unit", card.CardID)
			}
		}
	case domain.ScoreKindTimeOfDay:
		for _, w := range card.Scores.TimeWindows {
			if _, err := parseClock(w.Start); err != nil {
				return fmt.Errorf("card %q has an unparseable window start %q", card.CardID, w.Start)
			}
			if _, err := parseClock(w.End); err != nil {
				return fmt.Errorf("card %q has an unparseable window end %q", card.CardID, w.End)
			}
		}
	}

	return nil
}

func validUnit(unit string) bool {
	switch unit {
	case "second", "minute", "hour", "day":
		return true
	}
	return false
}

func (s *Service) validateRequest(req *domain.RankingRequest) error {
	if req == nil {
		return fmt.Errorf("%w: missing document", ErrInvalidRequest)
	}
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.RequestTime.IsZero() {
		return fmt.Errorf("%w: request_time is required", ErrInvalidRequest)
	}
	return nil
}
