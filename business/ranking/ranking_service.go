package ranking

import (
	"context"
	"fmt"
	"sort"

	"landingCards/domain"
	"landingCards/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// ---- Usecase / Service ----

// Service evaluates one (configuration, request) pair into a ranked card
// response. It holds no per-call state; a single instance is safe for
// concurrent calls sharing one immutable configuration snapshot.
type Service struct {
	environment string
	validate    *validator.Validate
}

func NewService(environment string, validate *validator.Validate) *Service {
	if validate == nil {
		validate = validator.New()
	}
	return &Service{
		environment: environment,
		validate:    validate,
	}
}

// Evaluate runs one ranking pass: cards in priority order, exclusion gate,
// per-service-type condition gate, scoring, propensity blend and expiry,
// then a stable sort by final score and the top-5 cut.
func (s *Service) Evaluate(
	ctx context.Context,
	cfg *domain.RankingConfig,
	req *domain.RankingRequest,
) (*domain.RankingResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	cards := sortCardsByPriority(cfg)

	excl := newExclusionState(cfg.UseDomainPropensity.ExclusionRules)
	produced := make(map[string]bool)
	accepted := make(map[string]int)
	collected := make([]domain.DisplayedCard, 0, len(cards))

	for _, card := range cards {
		if excl.isExcluded(card.CardID) {
			excl.record(card.CardID)
			ExcludedCardsTotal.WithLabelValues(card.CardID).Inc()
			continue
		}

		for _, serviceType := range card.ServiceTypes {
			facts, ok := req.FactsFor(serviceType)
			if !ok {
				// no snapshot for this service type, skip silently
				continue
			}
			if !evaluateCondition(card.ShowCondition, evalContext{facts: facts, produced: produced}) {
				continue
			}

			for _, inst := range computeInstances(card, serviceType, req, facts, accepted) {
				propScore, final := blend(inst.base, serviceType, card, cfg.UseDomainPropensity)

				dc := domain.DisplayedCard{
					CardID:                 card.CardID,
					ServiceType:            serviceType,
					DisplayOrder:           len(collected),
					BaseScore:              round2(inst.base),
					DomainPropensityScore:  propScore,
					DomainPropensityEffect: card.DomainPropensityEffect,
					FinalScore:             final,
					ExpiresAt:              computeExpiry(card.ExpireCondition, req.Daypart, req.RequestTime),
					DismissBehavior: domain.DismissBehavior{
						HideOnClick:     card.HideOnClick,
						ExpireCondition: card.ExpireCondition,
					},
				}
				if inst.item != nil {
					dc.ProductID = inst.item.ProductID
					dc.RestaurantID = inst.item.RestaurantID
					dc.RefillEligible = inst.item.RefillEligible
				}

				collected = append(collected, dc)
				produced[card.CardID] = true
			}
		}

		// rules triggered by anything produced so far gate later cards only
		excl.apply(produced)
	}

	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].FinalScore > collected[j].FinalScore
	})
	for i := range collected {
		collected[i].DisplayOrder = i
	}

	displayed := collected
	if len(displayed) > domain.MaxDisplayedCards {
		displayed = displayed[:domain.MaxDisplayedCards]
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("landing_ranking_evaluate",
		"trace_id", tid,
		"user_id", req.UserID,
		"daypart", req.Daypart,
		"config_version", cfg.ConfigVersion,
		"collected", len(collected),
		"displayed", len(displayed),
		"excluded", len(excl.records),
	)

	EvaluationsTotal.WithLabelValues(s.environment, req.Daypart).Inc()

	return &domain.RankingResponse{
		UserID:      req.UserID,
		Environment: s.environment,
		// response_time mirrors request_time so identical inputs always
		// produce identical bytes
		ResponseTime:   req.RequestTime,
		Daypart:        req.Daypart,
		DisplayedCards: displayed,
		ExcludedCards:  excl.records,
	}, nil
}

// sortCardsByPriority orders card definitions by their configured rank
// (stable, missing entries last) without mutating the shared configuration.
func sortCardsByPriority(cfg *domain.RankingConfig) []*domain.CardDefinition {
	out := make([]*domain.CardDefinition, len(cfg.Cards))
	for i := range cfg.Cards {
		out[i] = &cfg.Cards[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return cfg.GlobalSettings.Priority(out[i].CardID) < cfg.GlobalSettings.Priority(out[j].CardID)
	})
	return out
}
