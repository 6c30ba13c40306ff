package discounts

import (
	"context"

	"travely/internal/shared/constants"
	"travely/pkg/cache"
	"travely/pkg/logger"
)

// MaxPercentage is the ceiling any discount may reach.
const MaxPercentage = 50.0

type Service interface {
	SetCacheService(cacheService cache.Service)
	CreateDiscount(ctx context.Context, req *CreateDiscountRequest) (*DiscountResponse, error)
	GetDiscountByID(ctx context.Context, id uint) (*DiscountResponse, error)
	ListDiscounts(ctx context.Context) ([]DiscountResponse, error)
	UpdateDiscount(ctx context.Context, id uint, req *UpdateDiscountRequest) (*DiscountResponse, error)
	DeleteDiscount(ctx context.Context, id uint) error
	CapPercentages(ctx context.Context) (int64, error)
	BestFor(ctx context.Context, travellerType string, loyaltyPoints int) (float64, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreateDiscount(ctx context.Context, req *CreateDiscountRequest) (*DiscountResponse, error) {
	pct := req.Percentage
	if pct > MaxPercentage {
		pct = MaxPercentage
	}

	discount := &Discount{
		Name:       req.Name,
		Percentage: pct,
		UserType:   req.UserType,
		MinPoints:  req.MinPoints,
	}

	if err := s.repo.Create(ctx, discount); err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	resp := discount.ToResponse()
	return &resp, nil
}

func (s *service) GetDiscountByID(ctx context.Context, id uint) (*DiscountResponse, error) {
	discount, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := discount.ToResponse()
	return &resp, nil
}

func (s *service) ListDiscounts(ctx context.Context) ([]DiscountResponse, error) {
	fetch := func() (interface{}, error) {
		discounts, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		responses := make([]DiscountResponse, len(discounts))
		for i, d := range discounts {
			responses[i] = d.ToResponse()
		}
		return responses, nil
	}

	if s.cacheService != nil {
		var cached []DiscountResponse
		err := s.cacheService.GetOrSet(ctx, constants.CACHE_KEY_DISCOUNTS_LIST,
			constants.TTL_DISCOUNTS_LIST, fetch, &cached)
		if err != nil {
			return nil, err
		}
		return cached, nil
	}

	result, err := fetch()
	if err != nil {
		return nil, err
	}
	return result.([]DiscountResponse), nil
}

func (s *service) UpdateDiscount(ctx context.Context, id uint, req *UpdateDiscountRequest) (*DiscountResponse, error) {
	discount, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		discount.Name = *req.Name
	}
	if req.Percentage != nil {
		pct := *req.Percentage
		if pct > MaxPercentage {
			pct = MaxPercentage
		}
		discount.Percentage = pct
	}
	if req.UserType != nil {
		discount.UserType = *req.UserType
	}
	if req.MinPoints != nil {
		discount.MinPoints = *req.MinPoints
	}

	if err := s.repo.Update(ctx, discount); err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	resp := discount.ToResponse()
	return &resp, nil
}

func (s *service) DeleteDiscount(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// CapPercentages bulk-lowers any discount above the ceiling back to it.
// Returns the number of discounts that were out of range.
func (s *service) CapPercentages(ctx context.Context) (int64, error) {
	capped, err := s.repo.CapPercentages(ctx, MaxPercentage)
	if err != nil {
		return 0, err
	}
	if capped > 0 {
		s.invalidate(ctx)
		s.log.WithFields(map[string]interface{}{
			"capped": capped,
			"max":    MaxPercentage,
		}).Info("discount percentages capped")
	}
	return capped, nil
}

// BestFor resolves the single best discount percentage for a traveller.
// Zero when nothing qualifies.
func (s *service) BestFor(ctx context.Context, travellerType string, loyaltyPoints int) (float64, error) {
	applicable, err := s.repo.ListApplicable(ctx, travellerType, loyaltyPoints)
	if err != nil {
		return 0, err
	}

	best := 0.0
	for _, d := range applicable {
		if d.Percentage > best {
			best = d.Percentage
		}
	}
	return best, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_DISCOUNTS_ALL); err != nil {
		s.log.WithError(err).Warn("failed to invalidate discount cache")
	}
}
