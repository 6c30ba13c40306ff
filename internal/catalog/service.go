package catalog

import (
	"context"
	"math"

	"travely/internal/shared/constants"
	"travely/pkg/cache"
	"travely/pkg/logger"
)

type Service interface {
	SetCacheService(cacheService cache.Service)
	CreateRoute(ctx context.Context, req *CreateRouteRequest) (*RouteResponse, error)
	GetRouteByID(ctx context.Context, id uint) (*RouteResponse, error)
	ListRoutes(ctx context.Context, page, limit int, transportType string) (*PaginatedRoutes, error)
	SearchRoutes(ctx context.Context, origin, destination string) ([]RouteResponse, error)
	UpdateRoute(ctx context.Context, id uint, req *UpdateRouteRequest) (*RouteResponse, error)
	DeleteRoute(ctx context.Context, id uint) error
	InvalidateRouteCache(ctx context.Context, routeID uint)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	return &service{repo: repo, log: log}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreateRoute(ctx context.Context, req *CreateRouteRequest) (*RouteResponse, error) {
	route := &Route{
		Origin:         req.Origin,
		Destination:    req.Destination,
		TransportType:  req.TransportType,
		DepartureTime:  req.DepartureTime,
		BasePrice:      req.BasePrice,
		SeatsTotal:     req.SeatsTotal,
		SeatsAvailable: req.SeatsTotal, // full inventory on creation
	}

	if err := s.repo.Create(ctx, route); err != nil {
		return nil, err
	}

	s.invalidateAll(ctx)
	s.log.LogRouteCreated(ctx, route.ID, route.Origin, route.Destination)

	resp := route.ToResponse()
	return &resp, nil
}

func (s *service) GetRouteByID(ctx context.Context, id uint) (*RouteResponse, error) {
	var cached RouteResponse
	if s.cacheService != nil {
		key := constants.BuildRouteDetailKey(id)
		err := s.cacheService.GetOrSet(ctx, key, constants.TTL_ROUTE_DETAIL, func() (interface{}, error) {
			route, err := s.repo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return route.ToResponse(), nil
		}, &cached)
		if err != nil {
			return nil, err
		}
		return &cached, nil
	}

	route, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := route.ToResponse()
	return &resp, nil
}

func (s *service) ListRoutes(ctx context.Context, page, limit int, transportType string) (*PaginatedRoutes, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	fetch := func() (interface{}, error) {
		routes, total, err := s.repo.List(ctx, page, limit, transportType)
		if err != nil {
			return nil, err
		}

		responses := make([]RouteResponse, len(routes))
		for i, r := range routes {
			responses[i] = r.ToResponse()
		}

		return &PaginatedRoutes{
			Routes:     responses,
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		}, nil
	}

	if s.cacheService != nil {
		var cached PaginatedRoutes
		key := constants.BuildRouteListKey(page, limit, transportType)
		if err := s.cacheService.GetOrSet(ctx, key, constants.TTL_ROUTES_LIST, fetch, &cached); err != nil {
			return nil, err
		}
		return &cached, nil
	}

	result, err := fetch()
	if err != nil {
		return nil, err
	}
	return result.(*PaginatedRoutes), nil
}

func (s *service) SearchRoutes(ctx context.Context, origin, destination string) ([]RouteResponse, error) {
	fetch := func() (interface{}, error) {
		routes, err := s.repo.Search(ctx, origin, destination)
		if err != nil {
			return nil, err
		}
		responses := make([]RouteResponse, len(routes))
		for i, r := range routes {
			responses[i] = r.ToResponse()
		}
		return responses, nil
	}

	if s.cacheService != nil {
		var cached []RouteResponse
		key := constants.BuildRouteSearchKey(origin, destination)
		if err := s.cacheService.GetOrSet(ctx, key, constants.TTL_ROUTES_SEARCH, fetch, &cached); err != nil {
			return nil, err
		}
		return cached, nil
	}

	result, err := fetch()
	if err != nil {
		return nil, err
	}
	return result.([]RouteResponse), nil
}

func (s *service) UpdateRoute(ctx context.Context, id uint, req *UpdateRouteRequest) (*RouteResponse, error) {
	route, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Origin != nil {
		route.Origin = *req.Origin
	}
	if req.Destination != nil {
		route.Destination = *req.Destination
	}
	if req.TransportType != nil {
		route.TransportType = *req.TransportType
	}
	if req.DepartureTime != nil {
		route.DepartureTime = *req.DepartureTime
	}
	if req.BasePrice != nil {
		route.BasePrice = *req.BasePrice
	}

	if err := s.repo.Update(ctx, route); err != nil {
		return nil, err
	}

	s.invalidateAll(ctx)

	resp := route.ToResponse()
	return &resp, nil
}

func (s *service) DeleteRoute(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateAll(ctx)
	return nil
}

// InvalidateRouteCache drops cached views of a route after its seat count
// changes. The booking engine calls this after every confirmed booking.
func (s *service) InvalidateRouteCache(ctx context.Context, routeID uint) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, constants.BuildRouteDetailKey(routeID)); err != nil {
		s.log.WithError(err).Warn("failed to invalidate route detail cache")
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ROUTES_ALL); err != nil {
		s.log.WithError(err).Warn("failed to invalidate route list cache")
	}
}

func (s *service) invalidateAll(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ROUTES_ALL); err != nil {
		s.log.WithError(err).Warn("failed to invalidate route cache")
	}
}
