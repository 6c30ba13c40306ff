package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrRouteNotFound = errors.New("route not found")

type Repository interface {
	Create(ctx context.Context, route *Route) error
	GetByID(ctx context.Context, id uint) (*Route, error)
	List(ctx context.Context, page, limit int, transportType string) ([]Route, int64, error)
	Search(ctx context.Context, origin, destination string) ([]Route, error)
	Update(ctx context.Context, route *Route) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, route *Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Route, error) {
	var route Route
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&route).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return &route, nil
}

func (r *repository) List(ctx context.Context, page, limit int, transportType string) ([]Route, int64, error) {
	var routes []Route
	var totalCount int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := r.db.WithContext(ctx).Model(&Route{})
	if transportType != "" {
		query = query.Where("transport_type = ?", transportType)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order("departure_time ASC").
		Offset(offset).
		Limit(limit).
		Find(&routes).Error

	return routes, totalCount, err
}

// Search matches origin/destination case-insensitively
func (r *repository) Search(ctx context.Context, origin, destination string) ([]Route, error) {
	var routes []Route
	err := r.db.WithContext(ctx).
		Where("LOWER(origin) = LOWER(?) AND LOWER(destination) = LOWER(?)", origin, destination).
		Order("departure_time ASC").
		Find(&routes).Error
	return routes, err
}

func (r *repository) Update(ctx context.Context, route *Route) error {
	result := r.db.WithContext(ctx).Save(route)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRouteNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Route{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRouteNotFound
	}
	return nil
}
