package discounts

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrDiscountNotFound = errors.New("discount not found")

type Repository interface {
	Create(ctx context.Context, discount *Discount) error
	GetByID(ctx context.Context, id uint) (*Discount, error)
	List(ctx context.Context) ([]Discount, error)
	ListApplicable(ctx context.Context, travellerType string, loyaltyPoints int) ([]Discount, error)
	Update(ctx context.Context, discount *Discount) error
	Delete(ctx context.Context, id uint) error
	CapPercentages(ctx context.Context, maxPercentage float64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, discount *Discount) error {
	return r.db.WithContext(ctx).Create(discount).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Discount, error) {
	var discount Discount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&discount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}
	return &discount, nil
}

func (r *repository) List(ctx context.Context) ([]Discount, error) {
	var discounts []Discount
	err := r.db.WithContext(ctx).Order("percentage DESC").Find(&discounts).Error
	return discounts, err
}

// ListApplicable returns every discount the given traveller qualifies for.
// A discount with no user_type applies to all traveller types.
func (r *repository) ListApplicable(ctx context.Context, travellerType string, loyaltyPoints int) ([]Discount, error) {
	var discounts []Discount
	err := r.db.WithContext(ctx).
		Where("(user_type IS NULL OR user_type = '' OR user_type = ?) AND min_points <= ?",
			travellerType, loyaltyPoints).
		Order("percentage DESC").
		Find(&discounts).Error
	return discounts, err
}

func (r *repository) Update(ctx context.Context, discount *Discount) error {
	result := r.db.WithContext(ctx).Save(discount)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiscountNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Discount{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiscountNotFound
	}
	return nil
}

// CapPercentages clamps every discount above maxPercentage down to it and
// reports how many rows changed.
func (r *repository) CapPercentages(ctx context.Context, maxPercentage float64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Discount{}).
		Where("percentage > ?", maxPercentage).
		Update("percentage", maxPercentage)
	return result.RowsAffected, result.Error
}
