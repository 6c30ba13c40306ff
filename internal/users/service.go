package users

import (
	"context"

	"travely/pkg/logger"
)

type Service interface {
	GetProfile(ctx context.Context, userID uint) (*UserResponse, error)
	ListUsers(ctx context.Context, page, limit int) ([]UserResponse, int64, error)
	AdjustLoyalty(ctx context.Context, userID uint, delta int) (*UserResponse, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) GetProfile(ctx context.Context, userID uint) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *service) ListUsers(ctx context.Context, page, limit int) ([]UserResponse, int64, error) {
	users, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, total, nil
}

func (s *service) AdjustLoyalty(ctx context.Context, userID uint, delta int) (*UserResponse, error) {
	user, err := s.repo.AdjustLoyaltyPoints(ctx, userID, delta)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(map[string]any{
		"user_id": userID,
		"delta":   delta,
		"balance": user.LoyaltyPoints,
	}).Info("loyalty points adjusted")
	resp := user.ToResponse()
	return &resp, nil
}
