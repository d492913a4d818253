package admin

import (
	"context"
	"errors"

	"github.com/Amin-Golden/GymWeb/internal/auth"
	"github.com/Amin-Golden/GymWeb/internal/metrics"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetByID(ctx context.Context, id int64) (*Admin, error)
	Create(ctx context.Context, a NewAdmin) (*Admin, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	a, err := s.repo.FindByAdminID(ctx, req.AdminID)
	if errors.Is(err, ErrNotFound) {
		metrics.RecordLogin(false)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(a.PasswordHash, req.Password) {
		metrics.RecordLogin(false)
		return nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(a.ID.Int64(), a.AdminID, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	metrics.RecordLogin(true)
	return &LoginResponse{Token: accessToken, RefreshToken: refreshToken, Admin: *a}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	accessToken, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", err
	}
	// The admin may have been removed since the refresh token was issued.
	if _, err := s.repo.FindByID(ctx, claims.AdminID); err != nil {
		return "", err
	}
	return accessToken, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Admin, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, a NewAdmin) (*Admin, error) {
	if _, err := s.repo.FindByAdminID(ctx, a.AdminID); err == nil {
		return nil, ErrAdminIDExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(a.Password)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, a, hash)
}
