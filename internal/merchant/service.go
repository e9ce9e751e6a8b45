package merchant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tajer-be/internal/logger"
)

type Service interface {
	Register(ctx context.Context, email, password, storeName string) (string, Merchant, error)
	Login(ctx context.Context, email, password string) (string, Merchant, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, email, password, storeName string) (string, Merchant, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", Merchant{}, err
	}

	m, err := s.repo.Create(ctx, email, hashed, storeName)
	if err != nil {
		log.Error("failed to create merchant", zap.String("email", email), zap.Error(err))
		if strings.Contains(err.Error(), "merchants_email_key") {
			return "", Merchant{}, ErrEmailExists
		}
		return "", Merchant{}, err
	}

	token, err := GenerateJWT(m.ID, email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("merchant_id", fmt.Sprint(m.ID)), zap.Error(err))
		return "", Merchant{}, err
	}

	log.Info("register service completed",
		zap.String("merchant_id", fmt.Sprint(m.ID)),
		zap.String("email", email),
	)

	return token, m, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, Merchant, error) {
	log := logger.FromCtx(ctx)

	m, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Warn("login: email not found", zap.String("email", email))
		return "", Merchant{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, m.Password) {
		log.Warn("login: password mismatch", zap.String("email", email))
		return "", Merchant{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(m.ID, email)
	return token, m, err
}
