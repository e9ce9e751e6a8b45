package settings

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"tajer-be/internal/finance"
	"tajer-be/internal/logger"
)

type Service interface {
	GetGlobal(ctx context.Context) (*Global, error)
	UpdateGlobal(ctx context.Context, g *Global) error
	ListCompanies(ctx context.Context) ([]*ShippingCompany, error)
	UpsertCompany(ctx context.Context, c *ShippingCompany) error
	DeleteCompany(ctx context.Context, name string) error

	// ResolvePolicy returns the effective fee schedule for one carrier,
	// applying its override when custom fees are enabled.
	ResolvePolicy(ctx context.Context, company string) (finance.Policy, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetGlobal(ctx context.Context) (*Global, error) {
	return s.repo.GetGlobal(ctx)
}

func (s *service) UpdateGlobal(ctx context.Context, g *Global) error {
	if err := s.repo.UpdateGlobal(ctx, g); err != nil {
		logger.FromCtx(ctx).Error("failed to update fee settings", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) ListCompanies(ctx context.Context) ([]*ShippingCompany, error) {
	return s.repo.ListCompanies(ctx)
}

func (s *service) UpsertCompany(ctx context.Context, c *ShippingCompany) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrEmptyName
	}
	return s.repo.UpsertCompany(ctx, c)
}

func (s *service) DeleteCompany(ctx context.Context, name string) error {
	return s.repo.DeleteCompany(ctx, name)
}

func (s *service) ResolvePolicy(ctx context.Context, company string) (finance.Policy, error) {
	global, err := s.repo.GetGlobal(ctx)
	if err != nil {
		return finance.Policy{}, err
	}

	overrides := map[string]finance.CompanyOverride{}
	if company != "" {
		c, err := s.repo.GetCompany(ctx, company)
		if err != nil && !errors.Is(err, ErrCompanyNotFound) {
			return finance.Policy{}, err
		}
		if c != nil {
			overrides[c.Name] = c.Override
		}
	}

	return finance.Resolve(company, global.GlobalSettings, overrides), nil
}
