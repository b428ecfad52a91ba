// Package cases provides HTTP handlers and business logic for the case registry.
package cases

import (
	"context"
	"fmt"
	"maps"
	"math"
	"time"

	"github.com/aiharmwatch/harmwatch/internal/domain"
	"github.com/aiharmwatch/harmwatch/internal/pkg/ctxlog"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 9
)

// StatsConfig holds the fixed counters reported next to the live case count.
type StatsConfig struct {
	TotalUsers           int
	TotalEvidence        int
	CategoryDistribution map[string]int
}

// Config contains registry configuration.
type Config struct {
	DefaultLimit int
	Stats        StatsConfig
}

// Pagination describes the page returned by ListCases.
type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// CreateCaseInput holds data for creating a case.
type CreateCaseInput struct {
	Title       string
	Category    string
	Severity    string
	Description string
}

// Service implements case registry business logic.
type Service struct {
	repo   Repository
	config Config
	now    func() time.Time
}

// NewService creates a new case service.
func NewService(repo Repository, config Config) *Service {
	if config.DefaultLimit < 1 {
		config.DefaultLimit = DefaultLimit
	}
	return &Service{
		repo:   repo,
		config: config,
		now:    time.Now,
	}
}

// ListCases returns one page of cases in registry order.
// Non-positive page or limit fall back to the defaults.
func (s *Service) ListCases(ctx context.Context, page, limit int) ([]domain.Case, Pagination, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = s.config.DefaultLimit
	}

	// Offsets that do not fit in an int lie past any collection
	if page-1 > math.MaxInt/limit {
		total, err := s.repo.Count(ctx)
		if err != nil {
			return nil, Pagination{}, fmt.Errorf("list cases: %w", err)
		}
		return []domain.Case{}, newPagination(page, limit, total), nil
	}

	items, total, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list cases: %w", err)
	}

	return items, newPagination(page, limit, total), nil
}

func newPagination(page, limit, total int) Pagination {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// GetCase returns a case by ID and counts the fetch as a view.
func (s *Service) GetCase(ctx context.Context, id string) (*domain.Case, error) {
	c, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get case %q: %w", id, err)
	}

	recordCaseViewed()
	ctxlog.FromContext(ctx).Debug("case viewed", "views", c.Views)
	return c, nil
}

// CreateCase registers a new open case at the front of the registry.
func (s *Service) CreateCase(ctx context.Context, input CreateCaseInput) (*domain.Case, error) {
	severity := domain.Severity(input.Severity)
	if severity == "" {
		severity = domain.SeverityLow
	}

	c := &domain.Case{
		Title:       input.Title,
		Category:    input.Category,
		Severity:    severity,
		Status:      domain.CaseStatusOpen,
		Description: input.Description,
		Views:       0,
		Upvotes:     0,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}

	recordCaseCreated(c.Severity)
	ctxlog.FromContext(ctx).Info("case created",
		"case_id", c.ID,
		"category", c.Category,
		"severity", c.Severity,
	)

	return c, nil
}

// Stats returns the live case count alongside the configured counters.
func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count cases: %w", err)
	}

	distribution := make(map[string]int, len(s.config.Stats.CategoryDistribution))
	maps.Copy(distribution, s.config.Stats.CategoryDistribution)

	return &domain.Stats{
		TotalCases:           total,
		TotalUsers:           s.config.Stats.TotalUsers,
		TotalEvidence:        s.config.Stats.TotalEvidence,
		CategoryDistribution: distribution,
	}, nil
}

// CountCases returns the number of cases held by the registry.
func (s *Service) CountCases(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
