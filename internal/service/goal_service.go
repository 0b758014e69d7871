package service

import (
	"context"

	"github.com/lucasferreira/fintrack/internal/domain/goal"
	"github.com/lucasferreira/fintrack/internal/infrastructure/observability"
)

// GoalService coordinates goal CRUD and contributions.
type GoalService struct {
	repo    goal.Repository
	metrics *observability.Metrics
}

// NewGoalService creates a new GoalService.
func NewGoalService(repo goal.Repository, metrics *observability.Metrics) *GoalService {
	return &GoalService{repo: repo, metrics: metrics}
}

// List returns all goals, newest first.
func (s *GoalService) List(ctx context.Context) ([]*goal.Goal, error) {
	return s.repo.List(ctx)
}

// Create persists a new goal, applying the current-amount and color
// defaults, and returns the fully materialized row.
func (s *GoalService) Create(ctx context.Context, req CreateGoalRequest) (*goal.Goal, error) {
	g, err := goal.New(req.Name, req.TargetAmountCents, req.CurrentAmountCents, req.Deadline, req.Color)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	s.metrics.GoalsTotal.WithLabelValues("create").Inc()
	return g, nil
}

// Update fully replaces the goal and returns the canonical row read back
// from storage. A missing ID surfaces as ErrGoalNotFound.
func (s *GoalService) Update(ctx context.Context, id int64, req UpdateGoalRequest) (*goal.Goal, error) {
	g, err := goal.New(req.Name, req.TargetAmountCents, req.CurrentAmountCents, req.Deadline, req.Color)
	if err != nil {
		return nil, err
	}
	g.ID = id
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	s.metrics.GoalsTotal.WithLabelValues("update").Inc()
	return s.repo.GetByID(ctx, id)
}

// Delete removes a goal; idempotent like transaction deletion.
func (s *GoalService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.GoalsTotal.WithLabelValues("delete").Inc()
	return nil
}

// Contribute atomically adds deltaCents to the goal's current amount.
// Over-funding past the target is allowed and means "exceeded".
func (s *GoalService) Contribute(ctx context.Context, id int64, deltaCents int64) (*goal.Goal, error) {
	g, err := s.repo.ApplyContribution(ctx, id, deltaCents)
	if err != nil {
		return nil, err
	}
	s.metrics.GoalsTotal.WithLabelValues("contribute").Inc()
	return g, nil
}
