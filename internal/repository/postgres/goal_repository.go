package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	domainErrors "github.com/lucasferreira/fintrack/internal/domain/errors"
	"github.com/lucasferreira/fintrack/internal/domain/goal"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
)

// GoalRepository implements goal.Repository using PostgreSQL.
type GoalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

// Create inserts a new goal and fills in the generated ID and creation
// timestamp.
func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO goals (name, target_amount, current_amount, deadline, color)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		g.Name, centsToNumericString(g.TargetAmountCents), centsToNumericString(g.CurrentAmountCents),
		g.Deadline, g.Color,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

// GetByID retrieves a goal by its ID.
func (r *GoalRepository) GetByID(ctx context.Context, id int64) (*goal.Goal, error) {
	return r.scanGoal(r.pool.QueryRow(ctx,
		`SELECT id, name, target_amount, current_amount, deadline, color, created_at
		 FROM goals WHERE id = $1`, id))
}

// Update fully replaces a goal by ID.
func (r *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE goals
		 SET name = $1, target_amount = $2, current_amount = $3, deadline = $4, color = $5
		 WHERE id = $6`,
		g.Name, centsToNumericString(g.TargetAmountCents), centsToNumericString(g.CurrentAmountCents),
		g.Deadline, g.Color, g.ID,
	)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal. Deleting an absent ID affects zero rows and is
// not an error.
func (r *GoalRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}

// List lists all goals, newest first.
func (r *GoalRepository) List(ctx context.Context) ([]*goal.Goal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, target_amount, current_amount, deadline, color, created_at
		 FROM goals ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []*goal.Goal
	for rows.Next() {
		g, err := r.scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// ApplyContribution adds deltaCents to the goal's current amount in a
// single statement, so concurrent contributions never lose updates.
func (r *GoalRepository) ApplyContribution(ctx context.Context, id int64, deltaCents int64) (*goal.Goal, error) {
	return r.scanGoal(r.pool.QueryRow(ctx,
		`UPDATE goals SET current_amount = current_amount + $1
		 WHERE id = $2
		 RETURNING id, name, target_amount, current_amount, deadline, color, created_at`,
		centsToNumericString(deltaCents), id))
}

// scanGoal scans a goal from any source implementing the scanner
// interface.
func (r *GoalRepository) scanGoal(s scanner) (*goal.Goal, error) {
	g := &goal.Goal{}
	var (
		targetStr  string
		currentStr string
		deadline   *time.Time
	)
	err := s.Scan(&g.ID, &g.Name, &targetStr, &currentStr, &deadline, &g.Color, &g.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domainErrors.ErrGoalNotFound
		}
		return nil, fmt.Errorf("scan goal: %w", err)
	}

	target, err := numericStringToCents(targetStr)
	if err != nil {
		return nil, fmt.Errorf("parse target_amount: %w", err)
	}
	current, err := numericStringToCents(currentStr)
	if err != nil {
		return nil, fmt.Errorf("parse current_amount: %w", err)
	}
	g.TargetAmountCents = target
	g.CurrentAmountCents = current
	if deadline != nil {
		d := deadline.Format(transaction.DateLayout)
		g.Deadline = &d
	}
	return g, nil
}
