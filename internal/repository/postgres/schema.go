package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL is applied on every startup. All statements are idempotent;
// there is no versioned migrations engine for this schema.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS transactions (
	id          BIGSERIAL PRIMARY KEY,
	type        TEXT NOT NULL CHECK (type IN ('income', 'expense')),
	amount      NUMERIC(14,2) NOT NULL,
	category    TEXT NOT NULL,
	description TEXT,
	date        DATE NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS goals (
	id             BIGSERIAL PRIMARY KEY,
	name           TEXT NOT NULL,
	target_amount  NUMERIC(14,2) NOT NULL,
	current_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
	deadline       DATE,
	color          TEXT NOT NULL DEFAULT '#6366f1',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date);
CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions (type);
`

// EnsureSchema creates the two tables and their indexes if absent.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
