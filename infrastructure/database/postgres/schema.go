package postgres

import (
	"context"
	"fmt"
)

// schema cria as tabelas usadas pela sincronização de fotografias do resumo
var schema = []string{
	`CREATE TABLE IF NOT EXISTS summary_snapshot (
		id              VARCHAR(32) PRIMARY KEY,
		captured_at     TIMESTAMPTZ NOT NULL,
		today_sales     INTEGER NOT NULL DEFAULT 0,
		today_earnings  NUMERIC(14, 2) NOT NULL DEFAULT 0,
		week_sales      INTEGER NOT NULL DEFAULT 0,
		week_earnings   NUMERIC(14, 2) NOT NULL DEFAULT 0,
		month_sales     INTEGER NOT NULL DEFAULT 0,
		month_earnings  NUMERIC(14, 2) NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_summary_snapshot_captured_at ON summary_snapshot (captured_at DESC)`,
}

// EnsureSchema aplica o schema de forma idempotente
func EnsureSchema(ctx context.Context, q Queryer) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar schema: %w", err)
		}
	}
	return nil
}
