// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salesmap-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/salesmap-dashboard/internal/domain"
)

//go:generate mockgen -source=summary_snapshot.go -destination=mocks/mock_summary_snapshot.go -package=mocks

const (
	summarySnapshotTable = "summary_snapshot"

	// DefaultSnapshotLimit é usado quando a listagem não informa limite
	DefaultSnapshotLimit = 48
	// MaxSnapshotLimit evita listagens sem limite
	MaxSnapshotLimit = 500
)

var summarySnapshotColumns = []string{
	"id",
	"captured_at",
	"today_sales",
	"today_earnings",
	"week_sales",
	"week_earnings",
	"month_sales",
	"month_earnings",
}

type SummarySnapshotRepository interface {
	Save(ctx context.Context, snapshot domain.SummarySnapshot) error
	List(ctx context.Context, limit int) ([]domain.SummarySnapshot, error)
	Latest(ctx context.Context) (*domain.SummarySnapshot, error)
}

type summarySnapshotRepository struct {
	conn postgres.Queryer
}

func NewSummarySnapshotRepository(conn postgres.Queryer) SummarySnapshotRepository {
	return &summarySnapshotRepository{
		conn: conn,
	}
}

func (r *summarySnapshotRepository) Save(ctx context.Context, snapshot domain.SummarySnapshot) error {
	query, args, err := buildSaveSnapshotQuery(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar fotografia do resumo: %w", err)
	}

	return nil
}

func (r *summarySnapshotRepository) List(ctx context.Context, limit int) ([]domain.SummarySnapshot, error) {
	query, args, err := buildListSnapshotsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.SummarySnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSummarySnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fotografia do resumo: %w", err)
		}
		snapshots = append(snapshots, *snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *summarySnapshotRepository) Latest(ctx context.Context) (*domain.SummarySnapshot, error) {
	query, args, err := buildListSnapshotsQuery(1)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSummarySnapshot(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar última fotografia do resumo: %w", err)
	}

	return snapshot, nil
}

func buildSaveSnapshotQuery(snapshot domain.SummarySnapshot) (string, []interface{}, error) {
	return squirrel.
		Insert(summarySnapshotTable).
		Columns(summarySnapshotColumns...).
		Values(
			snapshot.ID,
			snapshot.CapturedAt,
			snapshot.Today.TotalSales,
			snapshot.Today.TotalEarnings,
			snapshot.ThisWeek.TotalSales,
			snapshot.ThisWeek.TotalEarnings,
			snapshot.ThisMonth.TotalSales,
			snapshot.ThisMonth.TotalEarnings,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			captured_at = EXCLUDED.captured_at,
			today_sales = EXCLUDED.today_sales,
			today_earnings = EXCLUDED.today_earnings,
			week_sales = EXCLUDED.week_sales,
			week_earnings = EXCLUDED.week_earnings,
			month_sales = EXCLUDED.month_sales,
			month_earnings = EXCLUDED.month_earnings`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListSnapshotsQuery(limit int) (string, []interface{}, error) {
	return squirrel.
		Select(summarySnapshotColumns...).
		From(summarySnapshotTable).
		OrderBy("captured_at DESC").
		Limit(uint64(NormalizeSnapshotLimit(limit))).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// NormalizeSnapshotLimit aplica o limite padrão e o máximo
func NormalizeSnapshotLimit(limit int) int {
	if limit <= 0 {
		return DefaultSnapshotLimit
	}
	if limit > MaxSnapshotLimit {
		return MaxSnapshotLimit
	}
	return limit
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSummarySnapshot(row rowScanner) (*domain.SummarySnapshot, error) {
	var snapshot domain.SummarySnapshot

	err := row.Scan(
		&snapshot.ID,
		&snapshot.CapturedAt,
		&snapshot.Today.TotalSales,
		&snapshot.Today.TotalEarnings,
		&snapshot.ThisWeek.TotalSales,
		&snapshot.ThisWeek.TotalEarnings,
		&snapshot.ThisMonth.TotalSales,
		&snapshot.ThisMonth.TotalEarnings,
	)
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}
