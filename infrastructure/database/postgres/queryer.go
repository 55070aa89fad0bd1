package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o mínimo que os repositórios precisam do banco. Todas as operações
// recebem o contexto da requisição ou da sincronização agendada.
type Queryer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var (
	_ Queryer = (*Connection)(nil)
	_ Conn    = (*Connection)(nil)
)
