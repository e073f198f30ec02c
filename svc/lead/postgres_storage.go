package lead

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/saaslanding/pkg/pg"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStorage stores leads in the leads table created by the migrations
// package.
type PostgresStorage struct {
	db DBTX
}

func NewPostgresStorage(db DBTX) *PostgresStorage {
	return &PostgresStorage{db: db}
}

const (
	insertLeadQuery = `INSERT INTO leads (id, email, source, ip, user_agent, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	selectLeadColumns   = `SELECT id, email, source, ip, user_agent, created_at FROM leads`
	getLeadByEmailQuery = selectLeadColumns + ` WHERE email = $1`
	listLeadsQuery      = selectLeadColumns + ` ORDER BY created_at DESC, id LIMIT $1`
	listAllLeadsQuery   = selectLeadColumns + ` ORDER BY created_at DESC, id`
)

func (s *PostgresStorage) CreateLead(ctx context.Context, l Lead) error {
	_, err := s.db.Exec(ctx, insertLeadQuery, l.ID, l.Email, l.Source, l.IP, l.UserAgent, l.CreatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrDuplicateLead
		}
		return err
	}
	return nil
}

func (s *PostgresStorage) GetLeadByEmail(ctx context.Context, email string) (*Lead, error) {
	rows, err := s.db.Query(ctx, getLeadByEmailQuery, email)
	if err != nil {
		return nil, err
	}
	l, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Lead])
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (s *PostgresStorage) ListLeads(ctx context.Context, limit int) ([]Lead, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Query(ctx, listLeadsQuery, limit)
	} else {
		rows, err = s.db.Query(ctx, listAllLeadsQuery)
	}
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Lead])
}
