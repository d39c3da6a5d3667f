package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/xavierca1/flow-nodes/internal/entity"
)

const uniqueViolation = "23505"

type ExecutionRepository struct {
	DB     *sql.DB
	Logger *zap.Logger
}

func NewExecutionRepository(db *sql.DB, logger *zap.Logger) *ExecutionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecutionRepository{DB: db, Logger: logger}
}

func (r *ExecutionRepository) Create(ctx context.Context, e *entity.Execution) error {
	query := `
		INSERT INTO node_executions (id, node, operation, contact_id, status, updated_items, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		e.ID,
		e.Node,
		e.Operation,
		e.ContactID,
		e.Status,
		pq.Array(e.Updated),
		nullString(e.Error),
		e.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return entity.ErrExecutionAlreadyExists
		}
		r.Logger.Error("erro ao gravar execução", zap.String("execution_id", e.ID), zap.Error(err))
		return err
	}

	return nil
}

func (r *ExecutionRepository) FindByID(ctx context.Context, id string) (*entity.Execution, error) {
	query := `
		SELECT id, node, operation, contact_id, status, updated_items, error, created_at
		FROM node_executions
		WHERE id = $1
	`

	var e entity.Execution
	var updated pq.StringArray
	var execErr sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.Node,
		&e.Operation,
		&e.ContactID,
		&e.Status,
		&updated,
		&execErr,
		&e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrExecutionNotFound
	}
	if err != nil {
		return nil, err
	}

	e.Updated = []string(updated)
	e.Error = execErr.String
	return &e, nil
}

func (r *ExecutionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM node_executions WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
