package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const table = "request_cache"

var sqBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var ErrBadQuery = errors.New("bad query")

// DB is the subset of *pgxpool.Pool used by PgxStore.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PgxStore is a Store backed by the request_cache table, so cached results
// are shared by every process using the database.
type PgxStore struct {
	db  DB
	now func() time.Time
}

var _ Store = (*PgxStore)(nil)

func NewPgxStore(db DB) *PgxStore {
	return &PgxStore{db: db, now: time.Now}
}

func (s *PgxStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	query, args, err := sqBuilder.
		Select("value").
		From(table).
		Where(squirrel.Eq{"key": key}).
		Where(squirrel.Gt{"expires_at": s.now()}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBadQuery, err)
	}

	var value []byte
	if err := s.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached result: %w", err)
	}
	return value, true, nil
}

func (s *PgxStore) Set(ctx context.Context, key string, value json.RawMessage, ttl time.Duration) error {
	query, args, err := sqBuilder.
		Insert(table).
		Columns("key", "value", "expires_at").
		Values(key, []byte(value), s.now().Add(ttl)).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadQuery, err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to store cached result: %w", err)
	}
	return nil
}

func (s *PgxStore) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := sqBuilder.
		Delete(table).
		Where(squirrel.LtOrEq{"expires_at": s.now()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadQuery, err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired results: %w", err)
	}
	return tag.RowsAffected(), nil
}
