package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversion_records (
	id          BIGSERIAL PRIMARY KEY,
	request_id  TEXT NOT NULL,
	session_id  TEXT NOT NULL DEFAULT '',
	direction   TEXT NOT NULL,
	source_text TEXT NOT NULL,
	result_text TEXT NOT NULL,
	succeeded   BOOLEAN NOT NULL,
	reason      TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
)`

type pgRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) Repo {
	return &pgRepo{db: db}
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (r *pgRepo) Create(ctx context.Context, rec Record) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO conversion_records
			(request_id, session_id, direction, source_text, result_text, succeeded, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, rec.RequestID, rec.SessionID, rec.Direction, rec.SourceText, rec.ResultText, rec.Succeeded, rec.Reason, rec.CreatedAt).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return 0, fmt.Errorf("insert record (%s): %w", pqErr.Code.Name(), err)
		}
		return 0, err
	}
	return id, nil
}

func (r *pgRepo) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, request_id, session_id, direction, source_text, result_text, succeeded, reason, created_at
		FROM conversion_records
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID,
			&rec.RequestID,
			&rec.SessionID,
			&rec.Direction,
			&rec.SourceText,
			&rec.ResultText,
			&rec.Succeeded,
			&rec.Reason,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// memoryRepo — когда DATABASE_URL не задан
type memoryRepo struct {
	mu      sync.Mutex
	records []Record
	limit   int
}

// NewMemoryRepo хранит последние limit записей; 0 — без ограничения
func NewMemoryRepo(limit int) Repo {
	return &memoryRepo{limit: limit}
}

func (r *memoryRepo) Create(_ context.Context, rec Record) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var last int64
	if n := len(r.records); n > 0 {
		last = r.records[n-1].ID
	}
	rec.ID = last + 1
	r.records = append(r.records, rec)
	if r.limit > 0 && len(r.records) > r.limit {
		r.records = r.records[len(r.records)-r.limit:]
	}
	return rec.ID, nil
}

func (r *memoryRepo) ListRecent(_ context.Context, limit int) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}
