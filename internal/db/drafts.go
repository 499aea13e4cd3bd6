package db

import (
	"context"
	"time"
)

type Draft struct {
	Payload   string
	UpdatedAt time.Time
}

type UpsertDraftParams struct {
	Payload   string
	UpdatedAt time.Time
}

// The drafts table holds a single in-progress game checkpoint.
func (q *Queries) UpsertDraft(ctx context.Context, arg UpsertDraftParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO drafts (id, payload, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		arg.Payload, arg.UpdatedAt)
	return err
}

func (q *Queries) GetDraft(ctx context.Context) (Draft, error) {
	row := q.db.QueryRowContext(ctx, `SELECT payload, updated_at FROM drafts WHERE id = 1`)
	var d Draft
	err := row.Scan(&d.Payload, &d.UpdatedAt)
	return d, err
}

func (q *Queries) DeleteDraft(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = 1`)
	return err
}
