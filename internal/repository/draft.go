package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mleague-tracker/internal/db"

	"github.com/rs/zerolog"
)

// ErrNoDraft is returned when no in-progress game has been checkpointed.
var ErrNoDraft = errors.New("no draft saved")

// DraftRepository checkpoints a single in-progress game as an opaque
// JSON payload; the scoring core never sees drafts.
type DraftRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewDraftRepository(queries *db.Queries, logger zerolog.Logger) *DraftRepository {
	return &DraftRepository{queries: queries, logger: logger}
}

func (r *DraftRepository) Save(ctx context.Context, payload []byte) error {
	err := r.queries.UpsertDraft(ctx, db.UpsertDraftParams{
		Payload:   string(payload),
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	r.logger.Debug().Int("bytes", len(payload)).Msg("draft checkpointed")
	return nil
}

func (r *DraftRepository) Load(ctx context.Context) ([]byte, error) {
	draft, err := r.queries.GetDraft(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoDraft
	}
	if err != nil {
		return nil, err
	}
	return []byte(draft.Payload), nil
}

func (r *DraftRepository) Clear(ctx context.Context) error {
	return r.queries.DeleteDraft(ctx)
}
