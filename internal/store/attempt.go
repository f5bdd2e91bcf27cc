package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

type attemptRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var attemptColumns = []string{
	"id", "sequence", "session_id", "instance_id", "template_id", "kind",
	"difficulty", "selected_action", "is_correct", "score_change",
	"time_taken_seconds", "created_at",
}

func (r *attemptRepo) Append(ctx context.Context, a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Sequence == 0 {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		a.Sequence = seqNum
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}

	query, args := builder().Insert("attempts").
		Columns(attemptColumns...).
		Values(
			a.ID,
			a.Sequence,
			a.SessionID,
			a.InstanceID,
			a.TemplateID,
			a.Kind,
			a.Difficulty,
			a.SelectedAction,
			a.Correct,
			a.ScoreChange,
			a.TimeTakenSecs,
			a.Timestamp.UnixMilli(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, sessionID string, opts QueryOpts) ([]Attempt, error) {
	b := builder()
	sel := b.Select(attemptColumns...).From(b.Table("attempts"))
	where := entsql.EQ("session_id", sessionID)
	if p := eventFilter(opts, "created_at"); p != nil {
		where = entsql.And(where, p)
	}
	sel.Where(where).OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var ts int64
		err := rows.Scan(
			&a.ID, &a.Sequence, &a.SessionID, &a.InstanceID, &a.TemplateID, &a.Kind,
			&a.Difficulty, &a.SelectedAction, &a.Correct, &a.ScoreChange,
			&a.TimeTakenSecs, &ts,
		)
		if err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Timestamp = time.UnixMilli(ts)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attemptRepo) Totals(ctx context.Context, sessionID string) (Totals, error) {
	b := builder()
	query, args := b.Select(
		"COALESCE(SUM(score_change), 0)",
		"COUNT(*)",
		"COALESCE(SUM(is_correct), 0)",
	).
		From(b.Table("attempts")).
		Where(entsql.EQ("session_id", sessionID)).
		Query()

	var t Totals
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&t.Score, &t.Attempted, &t.Correct); err != nil {
		return Totals{}, fmt.Errorf("attempt totals: %w", err)
	}
	return t, nil
}
