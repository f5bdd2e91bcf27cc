package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type moduleRepo struct {
	db *sql.DB
}

func (r *moduleRepo) Complete(ctx context.Context, sessionID, moduleID string) (bool, error) {
	query, args := builder().Insert("module_progress").
		Columns("session_id", "module_id", "completed_at").
		Values(sessionID, moduleID, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("session_id", "module_id"),
			entsql.DoNothing(),
		).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("complete module %q: %w", moduleID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("complete module %q: %w", moduleID, err)
	}
	return n == 1, nil
}

func (r *moduleRepo) Completed(ctx context.Context, sessionID string) ([]string, error) {
	b := builder()
	query, args := b.Select("module_id").
		From(b.Table("module_progress")).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("completed_at", "rowid").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query completed modules: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan module id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
