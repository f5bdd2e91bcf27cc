package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Fixed keys for persisted session state.
const (
	KeyScenarioSeen  = "cyber_scenarios_seen"
	KeyScenarioStats = "cyber_scenarios_stats"
	KeyEmailSeen     = "cyberrange_shown_emails"
	KeyEmailProgress = "cyberrange_session_progress"
)

// SessionStore is durable key/value state owned by one training session.
// A missing key reads as nil with no error.
type SessionStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// sqliteSessionStore implements SessionStore over the session_state table.
type sqliteSessionStore struct {
	db        *sql.DB
	namespace string
}

func (s *sqliteSessionStore) where(key string) *entsql.Predicate {
	return entsql.And(
		entsql.EQ("namespace", s.namespace),
		entsql.EQ("key", key),
	)
}

func (s *sqliteSessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	b := builder()
	query, args := b.Select("value").
		From(b.Table("session_state")).
		Where(s.where(key)).
		Query()

	var value []byte
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session state %q: %w", key, err)
	}
	return value, nil
}

func (s *sqliteSessionStore) Set(ctx context.Context, key string, value []byte) error {
	query, args := builder().Insert("session_state").
		Columns("namespace", "key", "value", "updated_at").
		Values(s.namespace, key, value, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("namespace", "key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set session state %q: %w", key, err)
	}
	return nil
}

func (s *sqliteSessionStore) Delete(ctx context.Context, key string) error {
	query, args := builder().Delete("session_state").Where(s.where(key)).Query()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session state %q: %w", key, err)
	}
	return nil
}

// Namespace scopes every key of inner under prefix, so several sessions
// can share one backend.
func Namespace(inner SessionStore, prefix string) SessionStore {
	if prefix == "" {
		return inner
	}
	return &namespaced{inner: inner, prefix: prefix + "/"}
}

type namespaced struct {
	inner  SessionStore
	prefix string
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}
