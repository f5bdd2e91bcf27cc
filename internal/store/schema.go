package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	sessionStateColumns = []*schema.Column{
		{Name: "namespace", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	// SessionStateTable holds the key/value state of every session.
	SessionStateTable = &schema.Table{
		Name:       "session_state",
		Columns:    sessionStateColumns,
		PrimaryKey: []*schema.Column{sessionStateColumns[0], sessionStateColumns[1]},
	}

	attemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "instance_id", Type: field.TypeString},
		{Name: "template_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "selected_action", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "score_change", Type: field.TypeInt},
		{Name: "time_taken_seconds", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeInt64},
	}
	// AttemptsTable is the append-only answer ledger.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    attemptsColumns,
		PrimaryKey: []*schema.Column{attemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempts_session",
				Columns: []*schema.Column{attemptsColumns[2], attemptsColumns[1]},
			},
		},
	}

	moduleProgressColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeInt64},
	}
	// ModuleProgressTable records completed learning modules.
	ModuleProgressTable = &schema.Table{
		Name:       "module_progress",
		Columns:    moduleProgressColumns,
		PrimaryKey: []*schema.Column{moduleProgressColumns[0], moduleProgressColumns[1]},
	}

	llmEventTableColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LLMRequestEventsTable logs every provider call.
	LLMRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    llmEventTableColumns,
		PrimaryKey: []*schema.Column{llmEventTableColumns[0]},
	}

	// Tables lists every table created on open.
	Tables = []*schema.Table{
		SessionStateTable,
		AttemptsTable,
		ModuleProgressTable,
		LLMRequestEventsTable,
	}
)

// migrate creates missing tables, columns and indexes with ent's
// migration engine.
func migrate(ctx context.Context, db *sql.DB) error {
	m, err := schema.NewMigrate(entsql.OpenDB(dialect.SQLite, db))
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
