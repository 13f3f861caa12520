package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL,
// backing the best-effort hybrid search over learnings/summary text that
// the Entity Store's search() delegates to the graph engine for (§4.1).
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_learnings_gin
		ON tasks USING gin(to_tsvector('english', COALESCE(learnings, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create tasks learnings GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_approval_records_summary_gin
		ON approval_records USING gin(to_tsvector('english', summary))`)
	if err != nil {
		return fmt.Errorf("failed to create approval_records summary GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates DB-level backstops for invariants that
// are primarily enforced by application-level locks (spawn:task:<task_id>,
// entity:<org>:<id>) but are cheap to also assert at the storage layer.
//
// Invariant #3 / P2: at most one AgentRecord per task with a non-terminal
// status. The application lock prevents the race; this index prevents a bug
// from silently violating it anyway.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_agent_records_task_nonterminal
		ON agent_records (task_id)
		WHERE task_id IS NOT NULL
		  AND status NOT IN ('completed', 'failed', 'terminated')`)
	if err != nil {
		return fmt.Errorf("failed to create agent_records nonterminal unique index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_task_orchestrator_records_task
		ON task_orchestrator_records (task_id)`)
	if err != nil {
		return fmt.Errorf("failed to create task_orchestrator_records unique index: %w", err)
	}

	return nil
}
