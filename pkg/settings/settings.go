// Package settings implements the supplemented org-scoped settings service
// named in SPEC_FULL.md §3 (grounded on original_source's services/settings.py):
// a small key/value store, distinct from the relational system_setting
// table of spec.md §6.2, backing runtime-tunable values — the budget
// default override and the sandbox reconcile-interval override — without a
// redeploy. Grounded on pkg/messagebus's raw-SQL-over-database/sql idiom,
// since this is a thin table with no graph projection.
package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

// Keys used by the runtime-tunable overrides SPEC_FULL.md §3 names.
const (
	KeyBudgetDefaultUSD       = "budget_default_usd"
	KeySandboxReconcileSecond = "sandbox_reconcile_interval_seconds"
)

// Service is the org-scoped settings store.
type Service struct {
	db *sql.DB
}

// New constructs a Service over a raw SQL connection.
func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// Get returns the raw JSON value for (orgID, key), and whether it was set.
func (s *Service) Get(ctx context.Context, orgID, key string) (json.RawMessage, bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE organization_id = $1 AND key = $2`, orgID, key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, sibylerr.Wrap(sibylerr.Transient, "get setting failed", err)
	}
	return raw, true, nil
}

// Set upserts a value for (orgID, key). value is marshaled to JSON.
func (s *Service) Set(ctx context.Context, orgID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "marshal setting value failed", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings (organization_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (organization_id, key) DO UPDATE SET
			value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		orgID, key, raw, time.Now())
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "set setting failed", err)
	}
	return nil
}

// Delete removes a setting. Idempotent.
func (s *Service) Delete(ctx context.Context, orgID, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM settings WHERE organization_id = $1 AND key = $2`, orgID, key)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "delete setting failed", err)
	}
	return nil
}

// GetFloat is a typed convenience accessor returning a float64 setting, or
// fallback if unset or unparseable.
func (s *Service) GetFloat(ctx context.Context, orgID, key string, fallback float64) float64 {
	raw, ok, err := s.Get(ctx, orgID, key)
	if err != nil || !ok {
		return fallback
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}

// GetDuration reads an integer-seconds setting and returns it as a
// time.Duration, or fallback if unset or unparseable.
func (s *Service) GetDuration(ctx context.Context, orgID, key string, fallback time.Duration) time.Duration {
	raw, ok, err := s.Get(ctx, orgID, key)
	if err != nil || !ok {
		return fallback
	}
	var seconds int64
	if err := json.Unmarshal(raw, &seconds); err != nil {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

// ListForOrg returns every setting key/value pair for orgID.
func (s *Service) ListForOrg(ctx context.Context, orgID string) (map[string]json.RawMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM settings WHERE organization_id = $1`, orgID)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "list settings failed", err)
	}
	defer rows.Close()

	out := make(map[string]json.RawMessage)
	for rows.Next() {
		var key string
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, sibylerr.Wrap(sibylerr.Transient, "scan setting failed", err)
		}
		out[key] = raw
	}
	if err := rows.Err(); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "rows iteration failed", err)
	}
	return out, nil
}
