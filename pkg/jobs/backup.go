package jobs

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	cronlib "github.com/robfig/cron/v3"

	"github.com/sibyl-run/sibyl/pkg/database"
	"github.com/sibyl-run/sibyl/pkg/entity"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

// archiveVersion is the backup format version written into metadata.json
// and the backups.archive_version column. Bump it, never overwrite old
// archives' recorded version, if the archive layout changes.
const archiveVersion = "2.0"

// scheduleCronParser parses standard 5-field cron expressions, grounded on
// the same robfig/cron/v3 usage pattern as other_examples' go-claw
// scheduler.
var scheduleCronParser = cronlib.NewParser(
	cronlib.Minute | cronlib.Hour | cronlib.Dom | cronlib.Month | cronlib.Dow,
)

// BackupConfig configures where archives land and how pg_dump connects to
// the same database the rest of the process uses.
type BackupConfig struct {
	DB              database.Config
	ArchiveDir      string
	DefaultRetentionDays int
}

// BackupService implements run_backup/cleanup_old_backups/run_scheduled_
// backups: a tar.gz archive per org containing a relational dump, a graph
// snapshot, and a metadata manifest (§4.8, §6.2's backups/backup_settings
// tables).
type BackupService struct {
	db     *sql.DB
	store  *entity.Store
	cfg    BackupConfig
	logger *slog.Logger
}

// NewBackupService constructs a BackupService.
func NewBackupService(db *sql.DB, store *entity.Store, cfg BackupConfig) *BackupService {
	if cfg.DefaultRetentionDays <= 0 {
		cfg.DefaultRetentionDays = 30
	}
	return &BackupService{
		db:     db,
		store:  store,
		cfg:    cfg,
		logger: slog.Default().With("component", "backup-service"),
	}
}

// Create builds one archive for orgID: postgres.sql (a full pg_dump of the
// shared relational tables — these tables are multi-tenant and have no
// per-org schema to scope the dump to), graph.json (the org's Task/Epic/
// Project graph, read back through the Entity Store so the archive never
// depends on ent's internal schema), and metadata.json (counts, archive
// version, and a sha256 per file). Returns the backup record's ID.
func (b *BackupService) Create(ctx context.Context, orgID string) (string, error) {
	pgDump, err := b.dumpPostgres(ctx)
	if err != nil {
		return "", err
	}
	graphJSON, graphEntities, graphRelationships, err := b.snapshotGraph(ctx, orgID)
	if err != nil {
		return "", err
	}

	shas := map[string]string{
		"postgres.sql": sha256Hex(pgDump),
		"graph.json":   sha256Hex(graphJSON),
	}

	meta := backupMetadata{
		ArchiveVersion: archiveVersion,
		CreatedAt:      time.Now().UTC(),
		OrgID:          orgID,
		GraphEntities:  graphEntities,
		GraphRelationships: graphRelationships,
		FileSHAs:       shas,
	}
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", sibylerr.Wrap(sibylerr.Permanent, "marshal backup metadata failed", err)
	}

	archivePath, err := b.writeArchive(orgID, meta.CreatedAt, map[string][]byte{
		"metadata.json": metaJSON,
		"postgres.sql":  pgDump,
		"graph.json":    graphJSON,
	})
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	shasJSON, err := json.Marshal(shas)
	if err != nil {
		return "", sibylerr.Wrap(sibylerr.Permanent, "marshal backup file shas failed", err)
	}
	_, err = b.db.ExecContext(ctx, `
		INSERT INTO backups (id, organization_id, archive_version, pg_entities, graph_entities, graph_relationships, file_path, file_shas, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, orgID, archiveVersion, 0, graphEntities, graphRelationships, archivePath, shasJSON, meta.CreatedAt)
	if err != nil {
		return "", sibylerr.Wrap(sibylerr.Transient, "insert backup record failed", err)
	}

	b.logger.Info("backup created", "org_id", orgID, "backup_id", id, "path", archivePath)
	return id, nil
}

type backupMetadata struct {
	ArchiveVersion     string            `json:"archive_version"`
	CreatedAt          time.Time         `json:"created_at"`
	OrgID              string            `json:"org_id"`
	GraphEntities      int               `json:"graph_entities"`
	GraphRelationships int               `json:"graph_relationships"`
	FileSHAs           map[string]string `json:"file_shas"`
}

// dumpPostgres shells out to pg_dump, grounded on the teacher's own
// NewClient DSN-building pattern (pkg/database/client.go), since pg_dump
// and database/sql's pgx driver take the same connection parameters.
func (b *BackupService) dumpPostgres(ctx context.Context) ([]byte, error) {
	cfg := b.cfg.DB
	args := []string{
		"-h", cfg.Host,
		"-p", fmt.Sprintf("%d", cfg.Port),
		"-U", cfg.User,
		"-d", cfg.Database,
		"--no-owner",
		"--no-privileges",
	}
	cmd := exec.CommandContext(ctx, "pg_dump", args...)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+cfg.Password)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "pg_dump failed: "+stderr.String(), err)
	}
	return out.Bytes(), nil
}

// snapshotGraph reads every Task for orgID through the Entity Store and
// serializes them, deriving BELONGS_TO relationship counts from each
// task's EpicID/ProjectID links. ListByType only supports Task today (the
// Entity Store exposes Epic/Project enumeration only through GetProject
// Summary's bounded slices, not a full list query), so the graph snapshot
// covers tasks; Epic/Project rows are still reachable from the postgres.sql
// dump's projection tables.
func (b *BackupService) snapshotGraph(ctx context.Context, orgID string) ([]byte, int, int, error) {
	items, err := b.store.ListByType(ctx, orgID, entity.TypeTask, entity.Filters{IncludeArchived: true}, 10000, 0)
	if err != nil {
		return nil, 0, 0, sibylerr.Wrap(sibylerr.Transient, "list tasks for backup failed", err)
	}

	relationships := 0
	for _, e := range items {
		if e.ProjectID != "" {
			relationships++
		}
		if e.EpicID != "" {
			relationships++
		}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, 0, 0, sibylerr.Wrap(sibylerr.Permanent, "marshal graph snapshot failed", err)
	}
	return raw, len(items), relationships, nil
}

// writeArchive tars and gzips files into cfg.ArchiveDir/<orgID>/<ts>-<id>.tar.gz.
func (b *BackupService) writeArchive(orgID string, ts time.Time, files map[string][]byte) (string, error) {
	dir := filepath.Join(b.cfg.ArchiveDir, orgID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", sibylerr.Wrap(sibylerr.Transient, "create backup dir failed", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.tar.gz", ts.Format("20060102T150405Z"), uuid.New().String()[:8]))

	f, err := os.Create(path)
	if err != nil {
		return "", sibylerr.Wrap(sibylerr.Transient, "create backup archive file failed", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	// metadata.json first so a partial read of a truncated archive still
	// surfaces the manifest.
	for _, name := range []string{"metadata.json", "postgres.sql", "graph.json"} {
		content := files[name]
		hdr := &tar.Header{
			Name: name,
			Mode: 0o644,
			Size: int64(len(content)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return "", sibylerr.Wrap(sibylerr.Transient, "write archive header failed", err)
		}
		if _, err := tw.Write(content); err != nil {
			return "", sibylerr.Wrap(sibylerr.Transient, "write archive content failed", err)
		}
	}

	if err := tw.Close(); err != nil {
		return "", sibylerr.Wrap(sibylerr.Transient, "close tar writer failed", err)
	}
	if err := gz.Close(); err != nil {
		return "", sibylerr.Wrap(sibylerr.Transient, "close gzip writer failed", err)
	}
	return path, nil
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Cleanup deletes archives past their retention window. orgID empty scans
// every org that has backup_settings or existing backups.
func (b *BackupService) Cleanup(ctx context.Context, orgID string) error {
	orgs := []string{orgID}
	if orgID == "" {
		var err error
		orgs, err = b.allBackedUpOrgs(ctx)
		if err != nil {
			return err
		}
	}
	for _, org := range orgs {
		if err := b.cleanupOrg(ctx, org); err != nil {
			b.logger.Error("cleanup failed for org", "org_id", org, "error", err)
		}
	}
	return nil
}

func (b *BackupService) allBackedUpOrgs(ctx context.Context) ([]string, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT DISTINCT organization_id FROM backups`)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "list backed-up orgs failed", err)
	}
	defer rows.Close()

	var orgs []string
	for rows.Next() {
		var o string
		if err := rows.Scan(&o); err != nil {
			return nil, sibylerr.Wrap(sibylerr.Transient, "scan backed-up org failed", err)
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (b *BackupService) retentionDays(ctx context.Context, orgID string) int {
	var days int
	err := b.db.QueryRowContext(ctx, `SELECT retention_days FROM backup_settings WHERE organization_id = $1`, orgID).Scan(&days)
	if err != nil || days <= 0 {
		return b.cfg.DefaultRetentionDays
	}
	return days
}

func (b *BackupService) cleanupOrg(ctx context.Context, orgID string) error {
	cutoff := time.Now().Add(-time.Duration(b.retentionDays(ctx, orgID)) * 24 * time.Hour)

	rows, err := b.db.QueryContext(ctx, `SELECT id, file_path FROM backups WHERE organization_id = $1 AND created_at < $2`, orgID, cutoff)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "list expired backups failed", err)
	}
	type expired struct{ id, path string }
	var victims []expired
	for rows.Next() {
		var e expired
		if err := rows.Scan(&e.id, &e.path); err != nil {
			rows.Close()
			return sibylerr.Wrap(sibylerr.Transient, "scan expired backup failed", err)
		}
		victims = append(victims, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "iterate expired backups failed", err)
	}

	for _, v := range victims {
		if err := os.Remove(v.path); err != nil && !os.IsNotExist(err) {
			b.logger.Warn("failed to remove expired backup file", "path", v.path, "error", err)
		}
		if _, err := b.db.ExecContext(ctx, `DELETE FROM backups WHERE id = $1`, v.id); err != nil {
			b.logger.Warn("failed to delete expired backup record", "id", v.id, "error", err)
		}
	}
	return nil
}

// RunScheduled evaluates every enabled org's schedule_cron and fires a
// backup for any org whose next scheduled run has already elapsed.
func (b *BackupService) RunScheduled(ctx context.Context) error {
	rows, err := b.db.QueryContext(ctx, `SELECT organization_id, schedule_cron FROM backup_settings WHERE enabled = true`)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "list backup schedules failed", err)
	}
	type sched struct{ orgID, expr string }
	var due []sched
	for rows.Next() {
		var s sched
		if err := rows.Scan(&s.orgID, &s.expr); err != nil {
			rows.Close()
			return sibylerr.Wrap(sibylerr.Transient, "scan backup schedule failed", err)
		}
		due = append(due, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "iterate backup schedules failed", err)
	}

	now := time.Now()
	for _, s := range due {
		schedule, err := scheduleCronParser.Parse(s.expr)
		if err != nil {
			b.logger.Warn("invalid backup schedule_cron", "org_id", s.orgID, "expr", s.expr, "error", err)
			continue
		}
		last, err := b.lastBackupTime(ctx, s.orgID)
		if err != nil {
			b.logger.Warn("read last backup time failed", "org_id", s.orgID, "error", err)
			continue
		}
		if !schedule.Next(last).Before(now) {
			continue
		}
		if _, err := b.Create(ctx, s.orgID); err != nil {
			b.logger.Error("scheduled backup failed", "org_id", s.orgID, "error", err)
		}
	}
	return nil
}

func (b *BackupService) lastBackupTime(ctx context.Context, orgID string) (time.Time, error) {
	var t sql.NullTime
	err := b.db.QueryRowContext(ctx, `SELECT MAX(created_at) FROM backups WHERE organization_id = $1`, orgID).Scan(&t)
	if err != nil {
		return time.Time{}, sibylerr.Wrap(sibylerr.Transient, "read last backup time failed", err)
	}
	if !t.Valid {
		return time.Time{}, nil
	}
	return t.Time, nil
}
