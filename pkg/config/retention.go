package config

import "time"

// RetentionConfig controls backup archive retention and scheduling (§6.6,
// §4.8's run_scheduled_backups/cleanup_old_backups).
type RetentionConfig struct {
	// BackupRetentionDays is how many days of backup archives to keep
	// before cleanup_old_backups deletes them.
	BackupRetentionDays int `yaml:"backup_retention_days"`

	// ScheduleCron is the default cron expression run_scheduled_backups
	// uses per org when backup_settings has no row yet.
	ScheduleCron string `yaml:"schedule_cron"`

	// ApprovalSweepInterval is how often expire_stale() runs.
	ApprovalSweepInterval time.Duration `yaml:"approval_sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		BackupRetentionDays:   30,
		ScheduleCron:          "0 3 * * *",
		ApprovalSweepInterval: 5 * time.Minute,
	}
}
