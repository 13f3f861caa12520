// Package entity implements the Entity Store (C1): typed CRUD over the
// org-scoped graph, structured property queries, and the async creation
// pipeline. Grounded on the teacher's pkg/services/session_service.go —
// same client.Tx / builder-chain / ent.IsNotFound idiom, generalized from
// AlertSession to Sibyl's Task/Epic/Project graph.
package entity

import "time"

// Type names a node kind in the org-scoped graph. Task is the entity the
// runtime manages most; Epic and Project are status-bearing containers.
type Type string

const (
	TypeTask    Type = "task"
	TypeEpic    Type = "epic"
	TypeProject Type = "project"
)

// Entity is the typed projection spec.md §3 describes: known fields round-
// trip as struct members, everything else folds into Metadata.
type Entity struct {
	ID             string
	Type           Type
	OrganizationID string
	Name           string
	CreatedBy      string
	ModifiedBy     string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Task/Epic/Project-specific projected fields. Zero value means "not
	// set for this Type" rather than "explicitly empty" — callers branch on
	// Type before reading these.
	ProjectID      string
	EpicID         string
	Status         string
	Priority       string
	Complexity     *int
	Feature        string
	Assignees      []string
	DueDate        *time.Time
	EstimatedHours *float64
	ActualHours    *float64
	Technologies   []string
	BranchName     string
	CommitSHAs     []string
	PRURL          string
	Learnings      string
	AssignedAgent  string
	ClaimedAt      *time.Time
	Description    string

	// Pending is true while an async-created entity's background job has
	// not yet finished writing edges and related-to links (§4.1).
	Pending bool

	Metadata map[string]any
}

// Relationship is an explicit edge the async creation pipeline writes
// alongside the node itself.
type Relationship struct {
	Kind   string // e.g. "BELONGS_TO", "RELATED_TO"
	TargetID string
}

// AutoLinkParams tunes the similarity-based RELATED_TO discovery step of
// create_async.
type AutoLinkParams struct {
	SimilarityThreshold float64 // default 0.75 per spec.md §4.1
	Limit               int     // default 5
}

// DefaultAutoLinkParams matches spec.md §4.1's create_async contract.
func DefaultAutoLinkParams() AutoLinkParams {
	return AutoLinkParams{SimilarityThreshold: 0.75, Limit: 5}
}

// Filters scopes list_by_type. Fields matching graph-native properties
// (ProjectID, EpicID, NoEpic) are pushed into the graph query; Tags is
// evaluated in-process against Metadata after the query runs (spec.md
// §4.1: "filters that live inside metadata JSON are evaluated in the host
// process").
type Filters struct {
	ProjectID       string
	EpicID          string
	NoEpic          bool
	Status          []string // comma-separated multi-value in the API, split by the caller
	Priority        string
	Complexity      *int
	Feature         string
	Tags            []string // match-any against Metadata["tags"]
	IncludeArchived bool
}

// EpicProgress is get_epic_progress's return shape.
type EpicProgress struct {
	EpicID         string
	TotalTasks     int
	DoneTasks      int
	InProgress     int
	Blocked        int
	PercentComplete float64
}

// ProjectSummary is get_project_summary's return shape (§6.7).
type ProjectSummary struct {
	ProjectID       string
	StatusCounts    map[string]int
	TotalTasks      int
	ProgressPct     float64
	ActionableTasks []TaskSummary
	CriticalTasks   []TaskSummary
	Epics           []EpicSummary
}

// TaskSummary is the curated projection returned inside ProjectSummary's
// actionable_tasks / critical_tasks lists (§6.7).
type TaskSummary struct {
	ID       string
	Name     string
	Status   string
	Priority string
}

// EpicSummary is the curated projection returned inside ProjectSummary's
// epics list (§6.7).
type EpicSummary struct {
	ID          string
	Name        string
	Status      string
	ProgressPct float64
	TotalTasks  int
}

// ScoredEntity pairs a search hit with its relevance score.
type ScoredEntity struct {
	Entity Entity
	Score  float64
}
