// Package metaorch implements the Meta Orchestrator (C4): a project-level
// scheduler running one TaskOrchestrator at a time (sequential), up to
// max_concurrent at once (parallel), or priority-ordered (priority), all
// gated on a cost budget. Grounded on the teacher's pkg/queue worker-pool
// dispatch loop (claim-under-lock, bounded concurrency, admission check
// before dispatch), retargeted from "SQL job rows" to "TaskOrchestrator
// records".
package metaorch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sibyl-run/sibyl/ent"
	"github.com/sibyl-run/sibyl/ent/metaorchestratorrecord"
	"github.com/sibyl-run/sibyl/ent/task"
	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
	"github.com/sibyl-run/sibyl/pkg/taskorch"
)

// priorityRank orders task.Priority values for the PRIORITY strategy, ties
// broken by queue position (§4.4: "not automatically re-sorted when tasks
// mutate" — rank is computed once, at dequeue time).
var priorityRank = map[task.Priority]int{
	task.PriorityCritical: 0,
	task.PriorityHigh:     1,
	task.PriorityMedium:   2,
	task.PriorityLow:      3,
}

// Scheduler implements the Meta Orchestrator (C4).
type Scheduler struct {
	client    *ent.Client
	bus       bus.Bus
	taskorch  *taskorch.Orchestrator
	alertFunc func(ctx context.Context, metaID string, spentUSD, budgetUSD float64)
}

// New constructs a Scheduler. alertFunc is a best-effort budget-threshold
// notifier; it may be nil.
func New(client *ent.Client, b bus.Bus, to *taskorch.Orchestrator, alertFunc func(ctx context.Context, metaID string, spentUSD, budgetUSD float64)) *Scheduler {
	return &Scheduler{client: client, bus: b, taskorch: to, alertFunc: alertFunc}
}

func lockKey(metaID string) string {
	return fmt.Sprintf("sibyl:lock:meta:%s", metaID)
}

// withLock serializes scheduling passes for one Meta Orchestrator across
// processes — two concurrent passes admitting against the same budget is
// exactly the race invariant #5/P4 forbids.
func (s *Scheduler) withLock(ctx context.Context, metaID string, fn func(ctx context.Context) error) error {
	key := lockKey(metaID)
	token := uuid.New().String()

	acquired := false
	for attempt := 0; attempt < 10; attempt++ {
		_, found, err := s.bus.Get(ctx, key)
		if err != nil {
			return sibylerr.Wrap(sibylerr.Transient, "meta lock check failed", err)
		}
		if !found {
			if err := s.bus.SetEx(ctx, key, token, 10); err != nil {
				return sibylerr.Wrap(sibylerr.Transient, "meta lock acquire failed", err)
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
		return sibylerr.Wrap(sibylerr.Conflict, fmt.Sprintf("meta orchestrator %s is already scheduling", metaID), nil)
	}
	defer s.bus.Del(ctx, key)

	return fn(ctx)
}

// CreateInput describes a new MetaOrchestratorRecord.
type CreateInput struct {
	OrgID     string
	ProjectID string
}

// Create inserts an idle MetaOrchestratorRecord for a project.
func (s *Scheduler) Create(ctx context.Context, in CreateInput) (*ent.MetaOrchestratorRecord, error) {
	rec, err := s.client.MetaOrchestratorRecord.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(in.OrgID).
		SetProjectID(in.ProjectID).
		Save(ctx)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "create meta orchestrator record failed", err)
	}
	return rec, nil
}

func (s *Scheduler) get(ctx context.Context, metaID string) (*ent.MetaOrchestratorRecord, error) {
	rec, err := s.client.MetaOrchestratorRecord.Get(ctx, metaID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, sibylerr.Wrap(sibylerr.NotFound, "meta orchestrator record not found", err)
		}
		return nil, sibylerr.Wrap(sibylerr.Transient, "get meta orchestrator record failed", err)
	}
	return rec, nil
}

// QueueTasks appends task ids to the task_queue (§4.4 queue_task(s)).
func (s *Scheduler) QueueTasks(ctx context.Context, metaID string, taskIDs ...string) error {
	return s.withLock(ctx, metaID, func(ctx context.Context) error {
		rec, err := s.get(ctx, metaID)
		if err != nil {
			return err
		}
		queue := append(append([]string{}, rec.TaskQueue...), taskIDs...)
		if err := s.client.MetaOrchestratorRecord.UpdateOneID(metaID).
			SetTaskQueue(queue).
			Exec(ctx); err != nil {
			return sibylerr.Wrap(sibylerr.Transient, "queue tasks failed", err)
		}
		return nil
	})
}

// Start flips the scheduler to running and runs an initial scheduling pass.
func (s *Scheduler) Start(ctx context.Context, metaID string) error {
	if err := s.client.MetaOrchestratorRecord.UpdateOneID(metaID).
		SetStatus(metaorchestratorrecord.StatusRunning).
		ClearPauseReason().
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "start meta orchestrator failed", err)
	}
	return s.schedule(ctx, metaID)
}

// Pause stops scheduling new TaskOrchestrators; in-flight ones are left
// running (pause is a dispatch gate, not a cascade, unlike the Task
// Orchestrator's own pause).
func (s *Scheduler) Pause(ctx context.Context, metaID, reason string) error {
	if err := s.client.MetaOrchestratorRecord.UpdateOneID(metaID).
		SetStatus(metaorchestratorrecord.StatusPaused).
		SetPauseReason(reason).
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "pause meta orchestrator failed", err)
	}
	return nil
}

// Resume flips back to running and re-enters the scheduling pass.
func (s *Scheduler) Resume(ctx context.Context, metaID string) error {
	if err := s.client.MetaOrchestratorRecord.UpdateOneID(metaID).
		SetStatus(metaorchestratorrecord.StatusRunning).
		ClearPauseReason().
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "resume meta orchestrator failed", err)
	}
	return s.schedule(ctx, metaID)
}

// SetStrategy switches the scheduling strategy; maxConcurrent is ignored
// unless strategy is PARALLEL (zero leaves the current value unchanged).
func (s *Scheduler) SetStrategy(ctx context.Context, metaID string, strategy metaorchestratorrecord.Strategy, maxConcurrent int) error {
	upd := s.client.MetaOrchestratorRecord.UpdateOneID(metaID).SetStrategy(strategy)
	if maxConcurrent > 0 {
		upd = upd.SetMaxConcurrent(maxConcurrent)
	}
	if err := upd.Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "set strategy failed", err)
	}
	return nil
}

// SetBudget updates the budget and alert threshold.
func (s *Scheduler) SetBudget(ctx context.Context, metaID string, budgetUSD, alertThreshold float64) error {
	if err := s.client.MetaOrchestratorRecord.UpdateOneID(metaID).
		SetBudgetUsd(budgetUSD).
		SetCostAlertThreshold(alertThreshold).
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "set budget failed", err)
	}
	return nil
}

// GetStatus returns the current record for display (§4.4 get_status()).
func (s *Scheduler) GetStatus(ctx context.Context, metaID string) (*ent.MetaOrchestratorRecord, error) {
	return s.get(ctx, metaID)
}

// OnTaskComplete is the taskorch.MetaNotifier callback: removes the
// finished orchestrator from active_orchestrators, accumulates its cost and
// rework metrics, and re-enters the scheduling pass (§4.4).
func (s *Scheduler) OnTaskComplete(ctx context.Context, metaID, taskOrchID string, success bool, costUSD float64, reworkCount int) error {
	return s.withLock(ctx, metaID, func(ctx context.Context) error {
		rec, err := s.get(ctx, metaID)
		if err != nil {
			return err
		}

		active := make([]string, 0, len(rec.ActiveOrchestrators))
		for _, id := range rec.ActiveOrchestrators {
			if id != taskOrchID {
				active = append(active, id)
			}
		}

		tasksCompleted := rec.TasksCompleted
		tasksFailed := rec.TasksFailed
		if success {
			tasksCompleted++
		} else {
			tasksFailed++
		}

		upd := s.client.MetaOrchestratorRecord.UpdateOneID(metaID).
			SetActiveOrchestrators(active).
			SetSpentUsd(rec.SpentUsd + costUSD).
			SetTasksCompleted(tasksCompleted).
			SetTasksFailed(tasksFailed).
			SetTotalReworkCycles(rec.TotalReworkCycles + reworkCount)

		if len(active) == 0 && len(rec.TaskQueue) == 0 {
			upd = upd.SetStatus(metaorchestratorrecord.StatusIdle)
		}

		if err := upd.Exec(ctx); err != nil {
			return sibylerr.Wrap(sibylerr.Transient, "persist task completion failed", err)
		}

		return s.scheduleLocked(ctx, metaID)
	})
}

// schedule acquires the scheduling lock and runs one pass.
func (s *Scheduler) schedule(ctx context.Context, metaID string) error {
	return s.withLock(ctx, metaID, func(ctx context.Context) error {
		return s.scheduleLocked(ctx, metaID)
	})
}

// scheduleLocked runs one admission pass under the caller's lock: dequeues
// as many tasks as the strategy and budget allow, spawning a
// TaskOrchestrator for each. §4.4.
func (s *Scheduler) scheduleLocked(ctx context.Context, metaID string) error {
	rec, err := s.get(ctx, metaID)
	if err != nil {
		return err
	}
	if rec.Status != metaorchestratorrecord.StatusRunning {
		return nil
	}
	if len(rec.TaskQueue) == 0 {
		return nil
	}

	queue := rec.TaskQueue
	if rec.Strategy == metaorchestratorrecord.StrategyPriority {
		queue = s.sortByPriority(ctx, queue)
	}

	slots := s.availableSlots(rec)
	if slots <= 0 {
		return nil
	}

	admitted := make([]string, 0, slots)
	remaining := make([]string, 0, len(queue))
	active := append([]string{}, rec.ActiveOrchestrators...)

	for _, taskID := range queue {
		if len(admitted) >= slots {
			remaining = append(remaining, taskID)
			continue
		}

		// Invariant #5 / P4: re-check budget before every single spawn, not
		// once per pass — spent_usd can change mid-pass via OnTaskComplete
		// racing in from another orchestrator, though the scheduling lock
		// makes that externally impossible; the per-spawn check is what the
		// spec requires regardless.
		if rec.SpentUsd >= rec.BudgetUsd {
			if err := s.pauseForBudget(ctx, metaID); err != nil {
				return err
			}
			remaining = append(remaining, taskID)
			continue
		}

		orch, err := s.taskorch.Create(ctx, taskorch.CreateInput{
			OrgID:              rec.OrganizationID,
			TaskID:             taskID,
			MetaOrchestratorID: metaID,
		})
		if err != nil {
			remaining = append(remaining, taskID)
			continue
		}
		if err := s.taskorch.Start(ctx, orch.ID); err != nil {
			remaining = append(remaining, taskID)
			continue
		}

		admitted = append(admitted, orch.ID)
		active = append(active, orch.ID)
	}

	if err := s.client.MetaOrchestratorRecord.UpdateOneID(metaID).
		SetTaskQueue(remaining).
		SetActiveOrchestrators(active).
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "persist scheduling pass failed", err)
	}

	if rec.BudgetUsd > 0 && rec.SpentUsd >= rec.BudgetUsd*rec.CostAlertThreshold && s.alertFunc != nil {
		s.alertFunc(ctx, metaID, rec.SpentUsd, rec.BudgetUsd)
	}

	return nil
}

func (s *Scheduler) pauseForBudget(ctx context.Context, metaID string) error {
	if err := s.client.MetaOrchestratorRecord.UpdateOneID(metaID).
		SetStatus(metaorchestratorrecord.StatusPaused).
		SetPauseReason("Budget exhausted").
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "pause on budget exhaustion failed", err)
	}
	return nil
}

// availableSlots returns how many new TaskOrchestrators this pass may
// spawn: SEQUENTIAL allows exactly one active at a time; PARALLEL allows
// min(max_concurrent - |active|, |queue|); PRIORITY behaves like SEQUENTIAL
// (one at a time, priority-ordered).
func (s *Scheduler) availableSlots(rec *ent.MetaOrchestratorRecord) int {
	switch rec.Strategy {
	case metaorchestratorrecord.StrategyParallel:
		slots := rec.MaxConcurrent - len(rec.ActiveOrchestrators)
		if slots < 0 {
			slots = 0
		}
		if slots > len(rec.TaskQueue) {
			slots = len(rec.TaskQueue)
		}
		return slots
	default: // sequential, priority
		if len(rec.ActiveOrchestrators) > 0 {
			return 0
		}
		return 1
	}
}

// sortByPriority orders taskIDs by their Task.priority, ties kept in their
// existing (queue-position) order — a stable sort, per §4.4's "not
// automatically re-sorted" note: this happens once, at dequeue time.
func (s *Scheduler) sortByPriority(ctx context.Context, taskIDs []string) []string {
	type ranked struct {
		id   string
		rank int
	}
	out := make([]ranked, len(taskIDs))
	for i, id := range taskIDs {
		rank := priorityRank[task.PriorityMedium]
		if t, err := s.client.Task.Get(ctx, id); err == nil {
			if r, ok := priorityRank[t.Priority]; ok {
				rank = r
			}
		}
		out[i] = ranked{id: id, rank: rank}
	}
	// stable insertion sort keeps queue-position ties in place, avoiding a
	// sort.Slice's non-stable-by-default comparator for a small N.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].rank < out[j-1].rank; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	sorted := make([]string, len(out))
	for i, r := range out {
		sorted[i] = r.id
	}
	return sorted
}
