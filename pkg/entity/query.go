package entity

import (
	"context"
	"strings"

	"github.com/sibyl-run/sibyl/ent"
	"github.com/sibyl-run/sibyl/ent/epic"
	"github.com/sibyl-run/sibyl/ent/task"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

// ListByType runs a structured query (spec.md §4.1). Only Task is queryable
// with the full filter set today — Epic/Project lists are served by
// GetProjectSummary's epics slice and direct Get.
func (s *Store) ListByType(ctx context.Context, orgID string, typ Type, filters Filters, limit, offset int) ([]Entity, error) {
	if typ != TypeTask {
		return nil, sibylerr.Wrap(sibylerr.Permanent, "list_by_type only supports task", nil)
	}

	q := s.client.Task.Query().Where(task.OrganizationID(orgID))

	if filters.ProjectID != "" {
		q = q.Where(task.ProjectID(filters.ProjectID))
	}
	if filters.NoEpic {
		q = q.Where(task.EpicIDIsNil())
	} else if filters.EpicID != "" {
		q = q.Where(task.EpicIDEQ(filters.EpicID))
	}
	if len(filters.Status) > 0 {
		statuses := make([]task.Status, 0, len(filters.Status))
		for _, v := range filters.Status {
			statuses = append(statuses, task.Status(v))
		}
		q = q.Where(task.StatusIn(statuses...))
	} else if !filters.IncludeArchived {
		q = q.Where(task.StatusNEQ(task.StatusArchived))
	}
	if filters.Priority != "" {
		q = q.Where(task.PriorityEQ(task.Priority(filters.Priority)))
	}
	if filters.Complexity != nil {
		q = q.Where(task.ComplexityEQ(*filters.Complexity))
	}
	if filters.Feature != "" {
		q = q.Where(task.FeatureEQ(filters.Feature))
	}

	if limit <= 0 {
		limit = 50
	}
	tasks, err := q.Limit(limit).Offset(offset).Order(ent.Desc(task.FieldUpdatedAt)).All(ctx)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "list_by_type query failed", err)
	}

	out := make([]Entity, 0, len(tasks))
	for _, t := range tasks {
		e := taskToEntity(t)
		if len(filters.Tags) > 0 && !matchesAnyTag(e, filters.Tags) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func matchesAnyTag(e Entity, tags []string) bool {
	raw, ok := e.Metadata["tags"]
	if !ok {
		return false
	}
	existing, ok := raw.([]any)
	if !ok {
		return false
	}
	want := map[string]bool{}
	for _, t := range tags {
		want[strings.ToLower(t)] = true
	}
	for _, v := range existing {
		if s, ok := v.(string); ok && want[strings.ToLower(s)] {
			return true
		}
	}
	return false
}

// GetTasksForEpic returns every Task belonging to epicID, optionally
// filtered to a single status.
func (s *Store) GetTasksForEpic(ctx context.Context, orgID, epicID string, status string) ([]Entity, error) {
	q := s.client.Task.Query().Where(task.OrganizationID(orgID), task.EpicIDEQ(epicID))
	if status != "" {
		q = q.Where(task.StatusEQ(task.Status(status)))
	}
	tasks, err := q.Order(ent.Asc(task.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "get_tasks_for_epic query failed", err)
	}
	out := make([]Entity, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToEntity(t))
	}
	return out, nil
}

// GetEpicProgress computes the done/in-progress/blocked rollup for an Epic.
func (s *Store) GetEpicProgress(ctx context.Context, orgID, epicID string) (EpicProgress, error) {
	tasks, err := s.GetTasksForEpic(ctx, orgID, epicID, "")
	if err != nil {
		return EpicProgress{}, err
	}

	progress := EpicProgress{EpicID: epicID, TotalTasks: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case "done":
			progress.DoneTasks++
		case "doing", "review":
			progress.InProgress++
		case "blocked":
			progress.Blocked++
		}
	}
	if progress.TotalTasks > 0 {
		progress.PercentComplete = 100 * float64(progress.DoneTasks) / float64(progress.TotalTasks)
	}
	return progress, nil
}

// GetProjectSummary builds the curated rollup of §6.7: status counts,
// actionable tasks (doing > blocked > review > recent, up to
// actionableLimit), critical tasks (priority in {critical,high} or name
// contains "CRITICAL", up to criticalLimit), and per-epic progress (up to
// epicLimit).
func (s *Store) GetProjectSummary(ctx context.Context, orgID, projectID string, actionableLimit, criticalLimit, epicLimit int) (ProjectSummary, error) {
	tasks, err := s.client.Task.Query().
		Where(task.OrganizationID(orgID), task.ProjectID(projectID)).
		Order(ent.Desc(task.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return ProjectSummary{}, sibylerr.Wrap(sibylerr.Transient, "get_project_summary task query failed", err)
	}

	summary := ProjectSummary{
		ProjectID:    projectID,
		StatusCounts: map[string]int{},
		TotalTasks:   len(tasks),
	}

	statusRank := map[string]int{"doing": 0, "blocked": 1, "review": 2}
	type ranked struct {
		t    *ent.Task
		rank int
	}
	actionable := make([]ranked, 0)
	done := 0

	for _, t := range tasks {
		summary.StatusCounts[string(t.Status)]++
		if t.Status == task.StatusDone {
			done++
		}
		if rank, ok := statusRank[string(t.Status)]; ok {
			actionable = append(actionable, ranked{t, rank})
		}
		isCritical := t.Priority == task.PriorityCritical || t.Priority == task.PriorityHigh ||
			strings.Contains(strings.ToUpper(t.Name), "CRITICAL")
		if isCritical && len(summary.CriticalTasks) < criticalLimit {
			summary.CriticalTasks = append(summary.CriticalTasks, taskSummaryOf(t))
		}
	}
	if summary.TotalTasks > 0 {
		summary.ProgressPct = 100 * float64(done) / float64(summary.TotalTasks)
	}

	for i := 0; i < len(actionable); i++ {
		for j := i + 1; j < len(actionable); j++ {
			if actionable[j].rank < actionable[i].rank {
				actionable[i], actionable[j] = actionable[j], actionable[i]
			}
		}
	}
	for _, r := range actionable {
		if len(summary.ActionableTasks) >= actionableLimit {
			break
		}
		summary.ActionableTasks = append(summary.ActionableTasks, taskSummaryOf(r.t))
	}

	epics, err := s.client.Epic.Query().
		Where(epic.OrganizationID(orgID), epic.ProjectID(projectID)).
		Limit(epicLimit).
		Order(ent.Desc(epic.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return ProjectSummary{}, sibylerr.Wrap(sibylerr.Transient, "get_project_summary epic query failed", err)
	}
	for _, ep := range epics {
		progress, err := s.GetEpicProgress(ctx, orgID, ep.ID)
		if err != nil {
			return ProjectSummary{}, err
		}
		summary.Epics = append(summary.Epics, EpicSummary{
			ID:          ep.ID,
			Name:        ep.Name,
			Status:      string(ep.Status),
			ProgressPct: progress.PercentComplete,
			TotalTasks:  progress.TotalTasks,
		})
	}

	return summary, nil
}

func taskSummaryOf(t *ent.Task) TaskSummary {
	return TaskSummary{ID: t.ID, Name: t.Name, Status: string(t.Status), Priority: string(t.Priority)}
}
