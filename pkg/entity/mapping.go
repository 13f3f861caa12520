package entity

import (
	"github.com/sibyl-run/sibyl/ent"
)

func taskToEntity(t *ent.Task) Entity {
	e := Entity{
		ID:             t.ID,
		Type:           TypeTask,
		OrganizationID: t.OrganizationID,
		Name:           t.Name,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		ProjectID:      t.ProjectID,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		Assignees:      t.Assignees,
		Technologies:   t.Technologies,
		CommitSHAs:     t.CommitShas,
		Metadata:       t.Metadata,
	}
	if t.EpicID != nil {
		e.EpicID = *t.EpicID
	}
	if t.Complexity != nil {
		e.Complexity = t.Complexity
	}
	if t.Feature != nil {
		e.Feature = *t.Feature
	}
	if t.DueDate != nil {
		e.DueDate = t.DueDate
	}
	if t.EstimatedHours != nil {
		e.EstimatedHours = t.EstimatedHours
	}
	if t.ActualHours != nil {
		e.ActualHours = t.ActualHours
	}
	if t.BranchName != nil {
		e.BranchName = *t.BranchName
	}
	if t.PrURL != nil {
		e.PRURL = *t.PrURL
	}
	if t.Learnings != nil {
		e.Learnings = *t.Learnings
	}
	if t.AssignedAgent != nil {
		e.AssignedAgent = *t.AssignedAgent
	}
	if t.ClaimedAt != nil {
		e.ClaimedAt = t.ClaimedAt
	}
	if t.CreatedBy != nil {
		e.CreatedBy = *t.CreatedBy
	}
	if t.ModifiedBy != nil {
		e.ModifiedBy = *t.ModifiedBy
	}
	return e
}

func epicToEntity(ep *ent.Epic) Entity {
	return Entity{
		ID:             ep.ID,
		Type:           TypeEpic,
		OrganizationID: ep.OrganizationID,
		Name:           ep.Name,
		CreatedAt:      ep.CreatedAt,
		UpdatedAt:      ep.UpdatedAt,
		ProjectID:      ep.ProjectID,
		Status:         string(ep.Status),
		Description:    ep.Description,
		Metadata:       ep.Metadata,
	}
}

func projectToEntity(p *ent.Project) Entity {
	return Entity{
		ID:             p.ID,
		Type:           TypeProject,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Status:         string(p.Status),
		Description:    p.Description,
		Metadata:       p.Metadata,
	}
}
