package sqlmodels

import "time"

// LearningEpisode is a row in the Job Runtime's create_learning_episode
// table (§4.1's get(id): "tries node-as-Entity, then node-as-Episode"). A
// write-once retrospective, never updated in place and never traversed as
// part of the Task/Epic/Project graph, which is why it lives here rather
// than as a fourth ent schema.
type LearningEpisode struct {
	ID        string
	OrgID     string
	TaskID    *string
	AgentID   *string
	Summary   string
	Tags      []string
	Metadata  map[string]any
	CreatedAt time.Time
}
