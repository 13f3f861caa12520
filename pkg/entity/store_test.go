package entity_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/entity"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
	testdb "github.com/sibyl-run/sibyl/test/database"
)

func newTestBus(t *testing.T) bus.Bus {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return bus.NewFromClient(client)
}

func TestStore_CreateSyncAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := entity.NewStore(client.Client, newTestBus(t), nil)

	orgID := "org-1"
	projectID := uuid.New().String()
	_, err := store.CreateSync(ctx, entity.Entity{
		Type:           entity.TypeProject,
		OrganizationID: orgID,
		ID:             projectID,
		Name:           "Test Project",
	})
	require.NoError(t, err)

	taskID := uuid.New().String()
	id, err := store.CreateSync(ctx, entity.Entity{
		Type:           entity.TypeTask,
		OrganizationID: orgID,
		ID:             taskID,
		ProjectID:      projectID,
		Name:           "Fix the bug",
		Status:         "todo",
		Priority:       "high",
		Metadata:       map[string]any{"source": "api"},
	})
	require.NoError(t, err)
	assert.Equal(t, taskID, id)

	got, err := store.Get(ctx, orgID, taskID)
	require.NoError(t, err)
	assert.Equal(t, "Fix the bug", got.Name)
	assert.Equal(t, "todo", got.Status)
	assert.Equal(t, "high", got.Priority)
	assert.Equal(t, "api", got.Metadata["source"])
}

func TestStore_GetNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := entity.NewStore(client.Client, newTestBus(t), nil)

	_, err := store.Get(ctx, "org-1", uuid.New().String())
	require.Error(t, err)
	assert.True(t, sibylerr.Is(err, sibylerr.NotFound))
}

func TestStore_UpdateMergesMetadataAndReplacesKnownFields(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := entity.NewStore(client.Client, newTestBus(t), nil)

	orgID := "org-1"
	projectID := uuid.New().String()
	_, err := store.CreateSync(ctx, entity.Entity{
		Type: entity.TypeProject, OrganizationID: orgID, ID: projectID, Name: "P",
	})
	require.NoError(t, err)

	taskID := uuid.New().String()
	_, err = store.CreateSync(ctx, entity.Entity{
		Type: entity.TypeTask, OrganizationID: orgID, ID: taskID, ProjectID: projectID,
		Name: "Task", Status: "todo", Metadata: map[string]any{"a": "1"},
	})
	require.NoError(t, err)

	updated, err := store.Update(ctx, orgID, taskID, map[string]any{
		"status":    "doing",
		"custom_key": "custom_value",
	})
	require.NoError(t, err)
	assert.Equal(t, "doing", updated.Status)
	assert.Equal(t, "custom_value", updated.Metadata["custom_key"])
	assert.Equal(t, "1", updated.Metadata["a"])
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := entity.NewStore(client.Client, newTestBus(t), nil)

	orgID := "org-1"
	projectID := uuid.New().String()
	_, err := store.CreateSync(ctx, entity.Entity{
		Type: entity.TypeProject, OrganizationID: orgID, ID: projectID, Name: "P",
	})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, orgID, projectID))
	require.NoError(t, store.Delete(ctx, orgID, projectID))
}

func TestStore_GetProjectSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := entity.NewStore(client.Client, newTestBus(t), nil)

	orgID := "org-1"
	projectID := uuid.New().String()
	_, err := store.CreateSync(ctx, entity.Entity{
		Type: entity.TypeProject, OrganizationID: orgID, ID: projectID, Name: "P",
	})
	require.NoError(t, err)

	statuses := []string{"doing", "done", "blocked", "todo"}
	for _, status := range statuses {
		_, err := store.CreateSync(ctx, entity.Entity{
			Type: entity.TypeTask, OrganizationID: orgID, ID: uuid.New().String(),
			ProjectID: projectID, Name: "Task " + status, Status: status, Priority: "medium",
		})
		require.NoError(t, err)
	}

	summary, err := store.GetProjectSummary(ctx, orgID, projectID, 10, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalTasks)
	assert.Equal(t, 1, summary.StatusCounts["done"])
	assert.Equal(t, float64(25), summary.ProgressPct)
	assert.NotEmpty(t, summary.ActionableTasks)
}
