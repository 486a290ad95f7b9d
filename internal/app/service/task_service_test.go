package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"zephyrtask/internal/adapter/store"
	appservice "zephyrtask/internal/app/service"
	"zephyrtask/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) (*appservice.TaskService, *store.FileStore) {
	t.Helper()

	fileStore := store.NewFileStore(filepath.Join(t.TempDir(), "tasks.json"))
	return appservice.NewTaskService(fileStore), fileStore
}

func TestTaskService_AddThenListContainsNormalizedTask(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, domain.TimeText("2023-06-15T09:00:00"), "  Morning meeting ", 5)
	require.NoError(t, err)
	assert.Equal(t, "Morning meeting", added.Event)
	assert.False(t, added.Completed)

	tasks, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, added, tasks[0])
}

func TestTaskService_AddRejectsDuplicateIdentity(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.TimeText("2023-06-15T09:00:00"), "Morning meeting", 5)
	require.NoError(t, err)

	_, err = svc.Add(ctx, domain.TimeText("2023-06-15T09:00:00"), "Morning meeting", 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateTask)

	// The stored value is still the one from the first call.
	tasks, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 5, tasks[0].Value)
}

func TestTaskService_AddAllowsSharedTimeOrEventAlone(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.TimeText("2023-06-15T09:00:00"), "Morning meeting", 5)
	require.NoError(t, err)

	// Same time, different event.
	_, err = svc.Add(ctx, domain.TimeText("2023-06-15T09:00:00"), "Review", 2)
	require.NoError(t, err)

	// Same event, different time.
	_, err = svc.Add(ctx, domain.TimeText("2023-06-22T09:00:00"), "Morning meeting", 5)
	require.NoError(t, err)

	tasks, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestTaskService_UpdateChangesOnlyValue(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.TimeText("2023-06-16T12:00:00"), "Lunch", 3)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, "Lunch")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.TimeText("2023-06-16T12:00:00"), "Lunch", 7)
	require.NoError(t, err)

	assert.Equal(t, 7, updated.Value)
	// Completion state set before the update survives it.
	assert.True(t, updated.Completed)
}

func TestTaskService_UpdateUnknownIdentityFails(t *testing.T) {
	svc, _ := newTaskService(t)

	_, err := svc.Update(context.Background(), domain.TimeText("2023-06-16T12:00:00"), "Lunch", 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_UpdateRevalidatesInput(t *testing.T) {
	svc, _ := newTaskService(t)

	_, err := svc.Update(context.Background(), domain.TimeText("garbage"), "Lunch", 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTime)
}

func TestTaskService_RemoveDeletesExactlyOne(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.TimeText("2023-06-15T09:00:00"), "Morning meeting", 5)
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.TimeText("2023-06-16T12:00:00"), "Lunch", 3)
	require.NoError(t, err)

	removed, err := svc.Remove(ctx, domain.TimeText("2023-06-15T09:00:00"), "Morning meeting")
	require.NoError(t, err)
	assert.Equal(t, "Morning meeting", removed.Event)

	tasks, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Lunch", tasks[0].Event)
}

func TestTaskService_RemoveUnknownIdentityLeavesCollectionIntact(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.TimeText("2023-06-16T12:00:00"), "Lunch", 3)
	require.NoError(t, err)

	_, err = svc.Remove(ctx, domain.TimeText("2023-06-16T12:00:00"), "Dinner")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	tasks, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestTaskService_RemoveDoesNotRevalidateRawTime(t *testing.T) {
	svc, fileStore := newTaskService(t)
	ctx := context.Background()

	// Seed a record with unparseable time text directly, bypassing add.
	require.NoError(t, fileStore.Save(ctx, []domain.Task{{Time: "whenever", Event: "odd one", Value: 1}}))

	removed, err := svc.Remove(ctx, domain.TimeText("whenever"), "odd one")
	require.NoError(t, err)
	assert.Equal(t, "whenever", removed.Time)
}

func TestTaskService_RemoveAcceptsStructuredTime(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	stamp := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)
	_, err := svc.Add(ctx, domain.TimeStamp(stamp), "Morning meeting", 5)
	require.NoError(t, err)

	_, err = svc.Remove(ctx, domain.TimeStamp(stamp), "Morning meeting")
	require.NoError(t, err)
}

func TestTaskService_CompleteMarksFirstMatchInStorageOrder(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.TimeText("2023-06-20T09:00:00"), "Gym", 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.TimeText("2023-06-10T09:00:00"), "Gym", 4)
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, "Gym")
	require.NoError(t, err)

	// Event lookup ignores time: the earliest stored record wins, not the
	// earliest scheduled one.
	assert.Equal(t, "2023-06-20T09:00:00", completed.Time)
	assert.True(t, completed.Completed)

	tasks, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	assert.False(t, tasks[0].Completed)
	assert.True(t, tasks[1].Completed)
}

func TestTaskService_CompleteUnknownEventFails(t *testing.T) {
	svc, _ := newTaskService(t)

	_, err := svc.Complete(context.Background(), "Gym")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_ListSortsByTimeAscending(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.TimeText("2023-06-16T12:00:00"), "Lunch", 3)
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.TimeText("2023-06-15T09:00:00"), "Morning meeting", 5)
	require.NoError(t, err)

	tasks, err := svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Morning meeting", tasks[0].Event)
	assert.Equal(t, "Lunch", tasks[1].Event)

	for i := 1; i < len(tasks); i++ {
		assert.LessOrEqual(t, tasks[i-1].Time, tasks[i].Time)
	}
}

func TestTaskService_ListSortsByValueDescending(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.TimeText("2023-06-15T09:00:00"), "Morning meeting", 5)
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.TimeText("2023-06-16T12:00:00"), "Lunch", 3)
	require.NoError(t, err)

	tasks, err := svc.List(ctx, domain.SortByValue)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Morning meeting", tasks[0].Event)
	assert.Equal(t, "Lunch", tasks[1].Event)
}

func TestTaskService_ListDoesNotReorderStorage(t *testing.T) {
	svc, fileStore := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.TimeText("2023-06-16T12:00:00"), "Lunch", 3)
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.TimeText("2023-06-15T09:00:00"), "Morning meeting", 5)
	require.NoError(t, err)

	_, err = svc.List(ctx, domain.SortByTime)
	require.NoError(t, err)

	result, err := fileStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", result.Tasks[0].Event)
	assert.Equal(t, "Morning meeting", result.Tasks[1].Event)
}

func TestTaskService_ListRejectsUnknownSortKey(t *testing.T) {
	svc, _ := newTaskService(t)

	_, err := svc.List(context.Background(), "priority")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)
}

func TestTaskService_ValueTiesKeepInsertionOrder(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.TimeText("2023-06-17T09:00:00"), "first", 3)
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.TimeText("2023-06-15T09:00:00"), "second", 3)
	require.NoError(t, err)

	tasks, err := svc.List(ctx, domain.SortByValue)
	require.NoError(t, err)
	assert.Equal(t, "first", tasks[0].Event)
	assert.Equal(t, "second", tasks[1].Event)
}
