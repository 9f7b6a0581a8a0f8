package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func strPtr(s string) *string {
	return &s
}

func statusPtr(s constants.TaskStatus) *constants.TaskStatus {
	return &s
}

func TestTaskRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	first, err := repo.CreateTask(ctx, "first", nil, nil, constants.StatusPending)
	require.NoError(t, err)
	second, err := repo.CreateTask(ctx, "second", nil, nil, constants.StatusPending)
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestTaskRepository_CreatePersistsAllFields(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, "write report", strPtr("quarterly numbers"), strPtr("2026-09-01"), constants.StatusInProgress)
	require.NoError(t, err)

	fetched, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "write report", fetched.Title)
	require.NotNil(t, fetched.Description)
	assert.Equal(t, "quarterly numbers", *fetched.Description)
	require.NotNil(t, fetched.DueDate)
	assert.Equal(t, "2026-09-01", *fetched.DueDate)
	assert.Equal(t, constants.StatusInProgress, fetched.Status)
}

func TestTaskRepository_FindByID_NotFound(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskRepository_ListDescendingAfterDeletes(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	var ids []uint
	for _, title := range []string{"a", "b", "c", "d"} {
		task, err := repo.CreateTask(ctx, title, nil, nil, constants.StatusPending)
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	deleted, err := repo.Delete(ctx, ids[1])
	require.NoError(t, err)
	require.True(t, deleted)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	for i := 1; i < len(tasks); i++ {
		assert.Greater(t, tasks[i-1].ID, tasks[i].ID)
	}
}

func TestTaskRepository_ListEmptyIsNotNil(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	tasks, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskRepository_UpdatePartialLeavesOtherFields(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, "walk dog", strPtr("around the block"), strPtr("2026-08-30"), constants.StatusPending)
	require.NoError(t, err)

	found, err := repo.Update(ctx, created.ID, repository.TaskChanges{
		Status: statusPtr(constants.StatusCompleted),
	})
	require.NoError(t, err)
	require.True(t, found)

	fetched, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, fetched.Status)
	assert.Equal(t, "walk dog", fetched.Title)
	require.NotNil(t, fetched.Description)
	assert.Equal(t, "around the block", *fetched.Description)
	require.NotNil(t, fetched.DueDate)
	assert.Equal(t, "2026-08-30", *fetched.DueDate)
}

func TestTaskRepository_UpdateEmptyStringOverwrites(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, "tidy up", strPtr("the garage"), nil, constants.StatusPending)
	require.NoError(t, err)

	found, err := repo.Update(ctx, created.ID, repository.TaskChanges{
		Description: strPtr(""),
	})
	require.NoError(t, err)
	require.True(t, found)

	fetched, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Description)
	assert.Equal(t, "", *fetched.Description)
}

func TestTaskRepository_UpdateMissingRow(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))

	found, err := repo.Update(context.Background(), 99, repository.TaskChanges{
		Title: strPtr("ghost"),
	})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTaskRepository_UpdateNoFieldsIsNoOpSuccess(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, "unchanged", nil, nil, constants.StatusPending)
	require.NoError(t, err)

	found, err := repo.Update(ctx, created.ID, repository.TaskChanges{})
	require.NoError(t, err)
	assert.True(t, found)

	fetched, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "unchanged", fetched.Title)
	assert.Equal(t, constants.StatusPending, fetched.Status)

	found, err = repo.Update(ctx, created.ID+1, repository.TaskChanges{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTaskRepository_DeleteReportsAffectedRows(t *testing.T) {
	repo := repository.NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, "short lived", nil, nil, constants.StatusPending)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
