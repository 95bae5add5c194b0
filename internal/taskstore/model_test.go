package taskstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("done").IsValid())
	assert.False(t, Status("open").IsValid())
}

func TestTask_Complete(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	completed := time.Date(2025, 3, 2, 17, 30, 0, 0, time.UTC)

	task := &Task{
		ID:        1,
		Title:     "Write report",
		Status:    StatusPending,
		CreatedAt: created,
	}

	task.Complete(completed)

	assert.Equal(t, StatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, completed, *task.CompletedAt)
	assert.Equal(t, created, task.CreatedAt, "CreatedAt must not change")
}

func TestTask_Complete_RestampsWithoutGuard(t *testing.T) {
	first := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	second := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	task := &Task{
		ID:        1,
		Title:     "Write report",
		Status:    StatusPending,
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	task.Complete(first)
	task.Complete(second)

	// The no-op guard lives in the store, not the entity.
	assert.Equal(t, StatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, second, *task.CompletedAt)
}

func TestTask_Validate(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	completed := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		task    Task
		wantErr string
	}{
		{
			name: "valid pending",
			task: Task{ID: 1, Title: "Buy milk", Status: StatusPending, CreatedAt: created},
		},
		{
			name: "valid completed",
			task: Task{ID: 2, Title: "Buy milk", Status: StatusCompleted, CreatedAt: created, CompletedAt: &completed},
		},
		{
			name: "empty title allowed",
			task: Task{ID: 3, Status: StatusPending, CreatedAt: created},
		},
		{
			name:    "zero id",
			task:    Task{ID: 0, Status: StatusPending, CreatedAt: created},
			wantErr: "id must be positive",
		},
		{
			name:    "negative id",
			task:    Task{ID: -4, Status: StatusPending, CreatedAt: created},
			wantErr: "id must be positive",
		},
		{
			name:    "invalid status",
			task:    Task{ID: 1, Status: Status("done"), CreatedAt: created},
			wantErr: "status is invalid",
		},
		{
			name:    "missing created_at",
			task:    Task{ID: 1, Status: StatusPending},
			wantErr: "created_at is required",
		},
		{
			name:    "completed without completed_at",
			task:    Task{ID: 1, Status: StatusCompleted, CreatedAt: created},
			wantErr: "has no completed_at",
		},
		{
			name:    "pending with completed_at",
			task:    Task{ID: 1, Status: StatusPending, CreatedAt: created, CompletedAt: &completed},
			wantErr: "has completed_at set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
