package port

import (
	"context"

	"taskapp/internal/core/domain"
)

type TaskRepository interface {
	AddTask(ctx context.Context, task domain.Task)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, error)
	// ListTasksForOwner returns the owner's tasks in insertion order,
	// including any that carry a deleted timestamp.
	ListTasksForOwner(ctx context.Context, ownerID string) []domain.Task
	// DeleteTask removes the task from storage regardless of hard; a
	// missing id is a silent no-op.
	DeleteTask(ctx context.Context, id string, hard bool) error
}

type TaskService interface {
	Create(ctx context.Context, id, ownerID, title, description string) (domain.Task, error)
	Complete(ctx context.Context, id string) (domain.Task, error)
	ListForOwner(ctx context.Context, ownerID string, page int, pageSize *int) []domain.Task
	Delete(ctx context.Context, id string)
}
