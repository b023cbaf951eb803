package domain

import (
	"time"
)

// Task ids are caller supplied, typically "<owner>:<title>", so a second
// task with the same owner and title overwrites the first.
//
// DeletedAt is in the schema for soft delete but no code path sets it;
// deletes are physical regardless of configuration.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	IsCompleted bool
	DeletedAt   *time.Time
	CreatedAt   time.Time
}

func NewTask(id, ownerID, title, description string) Task {
	return Task{
		ID:          id,
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		IsCompleted: false,
		CreatedAt:   time.Now().UTC(),
	}
}

func (t Task) IsDeleted() bool {
	return t.DeletedAt != nil
}

// TaskPatch enumerates the fields a partial update may touch. A nil pointer
// leaves the stored value alone; any subset may be set.
type TaskPatch struct {
	IsCompleted *bool
	Description *string
	DeletedAt   *time.Time
}

// Apply returns a copy of task with the set fields overridden.
func (p TaskPatch) Apply(task Task) Task {
	if p.IsCompleted != nil {
		task.IsCompleted = *p.IsCompleted
	}

	if p.Description != nil {
		task.Description = *p.Description
	}

	if p.DeletedAt != nil {
		task.DeletedAt = p.DeletedAt
	}

	return task
}
