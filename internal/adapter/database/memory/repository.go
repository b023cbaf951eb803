package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"taskapp/internal/core/domain"
)

// Repository is the in-memory store backing both the user and task ports.
// Maps keep the values, order slices keep insertion order so scans and
// listings are deterministic. The single-caller design needs no locking;
// the mutexes are the extension point for serving concurrent HTTP traffic.
type Repository struct {
	usersMu   sync.RWMutex
	users     map[string]domain.User
	userOrder []string

	tasksMu   sync.RWMutex
	tasks     map[string]domain.Task
	taskOrder []string
}

func NewRepository() *Repository {
	return &Repository{
		users: make(map[string]domain.User),
		tasks: make(map[string]domain.Task),
	}
}

func (r *Repository) AddUser(ctx context.Context, user domain.User) {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()

	if _, exists := r.users[user.ID]; !exists {
		r.userOrder = append(r.userOrder, user.ID)
	}

	r.users[user.ID] = user
}

func (r *Repository) GetUser(ctx context.Context, id string) (domain.User, error) {
	r.usersMu.RLock()
	defer r.usersMu.RUnlock()

	user, ok := r.users[id]

	if !ok {
		return domain.User{}, fmt.Errorf("user %q: %w", id, domain.ErrUserNotFound)
	}

	return user, nil
}

func (r *Repository) FindUserByEmail(ctx context.Context, email string) (domain.User, bool) {
	r.usersMu.RLock()
	defer r.usersMu.RUnlock()

	for _, id := range r.userOrder {
		user := r.users[id]

		if strings.EqualFold(user.Email, email) {
			return user, true
		}
	}

	return domain.User{}, false
}

func (r *Repository) AddTask(ctx context.Context, task domain.Task) {
	r.tasksMu.Lock()
	defer r.tasksMu.Unlock()

	if _, exists := r.tasks[task.ID]; !exists {
		r.taskOrder = append(r.taskOrder, task.ID)
	}

	r.tasks[task.ID] = task
}

func (r *Repository) GetTask(ctx context.Context, id string) (domain.Task, error) {
	r.tasksMu.RLock()
	defer r.tasksMu.RUnlock()

	task, ok := r.tasks[id]

	if !ok {
		return domain.Task{}, fmt.Errorf("task %q: %w", id, domain.ErrTaskNotFound)
	}

	return task, nil
}

func (r *Repository) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, error) {
	r.tasksMu.Lock()
	defer r.tasksMu.Unlock()

	task, ok := r.tasks[id]

	if !ok {
		return domain.Task{}, fmt.Errorf("task %q: %w", id, domain.ErrTaskNotFound)
	}

	updated := patch.Apply(task)
	r.tasks[id] = updated

	return updated, nil
}

func (r *Repository) ListTasksForOwner(ctx context.Context, ownerID string) []domain.Task {
	r.tasksMu.RLock()
	defer r.tasksMu.RUnlock()

	tasks := make([]domain.Task, 0)

	// Soft-deleted rows would be filtered here if soft delete were ever
	// applied; today nothing sets DeletedAt, so everything comes back.
	for _, id := range r.taskOrder {
		task := r.tasks[id]

		if task.OwnerID == ownerID {
			tasks = append(tasks, task)
		}
	}

	return tasks
}

func (r *Repository) DeleteTask(ctx context.Context, id string, hard bool) error {
	r.tasksMu.Lock()
	defer r.tasksMu.Unlock()

	// A soft delete would set DeletedAt instead of removing the row.
	// For now both paths remove it, regardless of hard. Missing ids are
	// a silent no-op.
	if _, ok := r.tasks[id]; !ok {
		return nil
	}

	delete(r.tasks, id)

	for i, tid := range r.taskOrder {
		if tid == id {
			r.taskOrder = append(r.taskOrder[:i], r.taskOrder[i+1:]...)
			break
		}
	}

	return nil
}
