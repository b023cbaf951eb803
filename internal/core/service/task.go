package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	"taskapp/internal/core/util"
	"taskapp/pkg/config"
)

type TaskService struct {
	repo   port.TaskRepository
	cfg    *config.AppConfig
	logger zerolog.Logger
}

func NewTaskService(repo port.TaskRepository, cfg *config.AppConfig, logger zerolog.Logger) *TaskService {
	return &TaskService{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// Create stores a task after checking the title is non-empty. The check
// runs on the raw value; trimming happens at the handler layer, so a
// whitespace-only title passes here. Description is unchecked and the
// owner is never verified to exist.
func (s *TaskService) Create(ctx context.Context, id, ownerID, title, description string) (domain.Task, error) {
	if err := util.ValidateNonEmpty("title", title); err != nil {
		return domain.Task{}, err
	}

	task := domain.NewTask(id, ownerID, title, description)
	s.repo.AddTask(ctx, task)

	s.logger.Info().
		Str("event", "task_created").
		Str("task_id", id).
		Str("owner_id", ownerID).
		Send()

	return task, nil
}

// Complete marks a task done. Completing an already-completed task is not
// an error; the unchanged task comes back and a warning is logged.
func (s *TaskService) Complete(ctx context.Context, id string) (domain.Task, error) {
	task, err := s.repo.GetTask(ctx, id)

	if err != nil {
		return domain.Task{}, err
	}

	if task.IsCompleted {
		s.logger.Warn().
			Str("event", "task_already_completed").
			Str("task_id", id).
			Send()

		return task, nil
	}

	completed := true
	updated, err := s.repo.UpdateTask(ctx, id, domain.TaskPatch{IsCompleted: &completed})

	if err != nil {
		return domain.Task{}, err
	}

	s.logger.Info().
		Str("event", "task_completed").
		Str("task_id", id).
		Send()

	return updated, nil
}

// ListForOwner returns the first effective-page-size tasks for the owner.
// The page argument is accepted but not applied; every call returns the
// first page.
func (s *TaskService) ListForOwner(ctx context.Context, ownerID string, page int, pageSize *int) []domain.Task {
	_ = page

	tasks := s.repo.ListTasksForOwner(ctx, ownerID)
	size := s.cfg.EffectivePageSize(pageSize)

	if size < 0 {
		size = 0
	}

	if len(tasks) > size {
		tasks = tasks[:size]
	}

	return tasks
}

// Delete asks the repository for a soft delete when the flag allows it,
// but the store deletes physically either way. A missing task is logged
// and swallowed, so deletes are idempotent from the caller's side.
func (s *TaskService) Delete(ctx context.Context, id string) {
	err := s.repo.DeleteTask(ctx, id, !s.cfg.EnableSoftDelete)

	if errors.Is(err, domain.ErrTaskNotFound) {
		s.logger.Warn().
			Str("event", "task_delete_missing").
			Str("task_id", id).
			Send()

		return
	}

	s.logger.Info().
		Str("event", "task_deleted").
		Str("task_id", id).
		Send()
}
