package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// TaskService sits between the HTTP handlers and the repository. It
// translates storage outcomes into the API error taxonomy; input
// validation has already happened at the HTTP layer.
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) CreateTask(
	ctx context.Context,
	title string,
	description *string,
	dueDate *string,
	status constants.TaskStatus,
) (*model.Task, error) {
	return s.repo.CreateTask(ctx, title, description, dueDate, status)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// UpdateTask applies a partial update and returns the full record as
// stored after the write.
func (s *TaskService) UpdateTask(
	ctx context.Context,
	id uint,
	changes repository.TaskChanges,
) (*model.Task, error) {
	found, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrTaskNotFound
	}

	return s.GetTask(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrTaskNotFound
	}
	return nil
}
