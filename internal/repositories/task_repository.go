package repository

import (
	"context"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskChanges carries the fields of a partial update. Nil means the
// field was not supplied and the stored value must be left untouched.
type TaskChanges struct {
	Title       *string
	Description *string
	DueDate     *string
	Status      *constants.TaskStatus
}

func (c TaskChanges) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if c.Title != nil {
		fields["title"] = *c.Title
	}
	if c.Description != nil {
		fields["description"] = *c.Description
	}
	if c.DueDate != nil {
		fields["due_date"] = *c.DueDate
	}
	if c.Status != nil {
		fields["status"] = *c.Status
	}
	return fields
}

func (r *TaskRepository) CreateTask(
	ctx context.Context,
	title string,
	description *string,
	dueDate *string,
	status constants.TaskStatus,
) (*model.Task, error) {
	task := &model.Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      status,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns every task, most recently created first. An empty table
// yields an empty slice, never nil.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := r.db.WithContext(ctx).Order("id desc").Find(&tasks).Error
	return tasks, err
}

// Update applies the supplied fields to the task with the given id. It
// returns false when no such row exists. An existing row with zero
// supplied fields is a successful no-op. The existence check and the
// write share one transaction.
func (r *TaskRepository) Update(ctx context.Context, id uint, changes TaskChanges) (bool, error) {
	found := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		found = true

		fields := changes.fields()
		if len(fields) == 0 {
			return nil
		}

		return tx.Model(&model.Task{}).Where("id = ?", id).Updates(fields).Error
	})

	return found, err
}

// Delete removes the task with the given id, reporting success by
// affected-row count rather than a prior existence check.
func (r *TaskRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
