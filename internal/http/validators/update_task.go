package validators

import (
	"strings"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// ValidateUpdateTaskRequest checks whichever fields the payload
// supplies and folds them into a TaskChanges. An empty payload is
// rejected; a supplied title must be non-blank; a supplied status must
// be in the enum. Description and due date accept any string, empty
// included.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) (repository.TaskChanges, error) {
	var changes repository.TaskChanges

	if r.Empty() {
		return changes, apperrors.ErrNoData
	}

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			return changes, apperrors.ErrTitleBlank
		}
		changes.Title = r.Title
	}

	if r.Status != nil {
		status := constants.TaskStatus(*r.Status)
		if !status.Valid() {
			return changes, apperrors.ErrInvalidStatus
		}
		changes.Status = &status
	}

	changes.Description = r.Description
	changes.DueDate = r.DueDate

	return changes, nil
}
