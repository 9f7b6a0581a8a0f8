package validators

import (
	"strings"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// ValidateCreateTaskRequest checks the create payload and returns the
// status to persist, defaulting to pending. The title is trimmed in
// place so the stored value never carries surrounding whitespace.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) (constants.TaskStatus, error) {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return "", apperrors.ErrTitleRequired
	}

	status := constants.StatusPending
	if r.Status != nil {
		status = constants.TaskStatus(*r.Status)
		if !status.Valid() {
			return "", apperrors.ErrInvalidStatus
		}
	}

	return status, nil
}
