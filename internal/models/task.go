package model

import (
	"task-tracker.com/task-tracker/internal/constants"
)

// Task is the single persisted entity. Description and DueDate are
// pointers so a missing value round-trips as SQL NULL / JSON null.
type Task struct {
	ID          uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string               `gorm:"not null" json:"title"`
	Description *string              `json:"description"`
	DueDate     *string              `gorm:"column:due_date" json:"due_date"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}

func (Task) TableName() string {
	return "tasks"
}
