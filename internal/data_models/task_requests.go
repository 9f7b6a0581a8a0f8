package dto

// CreateTaskRequest is the POST /tasks body. Description, DueDate and
// Status are pointers so an absent key is distinguishable from an empty
// string.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

// UpdateTaskRequest is the PUT /tasks/:id body. A nil field means
// "leave unchanged"; a non-nil field (empty string included) overwrites.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

// Empty reports whether the request carries no recognized field at all.
func (r *UpdateTaskRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.DueDate == nil && r.Status == nil
}
