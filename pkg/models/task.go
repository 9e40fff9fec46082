package models

import "github.com/stonefisk/reforma/internal/types"

// TaskStatus is the execution state of a task on the timeline.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusBlocked    TaskStatus = "Blocked"
)

// Task is an entry on the renovation timeline.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	StartDate   types.Date `json:"startDate"`
	EndDate     types.Date `json:"endDate"`
	Status      TaskStatus `json:"status"`
	Category    Category   `json:"category"`
	SupplierID  string     `json:"supplierId,omitempty"`
	Attachments []string   `json:"attachments,omitempty"`
}
