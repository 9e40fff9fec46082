package project

import (
	"slices"

	"github.com/google/uuid"
	"github.com/stonefisk/reforma/internal/types"
	"github.com/stonefisk/reforma/pkg/models"
)

// TaskEditable contains the fields callers provide when creating a task.
type TaskEditable struct {
	Title       string
	StartDate   types.Date
	EndDate     types.Date
	Status      models.TaskStatus
	Category    models.Category
	SupplierID  string
	Attachments []string
}

// TaskUpdate is a partial update of a task. Nil fields are left
// untouched.
type TaskUpdate struct {
	Title       *string
	StartDate   *types.Date
	EndDate     *types.Date
	Status      *models.TaskStatus
	Category    *models.Category
	SupplierID  *string
	Attachments *[]string
}

// AddTask appends a new task to the timeline and returns it.
func (m *Manager) AddTask(input TaskEditable) models.Task {
	task := models.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      input.Status,
		Category:    input.Category,
		SupplierID:  input.SupplierID,
		Attachments: slices.Clone(input.Attachments),
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}

	m.mutate(func(doc *models.Document) {
		doc.Tasks = append(doc.Tasks, task)
	})

	return task
}

// UpdateTask merges the update into the task with the given ID. An
// unknown ID is a no-op.
func (m *Manager) UpdateTask(id string, update TaskUpdate) {
	m.mutate(func(doc *models.Document) {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID != id {
				continue
			}

			if update.Title != nil {
				doc.Tasks[i].Title = *update.Title
			}
			if update.StartDate != nil {
				doc.Tasks[i].StartDate = *update.StartDate
			}
			if update.EndDate != nil {
				doc.Tasks[i].EndDate = *update.EndDate
			}
			if update.Status != nil {
				doc.Tasks[i].Status = *update.Status
			}
			if update.Category != nil {
				doc.Tasks[i].Category = *update.Category
			}
			if update.SupplierID != nil {
				doc.Tasks[i].SupplierID = *update.SupplierID
			}
			if update.Attachments != nil {
				doc.Tasks[i].Attachments = slices.Clone(*update.Attachments)
			}
		}
	})
}

// DeleteTask removes a task from the timeline.
func (m *Manager) DeleteTask(id string) {
	m.mutate(func(doc *models.Document) {
		doc.Tasks = slices.DeleteFunc(doc.Tasks, func(t models.Task) bool { return t.ID == id })
	})
}
