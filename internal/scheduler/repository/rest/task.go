package rest

import (
	"context"
	"fmt"

	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/internal/scheduler/repository"
	"deepwork-scheduler/internal/slot"
	"deepwork-scheduler/pkg/dates"
	pkgLog "deepwork-scheduler/pkg/log"
)

type implTaskRepository struct {
	client *Client
	clock  *dates.Clock
	l      pkgLog.Logger
}

// NewTaskRepository creates a TaskRepository backed by the dashboard REST API.
func NewTaskRepository(client *Client, clock *dates.Clock, l pkgLog.Logger) repository.TaskRepository {
	return &implTaskRepository{
		client: client,
		clock:  clock,
		l:      l,
	}
}

func (r *implTaskRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	dtos, err := r.client.ListTasks(ctx)
	if err != nil {
		r.l.Errorf(ctx, "task repository: failed to list tasks: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(dtos))
	for _, dto := range dtos {
		task, convErr := r.toTask(dto)
		if convErr != nil {
			r.l.Warnf(ctx, "task repository: skipping malformed task %s: %v", dto.ID, convErr)
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *implTaskRepository) UpdateAssignment(ctx context.Context, taskID string, patch repository.AssignmentPatch) (model.Task, error) {
	dto := assignmentPatchDTO{DayID: patch.DayID}
	if patch.FocusDate != nil {
		s := patch.FocusDate.Format("2006-01-02")
		dto.FocusDate = &s
	}
	if patch.FocusSlot != nil {
		s := string(*patch.FocusSlot)
		dto.FocusSlot = &s
	}

	updated, err := r.client.PatchTask(ctx, taskID, dto)
	if err != nil {
		r.l.Errorf(ctx, "task repository: failed to patch task %s: %v", taskID, err)
		return model.Task{}, err
	}

	task, convErr := r.toTask(*updated)
	if convErr != nil {
		return model.Task{}, fmt.Errorf("task store returned malformed task %s: %w", taskID, convErr)
	}
	return task, nil
}

// toTask converts a wire task into the internal model, parsing date strings
// in the scheduler timezone.
func (r *implTaskRepository) toTask(dto taskDTO) (model.Task, error) {
	task := model.Task{
		ID:             dto.ID,
		Title:          dto.Title,
		Status:         model.Status(dto.Status),
		Priority:       model.Priority(dto.Priority),
		VentureID:      dto.VentureID,
		EstEffortHours: dto.EstEffortHours,
	}

	if dto.DueDate != nil {
		due, err := r.clock.ParseDay(*dto.DueDate)
		if err != nil {
			return model.Task{}, fmt.Errorf("bad dueDate: %w", err)
		}
		task.DueDate = &due
	}

	// (focusDate, focusSlot) must be both-present or both-absent; a half-set
	// pair from the store is treated as unassigned.
	if dto.FocusDate != nil && dto.FocusSlot != nil {
		focus, err := r.clock.ParseDay(*dto.FocusDate)
		if err != nil {
			return model.Task{}, fmt.Errorf("bad focusDate: %w", err)
		}
		slotID := slot.ID(*dto.FocusSlot)
		task.FocusDate = &focus
		task.FocusSlot = &slotID
	}

	return task, nil
}
