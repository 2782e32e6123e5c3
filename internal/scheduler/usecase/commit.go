package usecase

import (
	"context"
	"fmt"
	"sync"

	"deepwork-scheduler/internal/scheduler"
	"deepwork-scheduler/internal/scheduler/repository"
	"deepwork-scheduler/internal/slot"
)

// Commit fans out the selection as one independent partial update per task,
// setting focusDate, focusSlot and dayId. The updates run concurrently with
// no ordering guarantee and no rollback: a concurrent reader can observe a
// state where only part of the batch has applied. Per-task outcomes are
// always reported so partial failure is visible rather than masked.
func (uc *implUseCase) Commit(ctx context.Context, input scheduler.CommitInput) (scheduler.CommitOutput, error) {
	// Validation failures never reach the network.
	if input.Date.IsZero() {
		return scheduler.CommitOutput{}, scheduler.ErrMissingDate
	}
	if !slot.Valid(input.SlotID) {
		return scheduler.CommitOutput{}, scheduler.ErrInvalidSlot
	}
	if len(input.Selection) == 0 {
		return scheduler.CommitOutput{}, scheduler.ErrEmptySelection
	}

	focusDate := uc.clock.StartOfDay(input.Date)
	slotID := input.SlotID
	dayID := uc.clock.DayKey(input.Date)

	uc.l.Infof(ctx, "Commit: assigning %d tasks to %s %s", len(input.Selection), dayID, slotID)

	// Once issued the batch runs to completion: the caller disconnecting
	// (dialog closed mid-commit) must not abort in-flight updates.
	ctx = context.WithoutCancel(ctx)

	results := make([]scheduler.TaskCommitResult, len(input.Selection))

	var wg sync.WaitGroup
	for i, taskID := range input.Selection {
		wg.Add(1)
		go func(i int, taskID string) {
			defer wg.Done()
			_, err := uc.taskRepo.UpdateAssignment(ctx, taskID, repository.AssignmentPatch{
				FocusDate: &focusDate,
				FocusSlot: &slotID,
				DayID:     &dayID,
			})
			results[i] = scheduler.TaskCommitResult{TaskID: taskID, Err: err}
		}(i, taskID)
	}
	wg.Wait()

	out := scheduler.CommitOutput{Results: results}
	for _, res := range results {
		if res.Err != nil {
			out.Failed++
			uc.l.Errorf(ctx, "Commit: task %s failed: %v", res.TaskID, res.Err)
		} else {
			out.Succeeded++
		}
	}

	if out.Failed > 0 {
		return out, fmt.Errorf("%w: %d of %d", scheduler.ErrCommitFailed, out.Failed, len(results))
	}

	uc.l.Infof(ctx, "Commit: all %d assignments applied", out.Succeeded)
	return out, nil
}
