package service

import (
	"context"
	"fmt"
	"sort"

	"zephyrtask/internal/core/domain"
	"zephyrtask/internal/core/ports"
)

// TaskService implements the task operations as load-mutate-save cycles
// against the store. No state survives between calls; every domain error is
// detected before anything is written, so a rejected operation leaves the
// store untouched.
type TaskService struct {
	store ports.TaskStore
}

func NewTaskService(store ports.TaskStore) *TaskService {
	return &TaskService{store: store}
}

var _ ports.TaskService = (*TaskService)(nil)

// Add validates the triple and appends a new task, failing if a task with
// the same (time, event) identity already exists.
func (s *TaskService) Add(ctx context.Context, timeInput domain.TimeInput, event string, value int) (domain.Task, error) {
	task, err := domain.NewTask(timeInput, event, value)
	if err != nil {
		return domain.Task{}, err
	}

	result, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	for _, existing := range result.Tasks {
		if existing.Time == task.Time && existing.Event == task.Event {
			return domain.Task{}, fmt.Errorf("%w: time %q and event %q", domain.ErrDuplicateTask, task.Time, task.Event)
		}
	}

	tasks := append(result.Tasks, task)
	if err := s.store.Save(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Update replaces the value of the task identified by (time, event). The
// triple is re-validated as if creating, so the same format rules apply.
// Completion state and storage position are left untouched.
func (s *TaskService) Update(ctx context.Context, timeInput domain.TimeInput, event string, value int) (domain.Task, error) {
	validated, err := domain.NewTask(timeInput, event, value)
	if err != nil {
		return domain.Task{}, err
	}

	result, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	for i, existing := range result.Tasks {
		if existing.Time == validated.Time && existing.Event == validated.Event {
			result.Tasks[i].Value = value
			if err := s.store.Save(ctx, result.Tasks); err != nil {
				return domain.Task{}, err
			}
			return result.Tasks[i], nil
		}
	}

	return domain.Task{}, fmt.Errorf("%w: time %q and event %q", domain.ErrTaskNotFound, validated.Time, validated.Event)
}

// Remove deletes the first task matching (time, event), preserving the
// order of the remaining tasks. The time input is canonicalized but raw
// text is deliberately not re-validated for parseability.
func (s *TaskService) Remove(ctx context.Context, timeInput domain.TimeInput, event string) (domain.Task, error) {
	timeText := timeInput.Canonical()

	result, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	for i, existing := range result.Tasks {
		if existing.Time == timeText && existing.Event == event {
			removed := existing
			tasks := append(result.Tasks[:i], result.Tasks[i+1:]...)
			if err := s.store.Save(ctx, tasks); err != nil {
				return domain.Task{}, err
			}
			return removed, nil
		}
	}

	return domain.Task{}, fmt.Errorf("%w: time %q and event %q", domain.ErrTaskNotFound, timeText, event)
}

// Complete marks the first task whose event matches as completed. Time is
// not part of the lookup: when several tasks share the event name, the
// earliest in storage order wins.
func (s *TaskService) Complete(ctx context.Context, event string) (domain.Task, error) {
	result, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	for i, existing := range result.Tasks {
		if existing.Event == event {
			result.Tasks[i].Completed = true
			if err := s.store.Save(ctx, result.Tasks); err != nil {
				return domain.Task{}, err
			}
			return result.Tasks[i], nil
		}
	}

	return domain.Task{}, fmt.Errorf("%w: event %q", domain.ErrTaskNotFound, event)
}

// List returns a sorted copy of the collection: ascending by canonical time
// text, or descending by value. Both sorts are stable, so ties keep their
// storage order. Storage itself is never reordered.
func (s *TaskService) List(ctx context.Context, orderBy string) ([]domain.Task, error) {
	switch orderBy {
	case domain.SortByTime, domain.SortByValue:
	default:
		return nil, fmt.Errorf("%w: %q, choose %q or %q", domain.ErrInvalidSortKey, orderBy, domain.SortByTime, domain.SortByValue)
	}

	result, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	tasks := append([]domain.Task(nil), result.Tasks...)
	if orderBy == domain.SortByTime {
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Time < tasks[j].Time })
	} else {
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Value > tasks[j].Value })
	}

	return tasks, nil
}
