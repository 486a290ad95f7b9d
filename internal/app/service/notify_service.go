package service

import (
	"context"
	"sort"
	"time"

	"zephyrtask/internal/core/domain"
	"zephyrtask/internal/core/ports"
)

// NotifyService derives notification payloads from stored state and hands
// them to the notifier. Both evaluations are read-only: they never mutate
// the collection and are idempotent across repeated calls.
type NotifyService struct {
	store    ports.TaskStore
	notifier ports.Notifier
	jokes    ports.JokeService
}

func NewNotifyService(store ports.TaskStore, notifier ports.Notifier, jokes ports.JokeService) *NotifyService {
	return &NotifyService{store: store, notifier: notifier, jokes: jokes}
}

var _ ports.NotifyService = (*NotifyService)(nil)

// Reminder collects incomplete tasks whose time falls within the deadline
// window, counted in hours from the reference instant. The difference may be
// negative: overdue tasks always qualify. When nothing qualifies the
// notifier is not invoked and the payload is nil. Qualifying tasks are
// sorted ascending by time, or ascending by value when ranked by value.
func (s *NotifyService) Reminder(ctx context.Context, input domain.ReminderInput) (*domain.ReminderPayload, error) {
	result, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	type timedTask struct {
		task  domain.Task
		stamp time.Time
	}

	var upcoming []timedTask
	for _, task := range result.Tasks {
		if task.Completed {
			continue
		}
		stamp, err := domain.ParseTime(task.Time)
		if err != nil {
			return nil, err
		}
		if stamp.Sub(now).Hours() <= float64(input.WindowHours) {
			upcoming = append(upcoming, timedTask{task: task, stamp: stamp})
		}
	}

	if len(upcoming) == 0 {
		return nil, nil
	}

	if input.Rank == domain.SortByValue {
		sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].task.Value < upcoming[j].task.Value })
	} else {
		sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].stamp.Before(upcoming[j].stamp) })
	}

	tasks := make([]domain.Task, 0, len(upcoming))
	for _, entry := range upcoming {
		tasks = append(tasks, entry.task)
	}

	payload := domain.ReminderPayload{
		WindowHours:    input.WindowHours,
		Tasks:          tasks,
		To:             input.To,
		AdditionalText: input.AdditionalText,
	}
	if err := s.notifier.SendReminder(ctx, payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Reward sums the value of completed tasks and, when the total reaches the
// threshold, delivers a reward notification. A total strictly below the
// threshold yields a nil payload without invoking the notifier.
func (s *NotifyService) Reward(ctx context.Context, input domain.RewardInput) (*domain.RewardPayload, error) {
	result, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var completed []domain.Task
	total := 0
	for _, task := range result.Tasks {
		if task.Completed {
			completed = append(completed, task)
			total += task.Value
		}
	}

	if total < input.Threshold {
		return nil, nil
	}

	payload := domain.RewardPayload{
		Total:         total,
		Threshold:     input.Threshold,
		RewardMessage: input.RewardMessage,
		To:            input.To,
	}
	if input.IncludeCompletedTasks {
		payload.CompletedTasks = completed
	}
	if input.IncludeJoke && s.jokes != nil {
		payload.Joke = s.jokes.Joke()
	}

	if err := s.notifier.SendReward(ctx, payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
