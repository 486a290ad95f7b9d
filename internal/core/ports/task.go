package ports

import (
	"context"

	"zephyrtask/internal/core/domain"
)

// LoadResult distinguishes a parsed read from the tolerant empty fallback:
// Parsed is false when the backing data was missing or could not be decoded
// and the store degraded to an empty collection.
type LoadResult struct {
	Tasks  []domain.Task
	Parsed bool
}

// TaskStore is the whole-collection persistence boundary. Load returns the
// full collection in storage order; Save replaces it as one unit. There is
// no partial update and no coordination between concurrent writers: the
// later Save wins.
type TaskStore interface {
	Load(ctx context.Context) (LoadResult, error)
	Save(ctx context.Context, tasks []domain.Task) error
}

type TaskService interface {
	Add(ctx context.Context, timeInput domain.TimeInput, event string, value int) (domain.Task, error)
	Update(ctx context.Context, timeInput domain.TimeInput, event string, value int) (domain.Task, error)
	Remove(ctx context.Context, timeInput domain.TimeInput, event string) (domain.Task, error)
	Complete(ctx context.Context, event string) (domain.Task, error)
	List(ctx context.Context, orderBy string) ([]domain.Task, error)
}

// NotifyService evaluates stored state into notification payloads. Both
// methods return nil without invoking the notifier when there is nothing to
// report; otherwise they return the payload that was delivered.
type NotifyService interface {
	Reminder(ctx context.Context, input domain.ReminderInput) (*domain.ReminderPayload, error)
	Reward(ctx context.Context, input domain.RewardInput) (*domain.RewardPayload, error)
}

// Notifier renders and delivers a payload. Delivery is synchronous and not
// retried here.
type Notifier interface {
	SendReminder(ctx context.Context, payload domain.ReminderPayload) error
	SendReward(ctx context.Context, payload domain.RewardPayload) error
}

// JokeService supplies the optional flavor text for reward notifications.
type JokeService interface {
	Joke() string
}
