package validation

import (
	"fmt"
	"strings"

	"zephyrtask/internal/adapter/http/dto"
	"zephyrtask/internal/core/domain"
)

// ParseTaskValue enforces the whole-number rule on the JSON value field:
// fractional or exponent-formed numbers are rejected rather than truncated.
func ParseTaskValue(req dto.TaskWriteRequest) (int, error) {
	raw := req.Value.String()
	if strings.ContainsAny(raw, ".eE") {
		return 0, fmt.Errorf("%w: got %q", domain.ErrInvalidValue, raw)
	}
	value, err := req.Value.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", domain.ErrInvalidValue, raw)
	}
	return int(value), nil
}

// BuildReminderInput applies the documented defaults to a reminder request:
// a 24-hour window and time-ranked output.
func BuildReminderInput(req dto.ReminderRequest) domain.ReminderInput {
	windowHours := domain.DefaultReminderWindowHours
	if req.DeadlineHours != nil {
		windowHours = *req.DeadlineHours
	}

	rank := req.Rank
	if rank == "" {
		rank = domain.SortByTime
	}

	return domain.ReminderInput{
		WindowHours:    windowHours,
		Rank:           rank,
		To:             req.To,
		AdditionalText: req.AdditionalText,
	}
}

// BuildRewardInput applies the documented defaults to a reward request: the
// stock congratulation message, completed tasks included, joke included.
func BuildRewardInput(req dto.RewardRequest) domain.RewardInput {
	message := req.RewardMessage
	if message == "" {
		message = domain.DefaultRewardMessage
	}

	includeCompleted := true
	if req.IncludeCompletedTasks != nil {
		includeCompleted = *req.IncludeCompletedTasks
	}

	includeJoke := true
	if req.IncludeJoke != nil {
		includeJoke = *req.IncludeJoke
	}

	return domain.RewardInput{
		Threshold:             req.Threshold,
		To:                    req.To,
		RewardMessage:         message,
		IncludeCompletedTasks: includeCompleted,
		IncludeJoke:           includeJoke,
	}
}
