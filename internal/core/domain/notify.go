package domain

import "time"

// DefaultReminderWindowHours is used when a reminder request does not name a
// deadline window.
const DefaultReminderWindowHours = 24

// DefaultRewardMessage is the congratulatory text used when the caller does
// not supply one.
const DefaultRewardMessage = "Congratulations on reaching your goal!"

// ReminderInput parameterizes a due-soon evaluation. Now is the reference
// instant; a zero value means the wall clock at evaluation time.
type ReminderInput struct {
	WindowHours    int
	Rank           string
	Now            time.Time
	To             string
	AdditionalText string
}

// ReminderPayload is handed to the notifier once at least one incomplete
// task falls inside the deadline window. Tasks are sorted ascending by time,
// or ascending by value when the input ranked by value.
type ReminderPayload struct {
	WindowHours    int
	Tasks          []Task
	To             string
	AdditionalText string
}

// RewardInput parameterizes a threshold-reward evaluation.
type RewardInput struct {
	Threshold             int
	To                    string
	RewardMessage         string
	IncludeCompletedTasks bool
	IncludeJoke           bool
}

// RewardPayload is handed to the notifier once the completed-task value
// total meets the threshold. CompletedTasks is nil unless the input asked
// for it; Joke is empty unless one was requested.
type RewardPayload struct {
	Total          int
	Threshold      int
	CompletedTasks []Task
	RewardMessage  string
	Joke           string
	To             string
}
