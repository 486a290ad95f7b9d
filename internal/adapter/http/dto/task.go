package dto

import "encoding/json"

type TaskItem struct {
	Time      string `json:"time"`
	Event     string `json:"event"`
	Value     int    `json:"value"`
	Completed bool   `json:"completed"`
}

// TaskWriteRequest is shared by add and update: both take the full
// (time, event, value) triple. Value is decoded as a raw number so the
// whole-number rule can be enforced explicitly instead of silently
// truncating fractional input.
type TaskWriteRequest struct {
	Time  string      `json:"time" binding:"required"`
	Event string      `json:"event" binding:"required"`
	Value json.Number `json:"value" binding:"required"`
}

type CompleteTaskRequest struct {
	Event string `json:"event" binding:"required"`
}

type ReminderRequest struct {
	To             string `json:"to" binding:"required,email"`
	DeadlineHours  *int   `json:"deadline_hours" binding:"omitempty,gte=0"`
	Rank           string `json:"rank" binding:"omitempty,oneof=time value"`
	AdditionalText string `json:"additional_text"`
}

type RewardRequest struct {
	To                    string `json:"to" binding:"required,email"`
	Threshold             int    `json:"threshold"`
	RewardMessage         string `json:"reward_message"`
	IncludeCompletedTasks *bool  `json:"include_completed_tasks"`
	IncludeJoke           *bool  `json:"include_joke"`
}

type ReminderResponse struct {
	Sent        bool   `json:"sent"`
	TaskCount   int    `json:"task_count"`
	WindowHours int    `json:"window_hours"`
	To          string `json:"to"`
}

type RewardResponse struct {
	Sent      bool   `json:"sent"`
	Total     int    `json:"total"`
	Threshold int    `json:"threshold"`
	To        string `json:"to"`
}
