package domain

import "errors"

var (
	ErrInvalidTime    = errors.New("invalid task time")
	ErrInvalidEvent   = errors.New("invalid task event")
	ErrInvalidValue   = errors.New("invalid task value")
	ErrDuplicateTask  = errors.New("duplicate task")
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidSortKey = errors.New("invalid sort key")
)
