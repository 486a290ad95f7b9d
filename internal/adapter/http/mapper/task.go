package mapper

import (
	"zephyrtask/internal/adapter/http/dto"
	"zephyrtask/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		Time:      task.Time,
		Event:     task.Event,
		Value:     task.Value,
		Completed: task.Completed,
	}
}
