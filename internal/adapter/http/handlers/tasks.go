package handlers

import (
	"errors"
	"net/http"

	"zephyrtask/internal/adapter/http/dto"
	"zephyrtask/internal/adapter/http/mapper"
	"zephyrtask/internal/adapter/http/middleware"
	"zephyrtask/internal/adapter/http/validation"
	"zephyrtask/internal/core/domain"
	"zephyrtask/internal/core/ports"
	"zephyrtask/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) AddTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.TaskWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	value, err := validation.ParseTaskValue(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidValue, lang),
		)
		return
	}

	task, err := h.taskService.Add(c.Request.Context(), domain.TimeText(req.Time), req.Event, value)
	if err != nil {
		respondTaskError(c, lang, err, "failed to add task", apierrors.MsgFailAddTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.TaskWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	value, err := validation.ParseTaskValue(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidValue, lang),
		)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), domain.TimeText(req.Time), req.Event, value)
	if err != nil {
		respondTaskError(c, lang, err, "failed to update task", apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) RemoveTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	timeText := c.Query("time")
	event := c.Query("event")
	if timeText == "" || event == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.Remove(c.Request.Context(), domain.TimeText(timeText), event)
	if err != nil {
		respondTaskError(c, lang, err, "failed to remove task", apierrors.MsgFailRemoveTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.Complete(c.Request.Context(), req.Event)
	if err != nil {
		respondTaskError(c, lang, err, "failed to complete task", apierrors.MsgFailCompleteTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	orderBy := c.DefaultQuery("order_by", domain.SortByTime)
	tasks, err := h.taskService.List(c.Request.Context(), orderBy)
	if err != nil {
		respondTaskError(c, lang, err, "failed to list tasks", apierrors.MsgFailListTasks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

// respondTaskError maps domain errors onto the API error envelope. Anything
// not recognized is a server-side failure and gets logged.
func respondTaskError(c *gin.Context, lang string, err error, logMsg string, failKey string) {
	switch {
	case errors.Is(err, domain.ErrInvalidTime):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTime, lang))
	case errors.Is(err, domain.ErrInvalidEvent):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidEvent, lang))
	case errors.Is(err, domain.ErrInvalidValue):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidValue, lang))
	case errors.Is(err, domain.ErrInvalidSortKey):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSortKey, lang))
	case errors.Is(err, domain.ErrDuplicateTask):
		c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateTask, lang))
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
	default:
		zap.L().Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, failKey, lang))
	}
}
