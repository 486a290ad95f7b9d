package handlers

import (
	"errors"
	"net/http"

	"zephyrtask/internal/adapter/http/dto"
	"zephyrtask/internal/adapter/http/middleware"
	"zephyrtask/internal/adapter/http/validation"
	"zephyrtask/internal/core/domain"
	"zephyrtask/internal/core/ports"
	"zephyrtask/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	notifyService ports.NotifyService
}

func NewNotificationHandler(notifyService ports.NotifyService) *NotificationHandler {
	return &NotificationHandler{notifyService: notifyService}
}

// SendReminder evaluates the due-soon window and delivers a reminder email.
// When no task falls inside the window nothing is sent and the response is
// 204.
func (h *NotificationHandler) SendReminder(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	payload, err := h.notifyService.Reminder(c.Request.Context(), validation.BuildReminderInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTime) {
			// A stored record carries unparseable time text.
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTime, lang),
			)
			return
		}
		zap.L().Error("failed to send reminder", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSendReminder, lang),
		)
		return
	}

	if payload == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ReminderResponse{
		Sent:        true,
		TaskCount:   len(payload.Tasks),
		WindowHours: payload.WindowHours,
		To:          payload.To,
	})
}

// SendReward evaluates the completed-value threshold and delivers a reward
// email. When the total falls short nothing is sent and the response is 204.
func (h *NotificationHandler) SendReward(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	payload, err := h.notifyService.Reward(c.Request.Context(), validation.BuildRewardInput(req))
	if err != nil {
		zap.L().Error("failed to send reward", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSendReward, lang),
		)
		return
	}

	if payload == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.RewardResponse{
		Sent:      true,
		Total:     payload.Total,
		Threshold: payload.Threshold,
		To:        payload.To,
	})
}
