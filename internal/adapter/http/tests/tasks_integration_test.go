package tests

import (
	"encoding/json"
	"net/http"

	"zephyrtask/internal/adapter/http/dto"
	"zephyrtask/internal/core/domain"
	"zephyrtask/pkg/apierrors"

	"github.com/stretchr/testify/mock"
)

type TasksEndToEndSuite struct {
	IntegrationSuiteBase
}

func (s *TasksEndToEndSuite) addTask(timeText, event string, value int) {
	s.T().Helper()

	body, err := json.Marshal(map[string]any{"time": timeText, "event": event, "value": value})
	s.Require().NoError(err)
	rec := s.doJSON(http.MethodPost, "/api/tasks", string(body))
	s.Require().Equal(http.StatusCreated, rec.Code)
}

func (s *TasksEndToEndSuite) TestHealth_ReportsStoreOk() {
	rec := s.doJSON(http.MethodGet, "/api/health", "")
	s.Require().Equal(http.StatusOK, rec.Code)
}

func (s *TasksEndToEndSuite) TestAddListScenario() {
	s.addTask("2023-06-15T09:00:00", "Morning meeting", 5)
	s.addTask("2023-06-16T12:00:00", "Lunch", 3)

	rec := s.doJSON(http.MethodGet, "/api/tasks?order_by=value", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var byValue []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &byValue))
	s.Require().Len(byValue, 2)
	s.Require().Equal("Morning meeting", byValue[0].Event)
	s.Require().Equal(5, byValue[0].Value)
	s.Require().Equal("Lunch", byValue[1].Event)
	s.Require().Equal(3, byValue[1].Value)

	rec = s.doJSON(http.MethodGet, "/api/tasks?order_by=time", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var byTime []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &byTime))
	s.Require().Equal("Morning meeting", byTime[0].Event)
	s.Require().Equal("Lunch", byTime[1].Event)
}

func (s *TasksEndToEndSuite) TestAddDuplicateKeepsFirstValue() {
	s.addTask("2023-06-15T09:00:00", "Morning meeting", 5)

	rec := s.doJSON(http.MethodPost, "/api/tasks", `{"time":"2023-06-15T09:00:00","event":"Morning meeting","value":99}`)
	s.Require().Equal(http.StatusConflict, rec.Code)

	var errBody apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errBody))
	s.Require().Equal(http.StatusConflict, errBody.ErrDetails.Code)

	list := s.doJSON(http.MethodGet, "/api/tasks", "")
	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(list.Body.Bytes(), &got))
	s.Require().Len(got, 1)
	s.Require().Equal(5, got[0].Value)
}

func (s *TasksEndToEndSuite) TestUpdatePreservesCompletion() {
	s.addTask("2023-06-16T12:00:00", "Lunch", 3)

	rec := s.doJSON(http.MethodPost, "/api/tasks/complete", `{"event":"Lunch"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.doJSON(http.MethodPut, "/api/tasks", `{"time":"2023-06-16T12:00:00","event":"Lunch","value":7}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(7, got.Value)
	s.Require().True(got.Completed)
}

func (s *TasksEndToEndSuite) TestRemoveShrinksCollection() {
	s.addTask("2023-06-15T09:00:00", "Morning meeting", 5)
	s.addTask("2023-06-16T12:00:00", "Lunch", 3)

	rec := s.doJSON(http.MethodDelete, "/api/tasks?time=2023-06-15T09%3A00%3A00&event=Morning+meeting", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	list := s.doJSON(http.MethodGet, "/api/tasks", "")
	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(list.Body.Bytes(), &got))
	s.Require().Len(got, 1)
	s.Require().Equal("Lunch", got[0].Event)

	// Removing the same task again fails and the collection is unchanged.
	rec = s.doJSON(http.MethodDelete, "/api/tasks?time=2023-06-15T09%3A00%3A00&event=Morning+meeting", "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	list = s.doJSON(http.MethodGet, "/api/tasks", "")
	s.Require().NoError(json.Unmarshal(list.Body.Bytes(), &got))
	s.Require().Len(got, 1)
}

func (s *TasksEndToEndSuite) TestRewardScenario() {
	s.addTask("2023-06-15T09:00:00", "Morning meeting", 5)
	s.addTask("2023-06-16T12:00:00", "Lunch", 3)

	rec := s.doJSON(http.MethodPost, "/api/tasks/complete", `{"event":"Lunch"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	s.Notifier.On("SendReward", mock.Anything, mock.Anything).Return(nil).Once()

	// Threshold met exactly: total of completed values is 3.
	rec = s.doJSON(http.MethodPost, "/api/notifications/reward", `{"to":"user@example.com","threshold":3}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.RewardResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.Sent)
	s.Require().Equal(3, got.Total)

	// One point higher and nothing is sent.
	rec = s.doJSON(http.MethodPost, "/api/notifications/reward", `{"to":"user@example.com","threshold":4}`)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	s.Notifier.AssertExpectations(s.T())
}

func (s *TasksEndToEndSuite) TestReminderDeliversSortedPayload() {
	s.addTask("2023-06-15T09:00:00", "Morning meeting", 5)
	s.addTask("2023-06-16T12:00:00", "Lunch", 3)

	var delivered domain.ReminderPayload
	s.Notifier.On("SendReminder", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		delivered = args.Get(1).(domain.ReminderPayload)
	}).Return(nil).Once()

	// Both tasks are in the past relative to the wall clock, so any window
	// includes them.
	rec := s.doJSON(http.MethodPost, "/api/notifications/reminder", `{"to":"user@example.com","deadline_hours":1}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.ReminderResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.Sent)
	s.Require().Equal(2, got.TaskCount)

	s.Require().Len(delivered.Tasks, 2)
	s.Require().Equal("Morning meeting", delivered.Tasks[0].Event)
	s.Require().Equal("Lunch", delivered.Tasks[1].Event)
	s.Notifier.AssertExpectations(s.T())
}

func (s *TasksEndToEndSuite) TestCorruptStoreDegradesToEmptyList() {
	s.addTask("2023-06-15T09:00:00", "Morning meeting", 5)

	s.corruptStoreFile()

	list := s.doJSON(http.MethodGet, "/api/tasks", "")
	s.Require().Equal(http.StatusOK, list.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(list.Body.Bytes(), &got))
	s.Require().Len(got, 0)
}
