package apierrors

const (
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTime        = "invalidTime"
	MsgInvalidEvent       = "invalidEvent"
	MsgInvalidValue       = "invalidValue"
	MsgInvalidSortKey     = "invalidSortKey"
	MsgDuplicateTask      = "duplicateTask"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailAddTask        = "failAddTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailRemoveTask     = "failRemoveTask"
	MsgFailCompleteTask   = "failCompleteTask"
	MsgFailSendReminder   = "failSendReminder"
	MsgFailSendReward     = "failSendReward"
)
