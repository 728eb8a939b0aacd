package shared

// Task types processed by the worker
const (
	TypeNotifyLateLoans = "loan:notify_late_loans"
)

// Queue names, ordered by priority in the worker config
const (
	QueueLoans   = "loans"
	QueueDefault = "default"
)

// NotifyLateLoansPayload is the payload for the late-loan notification task.
// The message body is configured on the worker side, so the payload carries
// nothing; it exists so the task type keeps a stable schema.
type NotifyLateLoansPayload struct{}
