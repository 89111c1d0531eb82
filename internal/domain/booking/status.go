package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCanceled   Status = "canceled"
	StatusDeclined   Status = "declined"
	StatusNoShow     Status = "no-show"
)

// UpdatedByBarber marks history entries written from the dashboard.
const UpdatedByBarber = "barber"

var allStatuses = map[Status]bool{
	StatusPending:    true,
	StatusConfirmed:  true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCanceled:   true,
	StatusDeclined:   true,
	StatusNoShow:     true,
}

// AnalyticsStatuses is the subset the analytics views break counts down by.
// Bookings in the other three statuses are excluded from those counts.
var AnalyticsStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCanceled,
	StatusCompleted,
}

func IsValid(s Status) bool {
	return allStatuses[s]
}

// Transitions are deliberately unguarded: any status may be set from any
// other, including leaving completed or canceled. The client app and the
// dashboard both rely on this permissiveness.
func CanTransition(from, to Status) bool {
	return IsValid(to)
}
