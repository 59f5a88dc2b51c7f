package enums

import "fmt"

// ScheduleStatus tracks a collection request. As with complaints, the status
// graph is intentionally permissive: a cancelled schedule can be reopened.
type ScheduleStatus string

const (
	ScheduleStatusScheduled  ScheduleStatus = "scheduled"
	ScheduleStatusInProgress ScheduleStatus = "in_progress"
	ScheduleStatusCompleted  ScheduleStatus = "completed"
	ScheduleStatusCancelled  ScheduleStatus = "cancelled"
)

var validScheduleStatuses = []ScheduleStatus{
	ScheduleStatusScheduled,
	ScheduleStatusInProgress,
	ScheduleStatusCompleted,
	ScheduleStatusCancelled,
}

func (s ScheduleStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ScheduleStatus.
func (s ScheduleStatus) IsValid() bool {
	for _, candidate := range validScheduleStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseScheduleStatus converts raw input into a ScheduleStatus.
func ParseScheduleStatus(value string) (ScheduleStatus, error) {
	for _, candidate := range validScheduleStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid schedule status %q", value)
}
