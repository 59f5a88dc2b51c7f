package enums

import "fmt"

// ComplaintStatus tracks triage progress on a citizen complaint. Transitions
// are deliberately unordered: staff may move a complaint between any two
// statuses, including reopening a solved one.
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusInProgress ComplaintStatus = "in_progress"
	ComplaintStatusSolved     ComplaintStatus = "solved"
	ComplaintStatusUnsolved   ComplaintStatus = "unsolved"
)

var validComplaintStatuses = []ComplaintStatus{
	ComplaintStatusPending,
	ComplaintStatusInProgress,
	ComplaintStatusSolved,
	ComplaintStatusUnsolved,
}

func (c ComplaintStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ComplaintStatus.
func (c ComplaintStatus) IsValid() bool {
	for _, candidate := range validComplaintStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseComplaintStatus converts raw input into a ComplaintStatus.
func ParseComplaintStatus(value string) (ComplaintStatus, error) {
	for _, candidate := range validComplaintStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid complaint status %q", value)
}

// ComplaintPriority orders complaints for triage.
type ComplaintPriority string

const (
	ComplaintPriorityLow    ComplaintPriority = "low"
	ComplaintPriorityMedium ComplaintPriority = "medium"
	ComplaintPriorityHigh   ComplaintPriority = "high"
)

var validComplaintPriorities = []ComplaintPriority{
	ComplaintPriorityLow,
	ComplaintPriorityMedium,
	ComplaintPriorityHigh,
}

func (c ComplaintPriority) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ComplaintPriority.
func (c ComplaintPriority) IsValid() bool {
	for _, candidate := range validComplaintPriorities {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseComplaintPriority converts raw input into a ComplaintPriority.
func ParseComplaintPriority(value string) (ComplaintPriority, error) {
	for _, candidate := range validComplaintPriorities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid complaint priority %q", value)
}
