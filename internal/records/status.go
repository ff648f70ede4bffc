package records

import "unicode"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusCompleted  Status = "completed"
)

// Known reports whether s is one of the closed statuses. Anything else is
// carried through as-is and rendered like any other status.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted:
		return true
	}
	return false
}

// Label is the raw status with its first rune upper-cased, e.g. "Pending".
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	r := []rune(string(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
