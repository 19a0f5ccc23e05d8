package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusUnset   Status = "UNSET"
)

// ParseStatus maps the wire literal to a Status. The empty string falls back
// to StatusUnset, matching the column default.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusUnset:
		return Status(s), true
	}
	if s == "" {
		return StatusUnset, true
	}
	return "", false
}

type Attendance struct {
	ID     int64
	EmpID  int64
	Status Status
	Date   time.Time
}
