package ledger

// Activity represents the professional activity an invoice belongs to
type Activity string

const (
	ActivitySoftware Activity = "SOFTWARE" // software development
	ActivityMusic    Activity = "MUSIC"    // music performance and teaching
)

// IsValid checks if the activity is a valid Activity
func (a Activity) IsValid() bool {
	switch a {
	case ActivitySoftware, ActivityMusic:
		return true
	}
	return false
}

// String returns the string representation of Activity
func (a Activity) String() string {
	return string(a)
}

// DisplayName returns a human-readable name for the activity
func (a Activity) DisplayName() string {
	switch a {
	case ActivitySoftware:
		return "Software development"
	case ActivityMusic:
		return "Music"
	default:
		return string(a)
	}
}
