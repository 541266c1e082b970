package repair

// ===============================
// Repair Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending" // quote sent, waiting on the client
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Legacy documents store the Bulgarian UI labels as status values.
// They are coerced to codes once, at the storage boundary.
var legacyStatuses = map[string]Status{
	"Изпратена оферта": StatusPending,
	"В процес":         StatusInProgress,
	"Завършен":         StatusCompleted,
	"Отказан":          StatusCancelled,
}

// ParseStatus normalizes a stored status value. Unknown values default to
// pending rather than failing the read: the store is schemaless and a
// single odd document must not break list views.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return Status(raw)
	}
	if s, ok := legacyStatuses[raw]; ok {
		return s
	}
	return StatusPending
}

// NextStatus advances the workflow one step. Terminal states map to
// themselves, so repeated application is a no-op, never an error.
func NextStatus(current Status) Status {
	switch current {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return current
	}
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// StatusColor is the fixed display-color lookup used by every list view.
func StatusColor(s Status) string {
	switch s {
	case StatusPending:
		return "amber"
	case StatusInProgress:
		return "blue"
	case StatusCompleted:
		return "green"
	case StatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

func InitialStatus() Status {
	return StatusPending
}
