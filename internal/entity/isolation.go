package entity

import "time"

// OutcomeKind is the closed taxonomy of terminal request outcomes.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeResourceNotFound
	OutcomeValidationError
	OutcomePermissionDenied
	OutcomeResourceBusy
	OutcomeAlreadyExists
	OutcomeResourceExhausted
	OutcomeInternalError
)

// String -.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "Success"
	case OutcomeResourceNotFound:
		return "ResourceNotFound"
	case OutcomeValidationError:
		return "ValidationError"
	case OutcomePermissionDenied:
		return "PermissionDenied"
	case OutcomeResourceBusy:
		return "ResourceBusy"
	case OutcomeAlreadyExists:
		return "AlreadyExists"
	case OutcomeResourceExhausted:
		return "ResourceExhausted"
	case OutcomeInternalError:
		return "InternalError"
	default:
		return "InternalError"
	}
}

// OutcomeRecord is the unit returned by every public core operation, success
// or failure. Message is already formatted from the registry template.
type OutcomeRecord struct {
	Kind      OutcomeKind
	MessageID string
	Message   string
	Args      []string
}

// IsSuccess -.
func (o OutcomeRecord) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

// ResourceDescriptor identifies one logical hardware resource for the
// duration of a single request. ObjectPath is filled in by the resolver.
type ResourceDescriptor struct {
	Name       string
	ID         string
	ObjectPath ObjectPath
}

// Severity is the normalized health severity of a status condition.
type Severity string

const (
	SeverityOK       Severity = "OK"
	SeverityWarning  Severity = "Warning"
	SeverityCritical Severity = "Critical"
)

// StatusCondition is the normalized health-status record aggregated from a
// resource's fault-status event. Immutable after construction.
type StatusCondition struct {
	Timestamp   time.Time
	Severity    Severity
	Message     string
	MessageID   string
	MessageArgs []string
	// LogEntryPath is the object path of the associated fault-log entry, if
	// any. Resolving it to an external reference is the caller's concern.
	LogEntryPath ObjectPath
}
