package isolation

import "github.com/bmc-toolkit/hwisolation/internal/entity"

// Well-known object-model names. These strings are the wire contract with the
// remote services and must be reproduced exactly.
const (
	// MapperService is the directory service instance.
	MapperService = "xyz.openbmc_project.ObjectMapper"

	// InventoryRoot is the namespace all inventory resources live under.
	InventoryRoot = entity.ObjectPath("/xyz/openbmc_project/inventory")

	// IsolationRoot is the fixed path the isolation capability is provided at.
	IsolationRoot = entity.ObjectPath("/xyz/openbmc_project/hardware_isolation")

	// EnableInterface marks inventory objects whose Enabled state can be
	// toggled; it is appended to every resolution interface set.
	EnableInterface = "xyz.openbmc_project.Object.Enable"

	// IsolationCreateInterface and IsolationCreateMethod form the isolate call.
	IsolationCreateInterface = "xyz.openbmc_project.HardwareIsolation.Create"
	IsolationCreateMethod    = "Create"

	// IsolationModeManual is the fixed severity/mode argument of the isolate call.
	IsolationModeManual = "xyz.openbmc_project.HardwareIsolation.Entry.Type.Manual"

	// DeleteInterface and DeleteMethod form the de-isolate call on an entry.
	DeleteInterface = "xyz.openbmc_project.Object.Delete"
	DeleteMethod    = "Delete"

	// AssociationInterface exposes the endpoints property of an association.
	AssociationInterface = "xyz.openbmc_project.Association"
	EndpointsProperty    = "endpoints"

	// IsolationEntrySegment names the association from a resource to its
	// isolation entries.
	IsolationEntrySegment = "isolated_hw_entry"

	// EventLogSegment names the association from a resource to its event log
	// entries; StatusSegment filters the ones recording isolation status.
	EventLogSegment = "event_log"
	StatusSegment   = "hw_isolation_status"

	// LoggingEventInterface is the interface of a fault-status event object.
	LoggingEventInterface = "xyz.openbmc_project.Logging.Event"

	// ErrorLogAssociation names the forward association from a status event
	// to its fault-log entry.
	ErrorLogAssociation = "error_log"
)

// Remote error identifiers recognized by the translator.
const (
	errInvalidArgument  = "xyz.openbmc_project.Common.Error.InvalidArgument"
	errNotAllowed       = "xyz.openbmc_project.Common.Error.NotAllowed"
	errUnavailable      = "xyz.openbmc_project.Common.Error.Unavailable"
	errIsolatedAlready  = "xyz.openbmc_project.HardwareIsolation.Error.IsolatedAlready"
	errTooManyResources = "xyz.openbmc_project.Common.Error.TooManyResources"

	// errUnknownObject is what the bus reports when an association object
	// does not exist. The status aggregator treats it as "no status".
	errUnknownObject = "org.freedesktop.DBus.Error.UnknownObject"
)

// Severity values of a fault-status event.
const (
	severityCritical = "xyz.openbmc_project.Logging.Event.SeverityLevel.Critical"
	severityWarning  = "xyz.openbmc_project.Logging.Event.SeverityLevel.Warning"
	severityUnknown  = "xyz.openbmc_project.Logging.Event.SeverityLevel.Unknown"
	severityOk       = "xyz.openbmc_project.Logging.Event.SeverityLevel.Ok"
)
