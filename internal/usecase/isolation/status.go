package isolation

import (
	"context"
	"time"

	"github.com/bmc-toolkit/hwisolation/internal/entity"
)

// GetIsolationStatus resolves the resource and aggregates its fault status.
// A nil condition with a Success outcome means the resource has no fault
// record, which is a normal state rather than a failure.
func (uc *UseCase) GetIsolationStatus(ctx context.Context, resourceName, resourceID string, interfaces []string) (*entity.StatusCondition, entity.OutcomeRecord) {
	desc := entity.ResourceDescriptor{Name: resourceName, ID: resourceID}

	resourceIfaces := make([]string, 0, len(interfaces)+1)
	resourceIfaces = append(resourceIfaces, interfaces...)
	resourceIfaces = append(resourceIfaces, EnableInterface)

	path, failure := uc.Resolve(ctx, resourceIfaces, desc)
	if failure != nil {
		return nil, *failure
	}

	desc.ObjectPath = path

	condition, failure := uc.Aggregate(ctx, desc.ObjectPath)
	if failure != nil {
		statusAggregations.WithLabelValues(failure.Kind.String()).Inc()

		return nil, *failure
	}

	statusAggregations.WithLabelValues(entity.OutcomeSuccess.String()).Inc()

	return condition, uc.outcome(entity.OutcomeSuccess, "Base", "Success")
}

// Aggregate walks the resource's status-event association to its fault-status
// record and builds a normalized condition from the record's properties. A
// nil, nil return means no fault record exists.
func (uc *UseCase) Aggregate(ctx context.Context, resource entity.ObjectPath) (*entity.StatusCondition, *entity.OutcomeRecord) {
	eventPath, failure := uc.statusEvent(ctx, resource)
	if failure != nil {
		return nil, failure
	}

	if eventPath == "" {
		// No event, so the hardware has no status condition to report.
		return nil, nil
	}

	provider, failure := uc.statusEventProvider(ctx, eventPath)
	if failure != nil {
		return nil, failure
	}

	properties, err := uc.client.GetAllProperties(ctx, provider, eventPath, LoggingEventInterface)
	if err != nil {
		uc.log.Error(ErrRemoteCall.Wrap("Aggregate", "client.GetAllProperties", err))

		return nil, uc.failurePtr()
	}

	return uc.buildCondition(eventPath, properties)
}

// statusEvent returns the object path of the resource's fault-status event,
// or an empty path when the resource has none.
func (uc *UseCase) statusEvent(ctx context.Context, resource entity.ObjectPath) (entity.ObjectPath, *entity.OutcomeRecord) {
	value, err := uc.client.GetProperty(ctx, MapperService, resource.Append(EventLogSegment),
		AssociationInterface, EndpointsProperty)
	if err != nil {
		if remote, ok := entity.AsRemoteError(err); ok && remote.Name == errUnknownObject {
			// The association does not exist, meaning no status was recorded.
			return "", nil
		}

		uc.log.Error(ErrRemoteCall.Wrap("statusEvent", "client.GetProperty", err))

		return "", uc.failurePtr()
	}

	endpoints, ok := toPathSlice(value)
	if !ok {
		uc.log.Error("failed to get association endpoints for %s", resource)

		return "", uc.failurePtr()
	}

	// The isolation manager appends newest state, so when several status
	// events exist the last one wins.
	var eventPath entity.ObjectPath

	for _, endpoint := range endpoints {
		if endpoint.Parent().Filename() == StatusSegment {
			eventPath = endpoint
		}
	}

	return eventPath, nil
}

// statusEventProvider locates the one service hosting the status event object.
func (uc *UseCase) statusEventProvider(ctx context.Context, eventPath entity.ObjectPath) (string, *entity.OutcomeRecord) {
	providers, err := uc.client.GetObject(ctx, eventPath, []string{LoggingEventInterface})
	if err != nil {
		uc.log.Error(ErrCapability.Wrap("statusEventProvider", "client.GetObject", err))

		return "", uc.failurePtr()
	}

	if len(providers) != 1 {
		uc.log.Error("%d services host the status event object %s, expected exactly one", len(providers), eventPath)

		return "", uc.failurePtr()
	}

	for provider := range providers {
		if provider != "" {
			return provider, nil
		}
	}

	uc.log.Error("the retrieved status event provider name is empty")

	return "", uc.failurePtr()
}

func (uc *UseCase) buildCondition(eventPath entity.ObjectPath, properties map[string]any) (*entity.StatusCondition, *entity.OutcomeRecord) {
	condition := &entity.StatusCondition{}

	if raw, ok := properties["Timestamp"]; ok {
		seconds, ok := toUint64(raw)
		if !ok {
			uc.log.Error("failed to get the Timestamp from object %s", eventPath)

			return nil, uc.failurePtr()
		}

		condition.Timestamp = time.Unix(int64(seconds), 0).UTC()
	}

	if raw, ok := properties["Message"]; ok {
		reason, ok := raw.(string)
		if !ok {
			uc.log.Error("failed to get the Message from object %s", eventPath)

			return nil, uc.failurePtr()
		}

		msg, err := uc.registry.LookupMessage("OpenBMC", "HardwareIsolationReason")
		if err != nil {
			uc.log.Error(ErrRegistry.Wrap("buildCondition", "registry.LookupMessage", err))

			return nil, uc.failurePtr()
		}

		condition.MessageID = msg.MessageID
		condition.MessageArgs = []string{reason}
		condition.Message = msg.FormatMessage(reason)
	}

	if raw, ok := properties["Severity"]; ok {
		value, ok := raw.(string)
		if !ok {
			uc.log.Error("failed to get the Severity from object %s", eventPath)

			return nil, uc.failurePtr()
		}

		severity, ok := mapSeverity(value)
		if !ok {
			uc.log.Error("unsupported Severity %q from object %s", value, eventPath)

			return nil, uc.failurePtr()
		}

		condition.Severity = severity
	}

	if raw, ok := properties["Associations"]; ok {
		condition.LogEntryPath = errorLogEntry(raw)
	}

	return condition, nil
}

func (uc *UseCase) failurePtr() *entity.OutcomeRecord {
	failure := uc.internalError()

	return &failure
}

// mapSeverity maps a remote severity value onto the three-way condition
// severity. Unknown deliberately maps to Warning; any unlisted value is an
// unrecoverable internal error for the aggregation.
func mapSeverity(value string) (entity.Severity, bool) {
	switch value {
	case severityCritical:
		return entity.SeverityCritical, true
	case severityWarning, severityUnknown:
		return entity.SeverityWarning, true
	case severityOk:
		return entity.SeverityOK, true
	default:
		return "", false
	}
}

// errorLogEntry extracts the fault-log entry path from an Associations
// property value, which arrives as a list of (forward, reverse, path) tuples.
func errorLogEntry(value any) entity.ObjectPath {
	tuples, ok := value.([][]any)
	if !ok {
		generic, genericOK := value.([]any)
		if !genericOK {
			return ""
		}

		tuples = make([][]any, 0, len(generic))

		for _, t := range generic {
			if tuple, tupleOK := t.([]any); tupleOK {
				tuples = append(tuples, tuple)
			}
		}
	}

	for _, tuple := range tuples {
		if len(tuple) != 3 {
			continue
		}

		forward, ok := tuple[0].(string)
		if !ok || forward != ErrorLogAssociation {
			continue
		}

		if path, ok := tuple[2].(string); ok {
			return entity.ObjectPath(path)
		}
	}

	return ""
}

func toUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case int64:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case int:
		return uint64(v), true
	default:
		return 0, false
	}
}
