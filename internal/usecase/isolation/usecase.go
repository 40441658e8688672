package isolation

import (
	"github.com/bmc-toolkit/hwisolation/internal/entity"
	"github.com/bmc-toolkit/hwisolation/internal/registry"
	"github.com/bmc-toolkit/hwisolation/pkg/logger"
)

// UseCase -.
type UseCase struct {
	client   ObjectClient
	registry *registry.Manager
	log      logger.Interface
}

// New -.
func New(client ObjectClient, reg *registry.Manager, log logger.Interface) *UseCase {
	return &UseCase{
		client:   client,
		registry: reg,
		log:      log,
	}
}

// outcome builds an OutcomeRecord from a registry message. A registry lookup
// can only fail on a programming error (the registries are embedded), in
// which case a bare InternalError record is returned.
func (uc *UseCase) outcome(kind entity.OutcomeKind, registryName, messageKey string, args ...string) entity.OutcomeRecord {
	msg, err := uc.registry.LookupMessage(registryName, messageKey)
	if err != nil {
		uc.log.Error(ErrRegistry.Wrap("outcome", "registry.LookupMessage", err))

		return entity.OutcomeRecord{
			Kind:      entity.OutcomeInternalError,
			MessageID: "Base.1.13.0.InternalError",
			Message:   "The request failed due to an internal service error.  The service is still operational.",
		}
	}

	return entity.OutcomeRecord{
		Kind:      kind,
		MessageID: msg.MessageID,
		Message:   msg.FormatMessage(args...),
		Args:      args,
	}
}

func (uc *UseCase) internalError() entity.OutcomeRecord {
	return uc.outcome(entity.OutcomeInternalError, "Base", "InternalError")
}

func (uc *UseCase) resourceNotFound(desc entity.ResourceDescriptor) entity.OutcomeRecord {
	return uc.outcome(entity.OutcomeResourceNotFound, "Base", "ResourceNotFound", desc.Name, desc.ID)
}

// failureOutcome maps a translated outcome kind to the registry message the
// original service reports for it, in the context of the given operation.
func (uc *UseCase) failureOutcome(op Operation, kind entity.OutcomeKind, desc entity.ResourceDescriptor) entity.OutcomeRecord {
	switch kind {
	case entity.OutcomeValidationError:
		return uc.outcome(kind, "Base", "PropertyValueIncorrect", "@odata.id", "false")
	case entity.OutcomePermissionDenied:
		property := "Enabled"
		if op == OpDeisolate {
			property = "Entry"
		}

		return uc.outcome(kind, "Base", "PropertyNotWritable", property)
	case entity.OutcomeResourceBusy:
		return uc.outcome(kind, "Base", "ResourceInStandby")
	case entity.OutcomeAlreadyExists:
		return uc.outcome(kind, "Base", "ResourceAlreadyExists", desc.Name, "Id", desc.ID)
	case entity.OutcomeResourceExhausted:
		return uc.outcome(kind, "Base", "CreateLimitReachedForResource")
	case entity.OutcomeResourceNotFound:
		return uc.resourceNotFound(desc)
	case entity.OutcomeSuccess, entity.OutcomeInternalError:
		return uc.internalError()
	default:
		return uc.internalError()
	}
}

// toPathSlice normalizes an association endpoints property value. The bus
// client may hand the value back either as []string or as a generic slice.
func toPathSlice(value any) ([]entity.ObjectPath, bool) {
	switch v := value.(type) {
	case []entity.ObjectPath:
		return v, true
	case []string:
		paths := make([]entity.ObjectPath, len(v))
		for i := range v {
			paths[i] = entity.ObjectPath(v[i])
		}

		return paths, true
	case []any:
		paths := make([]entity.ObjectPath, len(v))

		for i := range v {
			s, ok := v[i].(string)
			if !ok {
				return nil, false
			}

			paths[i] = entity.ObjectPath(s)
		}

		return paths, true
	default:
		return nil, false
	}
}
