package isolation

import (
	"github.com/bmc-toolkit/hwisolation/internal/entity"
)

// Operation is the calling context of a remote-error translation. Different
// operations recognize different remote error vocabularies.
type Operation int

const (
	OpIsolate Operation = iota
	OpDeisolate
	OpResolveCapability
)

// String -.
func (op Operation) String() string {
	switch op {
	case OpIsolate:
		return "Isolate"
	case OpDeisolate:
		return "Deisolate"
	case OpResolveCapability:
		return "ResolveCapability"
	default:
		return "Unknown"
	}
}

// errorOutcomes maps (operation, remote error identifier) to an outcome kind.
// Loaded once; any identifier missing here falls back to InternalError.
var errorOutcomes = map[Operation]map[string]entity.OutcomeKind{
	OpIsolate: {
		errInvalidArgument:  entity.OutcomeValidationError,
		errNotAllowed:       entity.OutcomePermissionDenied,
		errUnavailable:      entity.OutcomeResourceBusy,
		errIsolatedAlready:  entity.OutcomeAlreadyExists,
		errTooManyResources: entity.OutcomeResourceExhausted,
	},
	OpDeisolate: {
		errNotAllowed:  entity.OutcomePermissionDenied,
		errUnavailable: entity.OutcomeResourceBusy,
	},
	OpResolveCapability: {},
}

// Translate maps a remote error identifier to an outcome kind for the given
// operation. Unrecognized identifiers map to InternalError; that fallback is
// logged so the raw identifier is preserved for operators.
func (uc *UseCase) Translate(op Operation, remoteErrorName string) entity.OutcomeKind {
	if kinds, ok := errorOutcomes[op]; ok {
		if kind, ok := kinds[remoteErrorName]; ok {
			return kind
		}
	}

	uc.log.Error("unsupported remote error %q in %s context, returning InternalError", remoteErrorName, op)

	return entity.OutcomeInternalError
}

// translateFailure turns a remote-call failure into a caller-facing outcome.
// Failures without a decodable error payload collapse to InternalError.
func (uc *UseCase) translateFailure(op Operation, desc entity.ResourceDescriptor, err error) entity.OutcomeRecord {
	remote, ok := entity.AsRemoteError(err)
	if !ok {
		uc.log.Error(ErrRemoteCall.Wrap("translateFailure", op.String(), err))

		return uc.internalError()
	}

	uc.log.Error("remote error [%s: %s] during %s of %s", remote.Name, remote.Message, op, desc.ObjectPath)

	return uc.failureOutcome(op, uc.Translate(op, remote.Name), desc)
}
