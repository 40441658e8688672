package isolation

import (
	"context"

	"github.com/bmc-toolkit/hwisolation/internal/entity"
)

// ProcessIsolationRequest resolves the resource named by (resourceName,
// resourceId) among the inventory objects implementing the given interfaces,
// then isolates it (enabled=false) or de-isolates it (enabled=true). The
// steps run strictly in sequence: resolve, locate the capability provider,
// execute. Every failure is terminal; nothing is rolled back and nothing is
// retried.
func (uc *UseCase) ProcessIsolationRequest(ctx context.Context, resourceName, resourceID string, enabled bool, interfaces []string) entity.OutcomeRecord {
	op := OpIsolate
	if enabled {
		op = OpDeisolate
	}

	outcome := uc.processIsolation(ctx, op, resourceName, resourceID, interfaces)
	isolationRequests.WithLabelValues(op.String(), outcome.Kind.String()).Inc()

	return outcome
}

func (uc *UseCase) processIsolation(ctx context.Context, op Operation, resourceName, resourceID string, interfaces []string) entity.OutcomeRecord {
	desc := entity.ResourceDescriptor{Name: resourceName, ID: resourceID}

	// Resolution always includes the Enable interface, which is what makes a
	// resource isolatable in the first place.
	resourceIfaces := make([]string, 0, len(interfaces)+1)
	resourceIfaces = append(resourceIfaces, interfaces...)
	resourceIfaces = append(resourceIfaces, EnableInterface)

	path, failure := uc.Resolve(ctx, resourceIfaces, desc)
	if failure != nil {
		return *failure
	}

	desc.ObjectPath = path

	provider, failure := uc.locateProvider(ctx, desc)
	if failure != nil {
		return *failure
	}

	if op == OpIsolate {
		return uc.isolate(ctx, desc, provider)
	}

	return uc.deisolate(ctx, desc, provider)
}

// locateProvider discovers the one service implementing the isolation
// capability at the fixed isolation root. Zero providers, more than one, or
// an empty service name are configuration faults: logged with full context
// and reported as InternalError, never retried.
func (uc *UseCase) locateProvider(ctx context.Context, desc entity.ResourceDescriptor) (string, *entity.OutcomeRecord) {
	providers, err := uc.client.GetObject(ctx, IsolationRoot, []string{IsolationCreateInterface})
	if err != nil {
		uc.log.Error(ErrCapability.Wrap("locateProvider", "client.GetObject", err))

		failure := uc.internalError()

		return "", &failure
	}

	if len(providers) != 1 {
		uc.log.Error("%d services implement %s at %s while isolating %s, expected exactly one",
			len(providers), IsolationCreateInterface, IsolationRoot, desc.ObjectPath)

		failure := uc.internalError()

		return "", &failure
	}

	for provider := range providers {
		if provider == "" {
			break
		}

		return provider, nil
	}

	uc.log.Error("the retrieved isolation provider name is empty")

	failure := uc.internalError()

	return "", &failure
}

// isolate creates a manual isolation entry for the resolved resource.
func (uc *UseCase) isolate(ctx context.Context, desc entity.ResourceDescriptor, provider string) entity.OutcomeRecord {
	err := uc.client.Call(ctx, provider, IsolationRoot, IsolationCreateInterface, IsolationCreateMethod,
		desc.ObjectPath, IsolationModeManual)
	if err != nil {
		return uc.translateFailure(OpIsolate, desc, err)
	}

	return uc.outcome(entity.OutcomeSuccess, "Base", "Created")
}

// deisolate deletes the resource's current isolation entry. A resource with
// no tracked isolation entry is inconsistent state, not a no-op.
func (uc *UseCase) deisolate(ctx context.Context, desc entity.ResourceDescriptor, provider string) entity.OutcomeRecord {
	entry, failure := uc.isolationEntry(ctx, desc)
	if failure != nil {
		return *failure
	}

	if err := uc.client.Call(ctx, provider, entry, DeleteInterface, DeleteMethod); err != nil {
		return uc.translateFailure(OpDeisolate, desc, err)
	}

	return uc.outcome(entity.OutcomeSuccess, "Base", "Success")
}

// isolationEntry reads the resource's isolation-entry association and picks
// the last endpoint. The isolation manager appends newest state, so the last
// entry is authoritative when several exist.
func (uc *UseCase) isolationEntry(ctx context.Context, desc entity.ResourceDescriptor) (entity.ObjectPath, *entity.OutcomeRecord) {
	value, err := uc.client.GetProperty(ctx, MapperService, desc.ObjectPath.Append(IsolationEntrySegment),
		AssociationInterface, EndpointsProperty)
	if err != nil {
		uc.log.Error(ErrRemoteCall.Wrap("isolationEntry", "client.GetProperty", err))

		failure := uc.internalError()

		return "", &failure
	}

	endpoints, ok := toPathSlice(value)
	if !ok || len(endpoints) == 0 {
		uc.log.Error("failed to get isolation entry endpoints for %s", desc.ObjectPath)

		failure := uc.internalError()

		return "", &failure
	}

	return endpoints[len(endpoints)-1], nil
}
