package isolation

import (
	"context"

	"github.com/bmc-toolkit/hwisolation/internal/entity"
)

// Resolve finds the canonical object identity of the resource with the given
// id among the inventory objects implementing all of the given interfaces.
// On failure the returned outcome is non-nil and terminal for the request:
// ResourceNotFound when no candidate matches, InternalError when the
// directory lookup itself fails. Lookups are never retried here.
func (uc *UseCase) Resolve(ctx context.Context, interfaces []string, desc entity.ResourceDescriptor) (entity.ObjectPath, *entity.OutcomeRecord) {
	candidates, err := uc.client.GetSubTreePaths(ctx, InventoryRoot, 0, interfaces)
	if err != nil {
		uc.log.Error(ErrDirectory.Wrap("Resolve", "client.GetSubTreePaths", err))

		failure := uc.internalError()

		return "", &failure
	}

	for _, candidate := range candidates {
		if candidate.Filename() == desc.ID {
			return candidate, nil
		}
	}

	uc.log.Warn("resource %s with id %s not present in the inventory", desc.Name, desc.ID)

	failure := uc.resourceNotFound(desc)

	return "", &failure
}
