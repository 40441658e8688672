// Package v1 implements the Redfish v1 surface for hardware isolation.
package v1

import (
	"context"

	"github.com/bmc-toolkit/hwisolation/internal/entity"
)

// Isolator is the slice of the isolation use case the handlers consume.
type Isolator interface {
	ProcessIsolationRequest(ctx context.Context, resourceName, resourceID string, enabled bool, interfaces []string) entity.OutcomeRecord
	GetIsolationStatus(ctx context.Context, resourceName, resourceID string, interfaces []string) (*entity.StatusCondition, entity.OutcomeRecord)
}
