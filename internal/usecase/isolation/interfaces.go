// Package isolation implements hardware-component lifecycle control: taking a
// physical resource out of system boot (isolation), putting it back
// (de-isolation), and reporting its fault status.
package isolation

import (
	"context"

	"github.com/bmc-toolkit/hwisolation/internal/entity"
)

// ObjectClient is the capability object for the remote object model. It is
// injected into the use case so tests can substitute a double for the real
// D-Bus connection.
type ObjectClient interface {
	// Call invokes a method on the given service object.
	Call(ctx context.Context, service string, path entity.ObjectPath, iface, method string, args ...any) error
	// GetProperty reads a single property.
	GetProperty(ctx context.Context, service string, path entity.ObjectPath, iface, property string) (any, error)
	// GetAllProperties reads the full property set of one interface.
	GetAllProperties(ctx context.Context, service string, path entity.ObjectPath, iface string) (map[string]any, error)
	// GetSubTreePaths asks the directory service for every object under root
	// implementing all of the given interfaces.
	GetSubTreePaths(ctx context.Context, root entity.ObjectPath, depth int, interfaces []string) ([]entity.ObjectPath, error)
	// GetObject asks the directory service which services provide the given
	// interfaces at the given path. The result maps service name to the
	// interfaces it implements there.
	GetObject(ctx context.Context, path entity.ObjectPath, interfaces []string) (map[string][]string, error)
}
