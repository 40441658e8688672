package isolation

import "github.com/bmc-toolkit/hwisolation/pkg/consoleerrors"

var ErrIsolationUseCase = consoleerrors.CreateConsoleError("IsolationUseCase")

var (
	ErrRegistry   = RegistryError{Console: ErrIsolationUseCase}
	ErrDirectory  = DirectoryError{Console: ErrIsolationUseCase}
	ErrCapability = CapabilityError{Console: ErrIsolationUseCase}
	ErrRemoteCall = RemoteCallError{Console: ErrIsolationUseCase}
)

// RegistryError reports a failed message-registry lookup.
type RegistryError struct {
	Console consoleerrors.InternalError
}

func (e RegistryError) Error() string {
	return e.Console.Error()
}

func (e RegistryError) Wrap(call, function string, err error) error {
	_ = e.Console.Wrap(call, function, err)
	e.Console.Message = "message registry lookup failed"

	return e
}

// DirectoryError reports a failed directory-service lookup.
type DirectoryError struct {
	Console consoleerrors.InternalError
}

func (e DirectoryError) Error() string {
	return e.Console.Error()
}

func (e DirectoryError) Wrap(call, function string, err error) error {
	_ = e.Console.Wrap(call, function, err)
	e.Console.Message = "directory service lookup failed"

	return e
}

// CapabilityError reports inconsistent capability-provider state, such as
// more than one service implementing isolation.
type CapabilityError struct {
	Console consoleerrors.InternalError
}

func (e CapabilityError) Error() string {
	return e.Console.Error()
}

func (e CapabilityError) Wrap(call, function string, err error) error {
	_ = e.Console.Wrap(call, function, err)
	e.Console.Message = "capability provider resolution failed"

	return e
}

// RemoteCallError reports a failed remote method call or property read.
type RemoteCallError struct {
	Console consoleerrors.InternalError
}

func (e RemoteCallError) Error() string {
	return e.Console.Error()
}

func (e RemoteCallError) Wrap(call, function string, err error) error {
	_ = e.Console.Wrap(call, function, err)
	e.Console.Message = "remote call failed"

	return e
}
