// Package sysbus implements the remote object-model primitives on top of the
// system D-Bus connection.
package sysbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/bmc-toolkit/hwisolation/internal/entity"
	"github.com/bmc-toolkit/hwisolation/pkg/logger"
)

const (
	mapperService   = "xyz.openbmc_project.ObjectMapper"
	mapperPath      = dbus.ObjectPath("/xyz/openbmc_project/object_mapper")
	mapperInterface = "xyz.openbmc_project.ObjectMapper"

	propertiesInterface = "org.freedesktop.DBus.Properties"

	_defaultCallTimeout = 30 * time.Second
)

// ErrNoConnection is returned when the bus connection could not be opened.
var ErrNoConnection = errors.New("failed to connect to the system bus")

// Client is the ObjectClient implementation used in production. One shared
// connection; godbus serializes concurrent calls internally.
type Client struct {
	conn    *dbus.Conn
	log     logger.Interface
	timeout time.Duration
}

// Option -.
type Option func(*Client)

// CallTimeout bounds every remote call issued through the client.
func CallTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New connects to the system bus.
func New(log logger.Interface, opts ...Option) (*Client, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoConnection, err)
	}

	return newWithConn(conn, log, opts...), nil
}

// NewWithConn wraps an existing connection, e.g. a session bus in integration
// tests.
func NewWithConn(conn *dbus.Conn, log logger.Interface, opts ...Option) *Client {
	return newWithConn(conn, log, opts...)
}

func newWithConn(conn *dbus.Conn, log logger.Interface, opts ...Option) *Client {
	c := &Client{
		conn:    conn,
		log:     log,
		timeout: _defaultCallTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Close -.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Call invokes a method on the given service object.
func (c *Client) Call(ctx context.Context, service string, path entity.ObjectPath, iface, method string, args ...any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	obj := c.conn.Object(service, dbus.ObjectPath(path))
	call := obj.CallWithContext(ctx, iface+"."+method, 0, marshalArgs(args)...)

	observeCall(method, call.Err)

	return convertError(call.Err)
}

// GetProperty reads a single property.
func (c *Client) GetProperty(ctx context.Context, service string, path entity.ObjectPath, iface, property string) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	obj := c.conn.Object(service, dbus.ObjectPath(path))

	var value dbus.Variant

	call := obj.CallWithContext(ctx, propertiesInterface+".Get", 0, iface, property)

	observeCall("Get", call.Err)

	if call.Err != nil {
		return nil, convertError(call.Err)
	}

	if err := call.Store(&value); err != nil {
		return nil, convertError(err)
	}

	return value.Value(), nil
}

// GetAllProperties reads the full property set of one interface.
func (c *Client) GetAllProperties(ctx context.Context, service string, path entity.ObjectPath, iface string) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	obj := c.conn.Object(service, dbus.ObjectPath(path))

	var values map[string]dbus.Variant

	call := obj.CallWithContext(ctx, propertiesInterface+".GetAll", 0, iface)

	observeCall("GetAll", call.Err)

	if call.Err != nil {
		return nil, convertError(call.Err)
	}

	if err := call.Store(&values); err != nil {
		return nil, convertError(err)
	}

	properties := make(map[string]any, len(values))
	for name, value := range values {
		properties[name] = value.Value()
	}

	return properties, nil
}

// GetSubTreePaths asks the mapper for every object under root implementing
// all of the given interfaces.
func (c *Client) GetSubTreePaths(ctx context.Context, root entity.ObjectPath, depth int, interfaces []string) ([]entity.ObjectPath, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	obj := c.conn.Object(mapperService, mapperPath)

	var paths []string

	call := obj.CallWithContext(ctx, mapperInterface+".GetSubTreePaths", 0, dbus.ObjectPath(root), depth, interfaces)

	observeCall("GetSubTreePaths", call.Err)

	if call.Err != nil {
		return nil, convertError(call.Err)
	}

	if err := call.Store(&paths); err != nil {
		return nil, convertError(err)
	}

	result := make([]entity.ObjectPath, len(paths))
	for i := range paths {
		result[i] = entity.ObjectPath(paths[i])
	}

	return result, nil
}

// GetObject asks the mapper which services provide the given interfaces at
// the given path.
func (c *Client) GetObject(ctx context.Context, path entity.ObjectPath, interfaces []string) (map[string][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	obj := c.conn.Object(mapperService, mapperPath)

	var providers map[string][]string

	call := obj.CallWithContext(ctx, mapperInterface+".GetObject", 0, dbus.ObjectPath(path), interfaces)

	observeCall("GetObject", call.Err)

	if call.Err != nil {
		return nil, convertError(call.Err)
	}

	if err := call.Store(&providers); err != nil {
		return nil, convertError(err)
	}

	return providers, nil
}

// marshalArgs converts domain argument types to their wire representation.
func marshalArgs(args []any) []any {
	out := make([]any, len(args))

	for i, arg := range args {
		if path, ok := arg.(entity.ObjectPath); ok {
			out[i] = dbus.ObjectPath(path)

			continue
		}

		out[i] = arg
	}

	return out
}

// convertError maps a bus failure onto the domain error model. Failures that
// carry a structured error payload become RemoteError; everything else is
// passed through and will be reported as an internal error by the caller.
func convertError(err error) error {
	if err == nil {
		return nil
	}

	var dbusErr dbus.Error
	if errors.As(err, &dbusErr) {
		remote := &entity.RemoteError{Name: dbusErr.Name}

		if len(dbusErr.Body) > 0 {
			if msg, ok := dbusErr.Body[0].(string); ok {
				remote.Message = msg
			}
		}

		return remote
	}

	return err
}
