// Package entity defines the domain types shared across use cases and controllers.
package entity

import "strings"

// ObjectPath is an opaque hierarchical path naming one object in the remote
// object model (a D-Bus object path).
type ObjectPath string

// String -.
func (p ObjectPath) String() string {
	return string(p)
}

// Filename returns the final path segment, or an empty string for the root
// path and the empty path.
func (p ObjectPath) Filename() string {
	s := strings.TrimRight(string(p), "/")

	idx := strings.LastIndex(s, "/")
	if idx < 0 {
		return ""
	}

	return s[idx+1:]
}

// Parent returns the path with the final segment removed. The parent of the
// root path is the root path itself.
func (p ObjectPath) Parent() ObjectPath {
	s := strings.TrimRight(string(p), "/")

	idx := strings.LastIndex(s, "/")
	if idx <= 0 {
		return ObjectPath("/")
	}

	return ObjectPath(s[:idx])
}

// Append returns the path extended with one more segment.
func (p ObjectPath) Append(segment string) ObjectPath {
	return ObjectPath(strings.TrimRight(string(p), "/") + "/" + segment)
}
