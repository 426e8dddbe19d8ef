package swiftcli

import (
	"strings"
)

// ObjectPath is an absolute storage path: "/container" or "/container/object".
// The empty string and "/" both denote the account itself.
type ObjectPath string

// NormalizePath returns p with a leading slash. It is idempotent.
func NormalizePath(p string) ObjectPath {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return ObjectPath(p)
}

// NormalizeDir returns p with both a leading and a trailing slash.
func NormalizeDir(p string) ObjectPath {
	np := string(NormalizePath(p))
	if !strings.HasSuffix(np, "/") {
		np += "/"
	}
	return ObjectPath(np)
}

// Join appends name to a directory path.
func (p ObjectPath) Join(name string) ObjectPath {
	return ObjectPath(strings.TrimSuffix(string(p), "/") + "/" + strings.TrimPrefix(name, "/"))
}

// Container returns the first path segment.
func (p ObjectPath) Container() string {
	trimmed := strings.TrimPrefix(string(p), "/")
	container, _, _ := strings.Cut(trimmed, "/")
	return container
}

// Object returns everything after the container segment, without the leading slash.
func (p ObjectPath) Object() string {
	trimmed := strings.TrimPrefix(string(p), "/")
	_, object, _ := strings.Cut(trimmed, "/")
	return object
}

// IsAccount reports whether p addresses the account rather than a container.
func (p ObjectPath) IsAccount() bool {
	return p.Container() == ""
}

// IsContainer reports whether p addresses a container only.
func (p ObjectPath) IsContainer() bool {
	return p.Container() != "" && p.Object() == ""
}

// Trim returns p without a trailing slash, keeping "/" for the account.
func (p ObjectPath) Trim() ObjectPath {
	s := strings.TrimSuffix(string(p), "/")
	if s == "" {
		return "/"
	}
	return ObjectPath(s)
}

func (p ObjectPath) String() string {
	return string(p)
}
