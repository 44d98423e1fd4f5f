// Package apperr carries the failure taxonomy of the shell operations.
// Errors stay typed inside the module and collapse to their message text
// at the host boundary.
package apperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies where an operation failed.
type Kind int

const (
	KindUnknown Kind = iota
	// KindTransport covers failures before a response status is known
	// (connection, DNS, TLS, malformed URL).
	KindTransport
	// KindStatus covers non-2xx responses from the remote server.
	KindStatus
	// KindBodyRead covers a response stream truncated mid-transfer.
	KindBodyRead
	// KindFilesystem covers create/write/read failures on local files.
	KindFilesystem
	// KindLaunch covers a failed platform open-command spawn.
	KindLaunch
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindBodyRead:
		return "bodyread"
	case KindFilesystem:
		return "filesystem"
	case KindLaunch:
		return "launch"
	}
	return "unknown"
}

// Error pairs a kind with the message the host shell will see.
type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

// New builds an error of the given kind from a format string.
func New(kind Kind, format string, v ...interface{}) error {
	return &Error{kind: kind, err: fmt.Errorf(format, v...)}
}

// Wrap annotates cause with a message and tags it with kind.
func Wrap(kind Kind, cause error, message string) error {
	return &Error{kind: kind, err: errors.Wrap(cause, message)}
}

// KindOf reports the kind of err, unwrapping as needed.
// Returns KindUnknown for nil and untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}
