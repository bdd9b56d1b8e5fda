package errors

import (
	"errors"
	"fmt"
)

// HelloMCPError is the base interface for all server errors.
type HelloMCPError interface {
	error
	IsHelloMCPError() bool
}

// Compile-time verification that all error types implement HelloMCPError.
var (
	_ HelloMCPError = (*UnknownCapabilityError)(nil)
	_ HelloMCPError = (*InvalidArgumentError)(nil)
	_ HelloMCPError = (*HandlerFailureError)(nil)
)

// Sentinel errors for the three dispatch failure classes.
var (
	// ErrUnknownCapability indicates a request named a tool, resource, or
	// prompt that was never registered.
	ErrUnknownCapability = errors.New("unknown capability")

	// ErrInvalidArgument indicates a required tool argument is missing or
	// has the wrong shape.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrHandlerFailure indicates a handler failed while executing.
	ErrHandlerFailure = errors.New("handler failure")
)

// Capability kinds reported by UnknownCapabilityError.
const (
	KindTool     = "tool"
	KindResource = "resource"
	KindPrompt   = "prompt"
)

// UnknownCapabilityError indicates a dispatch request named a capability
// that is not in the registry. Registries are fixed at startup, so this is
// always a client-side addressing mistake, never a server state issue.
type UnknownCapabilityError struct {
	Kind string
	Name string
}

func (e *UnknownCapabilityError) Error() string {
	if e.Kind == KindResource {
		return fmt.Sprintf("unknown resource URI: %s", e.Name)
	}

	return fmt.Sprintf("unknown %s: %s", e.Kind, e.Name)
}

func (e *UnknownCapabilityError) Unwrap() error {
	return ErrUnknownCapability
}

// IsHelloMCPError implements HelloMCPError.
func (e *UnknownCapabilityError) IsHelloMCPError() bool { return true }

// InvalidArgumentError indicates a tool call carried a missing, empty, or
// wrongly typed argument. Reason holds the client-facing message returned
// in the error content block.
type InvalidArgumentError struct {
	Tool     string
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q for tool %q: %s", e.Argument, e.Tool, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// IsHelloMCPError implements HelloMCPError.
func (e *InvalidArgumentError) IsHelloMCPError() bool { return true }

// HandlerFailureError indicates a handler returned an unexpected error or
// panicked. The dispatch boundary converts it into an error content block
// so the process keeps serving.
type HandlerFailureError struct {
	Capability string
	Err        error
}

func (e *HandlerFailureError) Error() string {
	return fmt.Sprintf("handler for %q failed: %v", e.Capability, e.Err)
}

func (e *HandlerFailureError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrHandlerFailure}
	}

	return []error{ErrHandlerFailure, e.Err}
}

// IsHelloMCPError implements HelloMCPError.
func (e *HandlerFailureError) IsHelloMCPError() bool { return true }
