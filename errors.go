package hellomcp

import "github.com/wagiedev/hello-world-mcp/internal/errors"

// Re-export error types from internal package

// UnknownCapabilityError indicates a request named an unregistered tool,
// resource, or prompt.
type UnknownCapabilityError = errors.UnknownCapabilityError

// InvalidArgumentError indicates a tool argument was missing or malformed.
type InvalidArgumentError = errors.InvalidArgumentError

// HandlerFailureError indicates a handler failed or panicked while
// executing.
type HandlerFailureError = errors.HandlerFailureError

// HelloMCPError is the base interface for all server errors.
type HelloMCPError = errors.HelloMCPError

// Re-export sentinel errors from internal package.
var (
	// ErrUnknownCapability indicates the requested capability is not
	// registered.
	ErrUnknownCapability = errors.ErrUnknownCapability

	// ErrInvalidArgument indicates a required argument is missing or has
	// the wrong shape.
	ErrInvalidArgument = errors.ErrInvalidArgument

	// ErrHandlerFailure indicates a handler failed during execution.
	ErrHandlerFailure = errors.ErrHandlerFailure
)
