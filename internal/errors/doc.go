// Package errors defines error types for the hello world MCP server.
//
// The dispatch boundary distinguishes three failure classes: a request
// naming an unregistered capability, a tool argument that is missing or
// has the wrong shape, and an unexpected failure inside a handler. All
// error types support error unwrapping and can be checked using errors.Is,
// errors.As, and errors.AsType.
package errors
