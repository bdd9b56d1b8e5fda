package hellomcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	srverrors "github.com/wagiedev/hello-world-mcp/internal/errors"
)

const (
	// serverName identifies the server on the wire during initialization.
	serverName = "hello-world-mcp"

	// serverTitle is the human-readable name reported in the server://info
	// manifest.
	serverTitle = "Hello World MCP Server"

	serverVersion     = "1.0.0"
	serverDescription = "A simple MCP server for learning purposes"
)

// registeredTool pairs a tool descriptor with its dispatch handler.
type registeredTool struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

// registeredResource pairs a resource descriptor with its read handler.
type registeredResource struct {
	resource *mcp.Resource
	handler  mcp.ResourceHandler
}

// registeredPrompt pairs a prompt descriptor with its render handler.
type registeredPrompt struct {
	prompt  *mcp.Prompt
	handler mcp.PromptHandler
}

// Server is a Hello World MCP server exposing three tools, one resource,
// and one prompt over an MCP transport.
//
// Alongside the underlying protocol server it keeps its own ordered
// registries, so capabilities can be listed and dispatched directly without
// a transport attached. The registries are filled once by NewServer and
// never mutated afterwards; a Server is safe for concurrent use.
type Server struct {
	log        *slog.Logger
	clock      func() time.Time
	instanceID string
	startedAt  time.Time

	mcpServer *mcp.Server

	tools     []registeredTool
	toolIndex map[string]int

	resources     []registeredResource
	resourceIndex map[string]int

	prompts     []registeredPrompt
	promptIndex map[string]int
}

// NewServer creates a Server with every capability registered.
func NewServer(opts ...Option) *Server {
	options := applyServerOptions(opts)

	clock := options.clock
	if clock == nil {
		clock = time.Now
	}

	s := &Server{
		log:           loggerOrNop(options.logger, "server"),
		clock:         clock,
		instanceID:    ulid.Make().String(),
		toolIndex:     make(map[string]int, 4),
		resourceIndex: make(map[string]int, 1),
		promptIndex:   make(map[string]int, 1),
	}
	s.startedAt = clock().UTC()

	s.mcpServer = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	s.addTool(helloWorldTool(), s.helloWorldHandler())
	s.addTool(currentTimeTool(), s.currentTimeHandler())
	s.addTool(echoTool(), s.echoHandler())
	s.addResource(serverInfoResource(), s.serverInfoHandler())
	s.addPrompt(greetingPrompt(), s.greetingHandler())

	return s
}

// addTool registers a tool under its descriptor name. The handler is
// wrapped so failures surface as error content blocks on every dispatch
// path.
func (s *Server) addTool(tool *mcp.Tool, handler mcp.ToolHandler) {
	wrapped := s.wrapToolHandler(tool.Name, handler)
	s.toolIndex[tool.Name] = len(s.tools)
	s.tools = append(s.tools, registeredTool{tool: tool, handler: wrapped})
	s.mcpServer.AddTool(tool, wrapped)
}

// addResource registers a resource under its descriptor URI.
func (s *Server) addResource(resource *mcp.Resource, handler mcp.ResourceHandler) {
	wrapped := s.wrapResourceHandler(resource.URI, handler)
	s.resourceIndex[resource.URI] = len(s.resources)
	s.resources = append(s.resources, registeredResource{resource: resource, handler: wrapped})
	s.mcpServer.AddResource(resource, wrapped)
}

// addPrompt registers a prompt under its descriptor name.
func (s *Server) addPrompt(prompt *mcp.Prompt, handler mcp.PromptHandler) {
	wrapped := s.wrapPromptHandler(prompt.Name, handler)
	s.promptIndex[prompt.Name] = len(s.prompts)
	s.prompts = append(s.prompts, registeredPrompt{prompt: prompt, handler: wrapped})
	s.mcpServer.AddPrompt(prompt, wrapped)
}

// wrapToolHandler converts handler errors and panics into error content
// blocks. The wrapped handler never returns a non-nil error, so a tool
// failure is always a result the client can read, never a dropped request.
func (s *Server) wrapToolHandler(name string, handler mcp.ToolHandler) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		requestID := ulid.Make().String()

		defer func() {
			if r := recover(); r != nil {
				failure := &srverrors.HandlerFailureError{
					Capability: name,
					Err:        fmt.Errorf("panic: %v", r),
				}
				s.log.Error("Tool handler panicked", "tool", name, "request_id", requestID, "panic", r)
				result, err = errorResult(failure.Error()), nil
			}
		}()

		s.log.Debug("Dispatching tool call", "tool", name, "request_id", requestID)

		result, err = handler(ctx, req)
		if err != nil {
			s.log.Debug("Tool call failed", "tool", name, "request_id", requestID, "error", err)

			return errorResult(dispatchErrorText(name, err)), nil
		}

		return result, nil
	}
}

// wrapResourceHandler converts handler errors and panics into handler
// failure errors carrying the resource URI.
func (s *Server) wrapResourceHandler(uri string, handler mcp.ResourceHandler) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (result *mcp.ReadResourceResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("Resource handler panicked", "uri", uri, "panic", r)
				result = nil
				err = &srverrors.HandlerFailureError{
					Capability: uri,
					Err:        fmt.Errorf("panic: %v", r),
				}
			}
		}()

		result, err = handler(ctx, req)
		if err != nil {
			s.log.Debug("Resource read failed", "uri", uri, "error", err)

			return nil, &srverrors.HandlerFailureError{Capability: uri, Err: err}
		}

		return result, nil
	}
}

// wrapPromptHandler converts handler errors and panics into handler
// failure errors carrying the prompt name.
func (s *Server) wrapPromptHandler(name string, handler mcp.PromptHandler) mcp.PromptHandler {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (result *mcp.GetPromptResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("Prompt handler panicked", "prompt", name, "panic", r)
				result = nil
				err = &srverrors.HandlerFailureError{
					Capability: name,
					Err:        fmt.Errorf("panic: %v", r),
				}
			}
		}()

		result, err = handler(ctx, req)
		if err != nil {
			s.log.Debug("Prompt render failed", "prompt", name, "error", err)

			return nil, &srverrors.HandlerFailureError{Capability: name, Err: err}
		}

		return result, nil
	}
}

// dispatchErrorText renders a handler error as client-facing text.
// Invalid argument errors keep their validation message verbatim; anything
// else is reported as a handler failure.
func dispatchErrorText(name string, err error) string {
	if invalid, ok := errors.AsType[*srverrors.InvalidArgumentError](err); ok {
		return invalid.Reason
	}
	if failure, ok := errors.AsType[*srverrors.HandlerFailureError](err); ok {
		return failure.Error()
	}

	failure := &srverrors.HandlerFailureError{Capability: name, Err: err}

	return failure.Error()
}

// CallTool dispatches a tool call by name. Failures of every class come
// back as error content blocks in the result, matching what a client sees
// over the wire; CallTool never panics on bad input.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	idx, ok := s.toolIndex[name]
	if !ok {
		unknown := &srverrors.UnknownCapabilityError{Kind: srverrors.KindTool, Name: name}
		s.log.Debug("Tool not registered", "tool", name)

		return errorResult(unknown.Error())
	}

	raw, err := json.Marshal(args)
	if err != nil {
		return errorResult(dispatchErrorText(name, fmt.Errorf("encode arguments: %w", err)))
	}

	result, err := s.tools[idx].handler(ctx, &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      name,
			Arguments: raw,
		},
	})
	if err != nil {
		// Wrapped handlers return failures in the result, not as errors.
		return errorResult(dispatchErrorText(name, err))
	}

	return result
}

// ReadResource reads a registered resource by URI. An unregistered URI
// yields an UnknownCapabilityError; handler failures yield a
// HandlerFailureError.
func (s *Server) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	idx, ok := s.resourceIndex[uri]
	if !ok {
		s.log.Debug("Resource not registered", "uri", uri)

		return nil, &srverrors.UnknownCapabilityError{Kind: srverrors.KindResource, Name: uri}
	}

	return s.resources[idx].handler(ctx, &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	})
}

// GetPrompt renders a registered prompt by name. An unregistered name
// yields an UnknownCapabilityError; handler failures yield a
// HandlerFailureError.
func (s *Server) GetPrompt(ctx context.Context, name string, args map[string]string) (*mcp.GetPromptResult, error) {
	idx, ok := s.promptIndex[name]
	if !ok {
		s.log.Debug("Prompt not registered", "prompt", name)

		return nil, &srverrors.UnknownCapabilityError{Kind: srverrors.KindPrompt, Name: name}
	}

	return s.prompts[idx].handler(ctx, &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      name,
			Arguments: args,
		},
	})
}

// Tools returns the registered tool descriptors in registration order.
func (s *Server) Tools() []*mcp.Tool {
	tools := make([]*mcp.Tool, len(s.tools))
	for i, t := range s.tools {
		tools[i] = t.tool
	}

	return tools
}

// Resources returns the registered resource descriptors in registration
// order.
func (s *Server) Resources() []*mcp.Resource {
	resources := make([]*mcp.Resource, len(s.resources))
	for i, r := range s.resources {
		resources[i] = r.resource
	}

	return resources
}

// Prompts returns the registered prompt descriptors in registration order.
func (s *Server) Prompts() []*mcp.Prompt {
	prompts := make([]*mcp.Prompt, len(s.prompts))
	for i, p := range s.prompts {
		prompts[i] = p.prompt
	}

	return prompts
}

// ToolNames returns the registered tool names in registration order.
func (s *Server) ToolNames() []string {
	names := make([]string, len(s.tools))
	for i, t := range s.tools {
		names[i] = t.tool.Name
	}

	return names
}

// ResourceURIs returns the registered resource URIs in registration order.
func (s *Server) ResourceURIs() []string {
	uris := make([]string, len(s.resources))
	for i, r := range s.resources {
		uris[i] = r.resource.URI
	}

	return uris
}

// PromptNames returns the registered prompt names in registration order.
func (s *Server) PromptNames() []string {
	names := make([]string, len(s.prompts))
	for i, p := range s.prompts {
		names[i] = p.prompt.Name
	}

	return names
}

// Name returns the server's wire name.
func (s *Server) Name() string {
	return serverName
}

// Version returns the server version.
func (s *Server) Version() string {
	return serverVersion
}

// InstanceID returns the unique identifier minted for this server instance.
func (s *Server) InstanceID() string {
	return s.instanceID
}

// Run serves MCP over stdin and stdout until ctx is cancelled or the client
// disconnects. Diagnostics go to the configured logger only, keeping stdout
// a clean protocol stream.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, &mcp.StdioTransport{})
}

// Serve runs the server over the given transport. Context cancellation is
// a clean shutdown, not an error.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	s.log.Info("Starting Hello World MCP Server",
		"name", serverName,
		"version", serverVersion,
		"instance_id", s.instanceID,
		"tools", len(s.tools),
		"resources", len(s.resources),
		"prompts", len(s.prompts),
	)

	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}

	// The shutdown log fires on every exit path, clean or not.
	s.log.Info("Hello World MCP Server shutting down")

	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}

	return nil
}
