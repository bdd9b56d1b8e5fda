// Package hellomcp implements a small educational MCP server: three tools,
// one resource, and one prompt wired into the official MCP Go SDK and
// served over stdio.
//
// The package doubles as a worked example of the Model Context Protocol.
// Every capability is registered once at construction time, and the
// resulting registries are inspectable and dispatchable without any
// transport, which keeps the server testable in-process.
//
// # Basic Usage
//
// Build a server and run it over stdin/stdout:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	server := hellomcp.NewServer(
//	    hellomcp.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
//	)
//	if err := server.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Run blocks until the client disconnects or the context is cancelled.
// Protocol frames travel exclusively over stdout; all diagnostics go to
// the configured logger, which callers should point at stderr.
//
// # Direct Dispatch
//
// The dispatch methods work without a transport, so the server can be
// exercised like a plain value:
//
//	server := hellomcp.NewServer()
//	result := server.CallTool(ctx, "echo", map[string]any{"message": "hi"})
//	for _, block := range result.Content {
//	    if text, ok := block.(*mcp.TextContent); ok {
//	        fmt.Println(text.Text)
//	    }
//	}
//
// # Error Handling
//
// Tool failures never escape the dispatch boundary: unknown names, bad
// arguments, and handler panics all come back as a single error content
// block with IsError set. Resource and prompt lookups return typed errors
// instead:
//
//	_, err := server.ReadResource(ctx, "server://missing")
//	if capErr, ok := errors.AsType[*hellomcp.UnknownCapabilityError](err); ok {
//	    fmt.Println(capErr.Kind, capErr.Name)
//	}
//
// # Logging
//
// By default the server is silent. Use WithLogger for structured
// diagnostics:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	server := hellomcp.NewServer(hellomcp.WithLogger(logger))
package hellomcp
