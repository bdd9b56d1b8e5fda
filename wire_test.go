package hellomcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// startTestSession runs a server over an in-memory transport and returns a
// connected client session. Cleanup stops the server and verifies it exits
// cleanly.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	s := NewServer()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Serve(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)

	type connectResult struct {
		session *mcp.ClientSession
		err     error
	}
	connectDone := make(chan connectResult, 1)
	go func() {
		connectCtx, connectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer connectCancel()

		session, err := client.Connect(connectCtx, clientTransport, nil)
		connectDone <- connectResult{session: session, err: err}
	}()

	var session *mcp.ClientSession
	select {
	case result := <-connectDone:
		require.NoError(t, result.err)
		session = result.session
	case <-time.After(10 * time.Second):
		cancel()
		t.Fatal("connect client timed out")
	}

	t.Cleanup(func() {
		cancel()

		select {
		case err := <-serveErr:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop after cancel")
		}

		_ = session.Close()
	})

	return session
}

// TestWire_ListCapabilities tests capability discovery over the transport.
func TestWire_ListCapabilities(t *testing.T) {
	session := startTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	toolNames := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		require.NotEmpty(t, tool.Description)
		toolNames = append(toolNames, tool.Name)
	}
	require.ElementsMatch(t, []string{"hello_world", "get_current_time", "echo"}, toolNames)

	resources, err := session.ListResources(ctx, nil)
	require.NoError(t, err)
	require.Len(t, resources.Resources, 1)
	require.Equal(t, "server://info", resources.Resources[0].URI)

	prompts, err := session.ListPrompts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, prompts.Prompts, 1)
	require.Equal(t, "greeting", prompts.Prompts[0].Name)
}

// TestWire_CallHelloWorld tests the hello_world tool over the transport.
func TestWire_CallHelloWorld(t *testing.T) {
	session := startTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "hello_world"})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, helloWorldMessage, textOf(t, result))
}

// TestWire_EchoRoundTrip tests the echo tool over the transport.
func TestWire_EchoRoundTrip(t *testing.T) {
	session := startTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "echo",
		Arguments: map[string]any{"message": "Hello MCP!"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Contains(t, textOf(t, result), "Hello MCP!")
}

// TestWire_EchoMissingMessage tests that a missing argument comes back as
// an error block, not a transport fault.
func TestWire_EchoMissingMessage(t *testing.T) {
	session := startTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "echo",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Equal(t, echoMissingMessage, textOf(t, result))
}

// TestWire_UnknownTool tests calling a tool the server never registered.
func TestWire_UnknownTool(t *testing.T) {
	session := startTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "launch_rocket"})
	require.Error(t, err)
	require.ErrorContains(t, err, `unknown tool "launch_rocket"`)
}

// TestWire_ReadServerInfo tests the manifest resource over the transport.
func TestWire_ReadServerInfo(t *testing.T) {
	session := startTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "server://info"})
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	require.Equal(t, "application/json", result.Contents[0].MIMEType)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
	require.Equal(t, "Hello World MCP Server", info["name"])
	require.Equal(t, []any{"hello_world", "get_current_time", "echo"}, info["tools"])
}

// TestWire_ReadUnknownResource tests reading an unregistered URI.
func TestWire_ReadUnknownResource(t *testing.T) {
	session := startTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "server://missing"})
	require.Error(t, err)
	require.Contains(t, strings.ToLower(err.Error()), "resource not found")
}

// TestWire_GetGreeting tests prompt rendering over the transport.
func TestWire_GetGreeting(t *testing.T) {
	session := startTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := session.GetPrompt(ctx, &mcp.GetPromptParams{
		Name:      "greeting",
		Arguments: map[string]string{"language": "de"},
	})
	require.NoError(t, err)
	require.Equal(t, "Friendly greeting in de", result.Description)

	text := greetingText(t, result)
	require.Contains(t, text, "Hallo! Ich bin ein freundlicher MCP Server")
	require.Contains(t, text, "(Available languages: en, de, es)")
}

// TestWire_GetUnknownPrompt tests requesting an unregistered prompt.
func TestWire_GetUnknownPrompt(t *testing.T) {
	session := startTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := session.GetPrompt(ctx, &mcp.GetPromptParams{Name: "farewell"})
	require.Error(t, err)
	require.ErrorContains(t, err, `unknown prompt "farewell"`)
}
