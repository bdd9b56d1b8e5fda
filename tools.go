package hellomcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/hello-world-mcp/internal/errors"
)

const (
	helloWorldMessage = "Hello, World from MCP! 🌍 This is your first MCP server response."

	// echoMaxMessageLen bounds echo input, counted in runes.
	echoMaxMessageLen = 1000

	echoMissingMessage = "Error: No message provided to echo. Please provide a message parameter."
	echoTooLongMessage = "Error: Message too long. Please provide a message under 1000 characters."
)

// helloWorldTool describes the hello_world tool.
func helloWorldTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "hello_world",
		Description: "Simple hello world tool that returns a greeting message",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}
}

// helloWorldHandler returns the fixed greeting response.
func (s *Server) helloWorldHandler() mcp.ToolHandler {
	return func(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(helloWorldMessage), nil
	}
}

// currentTimeTool describes the get_current_time tool.
func currentTimeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_current_time",
		Description: "Returns the current date and time with timezone information",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}
}

// currentTimeHandler formats the clock's current time in several common
// representations.
func (s *Server) currentTimeHandler() mcp.ToolHandler {
	return func(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		now := s.clock().UTC()
		local := now.Local()

		response := fmt.Sprintf(`Current Time Information:
🕐 UTC Time: %s
🏠 Local Time: %s
📅 ISO Format: %s
⏱️  Timestamp: %s`,
			now.Format("2006-01-02 15:04:05 MST"),
			local.Format("2006-01-02 15:04:05 MST"),
			now.Format(time.RFC3339Nano),
			strconv.FormatFloat(float64(now.UnixNano())/1e9, 'f', 6, 64),
		)

		return textResult(response), nil
	}
}

// echoTool describes the echo tool.
func echoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "echo",
		Description: "Echoes back the provided message with some formatting",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"message": {
					Type:        "string",
					Description: "The text message to echo back",
				},
			},
			Required: []string{"message"},
		},
	}
}

// echoHandler validates the message argument and mirrors it back with
// length, reversal, and word count annotations.
func (s *Server) echoHandler() mcp.ToolHandler {
	return func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := parseArguments(req)
		if err != nil {
			return nil, &errors.InvalidArgumentError{
				Tool:     "echo",
				Argument: "message",
				Reason:   echoMissingMessage,
			}
		}

		message, ok := args["message"].(string)
		if !ok || message == "" {
			return nil, &errors.InvalidArgumentError{
				Tool:     "echo",
				Argument: "message",
				Reason:   echoMissingMessage,
			}
		}

		length := utf8.RuneCountInString(message)
		if length > echoMaxMessageLen {
			return nil, &errors.InvalidArgumentError{
				Tool:     "echo",
				Argument: "message",
				Reason:   echoTooLongMessage,
			}
		}

		response := fmt.Sprintf(`Echo Response:
📝 Original: "%s"
📏 Length: %d characters
🔄 Reversed: "%s"
📊 Word Count: %d words`,
			message,
			length,
			reverseString(message),
			len(strings.Fields(message)),
		)

		return textResult(response), nil
	}
}

// reverseString reverses s rune by rune so multi-byte characters survive.
func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// parseArguments unmarshals a tool request's raw arguments into a map.
func parseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("unmarshal arguments: %w", err)
	}

	return args, nil
}

// textResult creates a CallToolResult with a single text content block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// errorResult creates a CallToolResult flagged as a dispatch error.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: true,
	}
}
