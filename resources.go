package hellomcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// serverInfoURI addresses the self-describing capability manifest.
const serverInfoURI = "server://info"

// serverInfo is the manifest document served at server://info. Field order
// matches the rendered JSON.
type serverInfo struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	Description     string   `json:"description"`
	Features        []string `json:"features"`
	ToolsCount      int      `json:"tools_count"`
	Created         string   `json:"created"`
	InstanceID      string   `json:"instance_id"`
	Tools           []string `json:"tools"`
	Resources       []string `json:"resources"`
	Prompts         []string `json:"prompts"`
	InfoRequestedAt string   `json:"info_requested_at"`
}

// serverInfoResource describes the server://info resource.
func serverInfoResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         serverInfoURI,
		Name:        "Server Information",
		Description: "Detailed information about this MCP server including capabilities and metadata",
		MIMEType:    "application/json",
	}
}

// serverInfoHandler renders the capability manifest as indented JSON.
func (s *Server) serverInfoHandler() mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		data, err := json.MarshalIndent(s.manifest(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal server info: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

// manifest assembles the current capability manifest from the registries.
func (s *Server) manifest() serverInfo {
	return serverInfo{
		Name:            serverTitle,
		Version:         serverVersion,
		Description:     serverDescription,
		Features:        []string{"tools", "resources", "prompts"},
		ToolsCount:      len(s.tools),
		Created:         s.startedAt.Format(time.RFC3339Nano),
		InstanceID:      s.instanceID,
		Tools:           s.ToolNames(),
		Resources:       s.ResourceURIs(),
		Prompts:         s.PromptNames(),
		InfoRequestedAt: s.clock().UTC().Format(time.RFC3339Nano),
	}
}
