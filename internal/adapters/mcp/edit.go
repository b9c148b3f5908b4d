package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"edbridge/internal/application"
	"edbridge/internal/ports"
)

// fatal terminates the process when the editor cannot be launched. A failed
// launch is not recoverable by the host, so it is not returned as a tool
// error. Replaced in tests.
var fatal = application.Fatal

// RegisterEditTools adds the editor tools to the MCP server.
func RegisterEditTools(s *server.MCPServer, launcher ports.EditorLauncher) {
	s.AddTool(openEditorTool(), openEditorHandler(launcher))
}

// --- open_editor ---

func openEditorTool() mcp.Tool {
	return mcp.NewTool("open_editor",
		mcp.WithDescription("Open a file in the configured terminal editor and block until the editor exits. The editor's own exit status is not inspected."),
		mcp.WithString("file_name",
			mcp.Description("Path of the file to edit, passed to the editor verbatim as its only argument."),
			mcp.Required(),
		),
	)
}

func openEditorHandler(launcher ports.EditorLauncher) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fileName := req.GetString("file_name", "")
		if fileName == "" {
			fatal(fmt.Errorf("open_editor: file_name did not decode to a usable string"))
			return nil, nil
		}

		if err := launcher.OpenFile(fileName); err != nil {
			fatal(err)
			return nil, nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Editor closed on %s.", fileName)), nil
	}
}
