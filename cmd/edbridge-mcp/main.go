package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"edbridge/internal/adapters/editor"
	mcpadapter "edbridge/internal/adapters/mcp"
	"edbridge/internal/application"
	"edbridge/internal/config"
)

func main() {
	// Pick up EDITOR from a project .env if one exists.
	_ = godotenv.Load()

	editorFlag := flag.String("editor", config.Editor(), "editor command to invoke")
	flag.Parse()

	launcher := application.NewLauncher(editor.NewSpawner(), *editorFlag)

	mcpServer := server.NewMCPServer(
		"edbridge-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterEditTools(mcpServer, launcher)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("edbridge-mcp: %v", err)
	}
}
