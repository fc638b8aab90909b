package stats

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	// Data directory used by the stats tool to read run history
	statsDataDir string
)

// HandleGetStats handles requests for the run history
func HandleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Printf("[Stats] Received request to get run history")

	history, err := LoadHistory(statsDataDir)
	if err != nil {
		return nil, fmt.Errorf("error loading run history: %v", err)
	}

	statsText := "Run History:\n"
	if len(history) == 0 {
		statsText += "\nNo runs recorded yet.\n"
	}
	for _, record := range history {
		statsText += fmt.Sprintf("\nRun %s (%s) started %s, took %s\n",
			record.RunID, record.Phase,
			record.StartTime.Format(time.RFC3339),
			FormatDuration(record.Duration))
		for name, count := range record.Counts {
			statsText += fmt.Sprintf("  %s: %d\n", name, count)
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: statsText,
			},
		},
	}, nil
}

// WrapHandler wraps a tool handler with execution logging
func WrapHandler(toolName string, handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		startTime := time.Now()

		log.Printf("[Stats] Starting execution of tool '%s'", toolName)

		result, err := handler(ctx, request)
		if err != nil {
			log.Printf("[Stats] Error executing tool '%s': %v", toolName, err)
			return nil, err
		}

		log.Printf("[Stats] Tool '%s' finished in %s", toolName, FormatDuration(time.Since(startTime)))
		return result, nil
	}
}

// RegisterStats registers the stats tool with the MCP server
func RegisterStats(mcpServer *server.MCPServer, dataDir string) {
	statsDataDir = dataDir

	statsTool := mcp.NewTool("stats",
		mcp.WithDescription("Get the history of spellcheck and reconciliation runs with their counters"),
	)

	mcpServer.AddTool(statsTool, HandleGetStats)

	log.Printf("[Stats] Registered stats tool")
}
