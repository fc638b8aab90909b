package serverinfo

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// startTime is used to calculate uptime
var startTime = time.Now()

// HandleServerInfo is the handler function for the server info resource
func HandleServerInfo(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	infoStr := "Server Information:\n\n"
	infoStr += fmt.Sprintf("timestamp: %s\n", time.Now().Format(time.RFC3339))
	infoStr += fmt.Sprintf("go_version: %s\n", runtime.Version())
	infoStr += fmt.Sprintf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	infoStr += fmt.Sprintf("uptime_seconds: %.1f\n", time.Since(startTime).Seconds())
	infoStr += fmt.Sprintf("goroutines: %d\n", runtime.NumGoroutine())
	infoStr += fmt.Sprintf("alloc_mb: %.1f\n", float64(memStats.Alloc)/1024/1024)
	infoStr += fmt.Sprintf("sys_mb: %.1f\n", float64(memStats.Sys)/1024/1024)
	infoStr += "\nTools:\n"
	infoStr += "spellcheck: check the text column of a workbook against the layered dictionaries\n"
	infoStr += "applyactions: apply reviewed corrections back onto the text corpus\n"
	infoStr += "stats: run history with per-run counters\n"

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     infoStr,
		},
	}, nil
}

// RegisterServerInfo registers the server info resource with the MCP server
func RegisterServerInfo(mcpServer *server.MCPServer) {
	mcpServer.AddResource(
		mcp.NewResource(
			"server://info",
			"Server Information",
			mcp.WithMIMEType("text/plain"),
		),
		HandleServerInfo,
	)
}
