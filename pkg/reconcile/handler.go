package reconcile

import (
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Grettz/finspell/pkg/stats"
)

// HandleApplyActions is the handler function for the applyactions tool
func HandleApplyActions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	resultFile, ok := arguments["result_file"].(string)
	if !ok {
		return nil, fmt.Errorf("result_file must be a string")
	}
	inputFile, ok := arguments["input_file"].(string)
	if !ok {
		return nil, fmt.Errorf("input_file must be a string")
	}
	outputFile, ok := arguments["output_file"].(string)
	if !ok {
		return nil, fmt.Errorf("output_file must be a string")
	}
	dictionaryFile, ok := arguments["dictionary_file"].(string)
	if !ok {
		return nil, fmt.Errorf("dictionary_file must be a string")
	}

	dataDir := "data"
	if dir, ok := arguments["data_dir"].(string); ok && dir != "" {
		dataDir = dir
	}

	counters, err := RunApplyPhase(PhaseConfig{
		ResultFile:     resultFile,
		InputFile:      inputFile,
		OutputFile:     outputFile,
		DictionaryFile: dictionaryFile,
	})
	if err != nil {
		return nil, fmt.Errorf("error applying user actions: %v", err)
	}

	if err := stats.SaveRun(dataDir, counters); err != nil {
		log.Printf("[Reconcile] Warning: could not save run history: %v", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: stats.FormatApplySummary(counters),
			},
		},
	}, nil
}

// RegisterApplyActions registers the applyactions tool with the MCP server
func RegisterApplyActions(mcpServer *server.MCPServer) {
	applyActionsTool := mcp.NewTool("applyactions",
		mcp.WithDescription("Apply the reviewer's decisions from a result workbook back onto the text corpus and custom dictionary"),
		mcp.WithString("result_file",
			mcp.Description("Path to the reviewed result workbook (xlsx)"),
			mcp.Required(),
		),
		mcp.WithString("input_file",
			mcp.Description("Path to the original text corpus workbook (xlsx)"),
			mcp.Required(),
		),
		mcp.WithString("output_file",
			mcp.Description("Path the rewritten corpus workbook is written to (xlsx)"),
			mcp.Required(),
		),
		mcp.WithString("dictionary_file",
			mcp.Description("Path to the custom dictionary workbook (xlsx); additions are appended in place"),
			mcp.Required(),
		),
		mcp.WithString("data_dir",
			mcp.Description("Directory for run history (default \"data\")"),
		),
	)

	wrappedHandler := stats.WrapHandler("applyactions", HandleApplyActions)
	mcpServer.AddTool(applyActionsTool, wrappedHandler)

	log.Printf("[Reconcile] Registered applyactions tool")
}
