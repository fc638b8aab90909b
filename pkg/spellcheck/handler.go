package spellcheck

import (
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Grettz/finspell/pkg/stats"
)

// defaultDataDir is where run history is stored when the caller does not
// pass one.
const defaultDataDir = "data"

// HandleSpellCheck is the handler function for the spellcheck tool
func HandleSpellCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	// Extract file paths
	inputFile, ok := arguments["input_file"].(string)
	if !ok {
		return nil, fmt.Errorf("input_file must be a string")
	}
	dictionaryFile, ok := arguments["dictionary_file"].(string)
	if !ok {
		return nil, fmt.Errorf("dictionary_file must be a string")
	}
	resultFile, ok := arguments["result_file"].(string)
	if !ok {
		return nil, fmt.Errorf("result_file must be a string")
	}

	// Extract options, all defaulting to the tool's historical behavior
	opts := DefaultOptions()
	if auto, ok := arguments["auto"].(bool); ok {
		opts.Auto = auto
	}
	if suggest, ok := arguments["suggest"].(bool); ok {
		opts.Suggest = suggest
	}
	if google, ok := arguments["google"].(bool); ok {
		opts.GoogleSC = google
	}
	if debug, ok := arguments["debug"].(bool); ok {
		opts.Debug = debug
	}

	loadContextModel := opts.Auto
	if load, ok := arguments["load_context_model"].(bool); ok {
		loadContextModel = load
	}

	dataDir := defaultDataDir
	if dir, ok := arguments["data_dir"].(string); ok && dir != "" {
		dataDir = dir
	}

	debugFile := ""
	if opts.Debug {
		debugFile = "debug.xlsx"
	}

	counters, err := RunCheckPhase(ctx, PhaseConfig{
		InputFile:        inputFile,
		DictionaryFile:   dictionaryFile,
		ResultFile:       resultFile,
		DebugFile:        debugFile,
		Options:          opts,
		LoadContextModel: loadContextModel,
	})
	if err != nil {
		return nil, fmt.Errorf("error running spellcheck: %v", err)
	}

	if err := stats.SaveRun(dataDir, counters); err != nil {
		log.Printf("[SpellCheck] Warning: could not save run history: %v", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: stats.FormatCheckSummary(counters),
			},
		},
	}, nil
}

// RegisterSpellCheck registers the spellcheck tool with the MCP server
func RegisterSpellCheck(mcpServer *server.MCPServer) {
	spellCheckTool := mcp.NewTool("spellcheck",
		mcp.WithDescription("Spell check the text column of a workbook against the layered dictionaries and write a reviewable result workbook"),
		mcp.WithString("input_file",
			mcp.Description("Path to the text corpus workbook (xlsx)"),
			mcp.Required(),
		),
		mcp.WithString("dictionary_file",
			mcp.Description("Path to the custom dictionary workbook (xlsx)"),
			mcp.Required(),
		),
		mcp.WithString("result_file",
			mcp.Description("Path the result workbook is written to (xlsx)"),
			mcp.Required(),
		),
		mcp.WithBoolean("auto",
			mcp.Description("Auto-accept suggestions that pass the context validator (default true)"),
		),
		mcp.WithBoolean("suggest",
			mcp.Description("Compute replacement suggestions (default true)"),
		),
		mcp.WithBoolean("google",
			mcp.Description("Escalate uncorrected words to search-engine arbitration (default true)"),
		),
		mcp.WithBoolean("debug",
			mcp.Description("Write the raw token dump workbook"),
		),
		mcp.WithBoolean("load_context_model",
			mcp.Description("Load the context validator model (default follows auto)"),
		),
		mcp.WithString("data_dir",
			mcp.Description("Directory for run history (default \"data\")"),
		),
	)

	wrappedHandler := stats.WrapHandler("spellcheck", HandleSpellCheck)
	mcpServer.AddTool(spellCheckTool, wrappedHandler)

	log.Printf("[SpellCheck] Registered spellcheck tool")
}
