package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/GayathriPCh/LoLCode-AI/internal/persona"
)

func personaOption() mcp.ToolOption {
	names := make([]string, 0, 4)
	for _, p := range persona.List() {
		names = append(names, p.Name)
	}
	return mcp.WithString("persona",
		mcp.Description("Persona that answers (default "+persona.Default+")"),
		mcp.Enum(names...),
	)
}

// chatTool defines the chat MCP tool.
var chatTool = mcp.NewTool("chat",
	mcp.WithDescription("Ask lolcode AI anything about code. Replies in Leetcode slang in the chosen persona's voice."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The question or code to send"),
	),
	personaOption(),
)

// debugCodeTool defines the debug_code MCP tool.
var debugCodeTool = mcp.NewTool("debug_code",
	mcp.WithDescription("Debug a piece of code thoroughly and list all possible issues."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("Source code to debug"),
	),
	personaOption(),
)

// roastCodeTool defines the roast_code MCP tool.
var roastCodeTool = mcp.NewTool("roast_code",
	mcp.WithDescription("Roast a piece of code in the style of the chosen persona."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("Source code to roast"),
	),
	personaOption(),
)

// listPersonasTool defines the list_personas MCP tool.
var listPersonasTool = mcp.NewTool("list_personas",
	mcp.WithDescription("List the available personas and their styles."),
)
