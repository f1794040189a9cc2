package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/GayathriPCh/LoLCode-AI/internal/chat"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the chat proxy as tools.
type Server struct {
	proxy *chat.Proxy
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server backed by the given proxy.
func NewServer(proxy *chat.Proxy) *Server {
	s := &Server{proxy: proxy}

	s.mcp = server.NewMCPServer(
		"lolcode",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(chatTool, s.handleChat)
	s.mcp.AddTool(debugCodeTool, s.handleDebugCode)
	s.mcp.AddTool(roastCodeTool, s.handleRoastCode)
	s.mcp.AddTool(listPersonasTool, s.handleListPersonas)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
