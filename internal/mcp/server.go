package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/learnhub/internal/catalog"
	"github.com/ziadkadry99/learnhub/internal/diagnostics"
	"github.com/ziadkadry99/learnhub/internal/lessons"
	"github.com/ziadkadry99/learnhub/internal/modal"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the course catalog and the
// learning assistant as tools.
type Server struct {
	catalog   *catalog.Catalog
	lessons   *lessons.Store
	responder modal.Responder
	recorder  diagnostics.Recorder
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies. A nil
// recorder discards diagnostics.
func NewServer(cat *catalog.Catalog, store *lessons.Store, responder modal.Responder, recorder diagnostics.Recorder) *Server {
	if recorder == nil {
		recorder = diagnostics.Nop{}
	}
	s := &Server{
		catalog:   cat,
		lessons:   store,
		responder: responder,
		recorder:  recorder,
	}

	s.mcp = server.NewMCPServer(
		"learnhub",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchCoursesTool, s.handleSearchCourses)
	s.mcp.AddTool(getCourseTool, s.handleGetCourse)
	s.mcp.AddTool(explainSelectionTool, s.handleExplainSelection)
	s.mcp.AddTool(followUpTool, s.handleFollowUp)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
