// Package mcptool exposes the digital twin as an MCP tool.
package mcptool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dgallion1/cvtwin/internal/respond"
)

// Responder answers chat messages about the loaded documents.
type Responder interface {
	Answer(ctx context.Context, message, cvPath string) respond.Result
}

// NewServer builds the MCP server exposing the chat_with_me tool.
func NewServer(responder Responder, version string) *server.MCPServer {
	s := server.NewMCPServer("CV Digital Twin Server", version)
	s.AddTool(chatTool(), chatHandler(responder))
	return s
}

// ServeStdio runs the server over stdin/stdout until the client hangs up.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func chatTool() mcp.Tool {
	return mcp.NewTool(
		"chat_with_me",
		mcp.WithDescription("Chat with the digital twin based on the loaded CV. Answers questions about the person as if they were answering themselves."),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description(`Your message or question, e.g. "What is your work experience?" or "Tell me about yourself"`),
		),
		mcp.WithString("cv_path",
			mcp.Description("Optional path to a CV file. When omitted, the docs/ directory is scanned for PDFs."),
		),
	)
}

// chatHandler returns the result JSON as the tool's text content. Load and
// completion failures are part of that JSON, never tool-call faults.
func chatHandler(responder Responder) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message, err := req.RequireString("message")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		cvPath := req.GetString("cv_path", "")

		result := responder.Answer(ctx, message, cvPath)
		return mcp.NewToolResultText(result.JSON()), nil
	}
}
