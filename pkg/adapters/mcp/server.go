// Package mcp exposes the operation registry over the Model Context Protocol
// so agent clients can call the toolkit as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	devutils "github.com/Showshin/dev-utils-plus"
	"github.com/Showshin/dev-utils-plus/pkg/registry"
)

// Server wraps the operation registry and exposes it as an MCP Server.
type Server struct {
	reg       *registry.Registry
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance advertising one tool per
// registered operation.
func NewServer(reg *registry.Registry) *Server {
	s := &Server{
		reg:       reg,
		mcpServer: server.NewMCPServer("dev-utils-plus", strings.TrimSpace(devutils.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	for _, op := range s.reg.List() {
		s.mcpServer.AddTool(toolFor(op), s.handlerFor(op.Name))
	}
}

// toolFor translates an operation signature into an MCP tool schema.
func toolFor(op registry.Operation) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(fmt.Sprintf("[%s] %s", op.Group, op.Summary)),
	}
	for _, a := range op.Args {
		var props []mcp.PropertyOption
		if a.Required {
			props = append(props, mcp.Required())
		}
		if a.Help != "" {
			props = append(props, mcp.Description(a.Help))
		}
		switch a.Type {
		case "int", "float":
			opts = append(opts, mcp.WithNumber(a.Name, props...))
		case "bool":
			opts = append(opts, mcp.WithBoolean(a.Name, props...))
		case "[]string":
			props = append(props, mcp.Items(map[string]any{"type": "string"}))
			opts = append(opts, mcp.WithArray(a.Name, props...))
		case "[]float":
			props = append(props, mcp.Items(map[string]any{"type": "number"}))
			opts = append(opts, mcp.WithArray(a.Name, props...))
		default:
			opts = append(opts, mcp.WithString(a.Name, props...))
		}
	}
	return mcp.NewTool(op.Name, opts...)
}

func (s *Server) handlerFor(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.reg.Execute(ctx, name, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if text, ok := result.(string); ok {
			return mcp.NewToolResultText(text), nil
		}
		jsonBytes, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to encode result: %w", err)
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	}
}

func (s *Server) registerResources() {
	// EXPOSE: devutils://ops
	s.mcpServer.AddResource(mcp.NewResource("devutils://ops", "Operation Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		type argInfo struct {
			Name     string `json:"name"`
			Type     string `json:"type"`
			Required bool   `json:"required"`
			Help     string `json:"help,omitempty"`
		}
		type opInfo struct {
			Name    string    `json:"name"`
			Group   string    `json:"group"`
			Summary string    `json:"summary"`
			Args    []argInfo `json:"args,omitempty"`
		}

		ops := s.reg.List()
		catalog := make([]opInfo, 0, len(ops))
		for _, op := range ops {
			info := opInfo{Name: op.Name, Group: op.Group, Summary: op.Summary}
			for _, a := range op.Args {
				info.Args = append(info.Args, argInfo{Name: a.Name, Type: a.Type, Required: a.Required, Help: a.Help})
			}
			catalog = append(catalog, info)
		}

		jsonBytes, err := json.Marshal(catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "devutils://ops",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
