package mcp

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/spelunk/internal/config"
	"github.com/mvp-joe/spelunk/internal/nav"
	"github.com/mvp-joe/spelunk/internal/query"
)

// Server manages the MCP server lifecycle.
type Server struct {
	engine *nav.Engine
	db     *sql.DB
	mcp    *server.MCPServer
}

// NewServer creates an MCP server exposing the navigation tools. The query
// tool is registered only when cfg.Query.Database is set.
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	engine, err := nav.New(cfg.EngineOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	mcpServer := server.NewMCPServer(
		"spelunk-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	AddListFilesTool(mcpServer, engine)
	AddFindInFileTool(mcpServer, engine)
	AddProjectSearchTool(mcpServer, engine)
	AddExtractTool(mcpServer, engine)
	AddReadLinesTool(mcpServer, engine)

	var db *sql.DB
	if cfg.Query.Database != "" {
		db, err = query.Open(cfg.Query.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to open query database: %w", err)
		}
		AddQueryTool(mcpServer, db)
	}

	return &Server{
		engine: engine,
		db:     db,
		mcp:    mcpServer,
	}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		cancel()
		return nil
	case err := <-errCh:
		cancel()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases all resources.
func (s *Server) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
