// Package mcp provides an MCP (Model Context Protocol) server adapter for Lessonsmith.
// It lets AI assistants rank reference documents and generate validated lessons.
package mcp

import "errors"

// ErrMissingRankingService is returned when the ranking service is not provided.
var ErrMissingRankingService = errors.New("mcp: ranking service is required")
