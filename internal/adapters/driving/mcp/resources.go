package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for Lessonsmith resources.
	uriScheme = "lessonsmith://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing the reference corpus.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpus",
		Name:        "corpus",
		Description: "List of all reference documents in the corpus",
		MIMEType:    "application/json",
	}, s.handleCorpusResource)

	// Template for document content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "corpus/{documentId}",
		Name:        "reference-document",
		Description: "Full body of a specific reference document",
		MIMEType:    "text/plain",
	}, s.handleDocumentResource)
}

// handleCorpusResource returns a summary listing of the whole corpus.
func (s *Server) handleCorpusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	docs, err := s.ports.Corpus.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing corpus: %w", err)
	}

	// Build simplified document list.
	type docInfo struct {
		ID       int      `json:"id"`
		Subject  string   `json:"subject"`
		Grades   []string `json:"grades"`
		Keywords []string `json:"keywords"`
		Source   string   `json:"source,omitempty"`
	}

	infos := make([]docInfo, len(docs))
	for i := range docs {
		infos[i] = docInfo{
			ID:       docs[i].ID,
			Subject:  docs[i].SubjectCategory,
			Grades:   docs[i].ApplicableGrades,
			Keywords: docs[i].Keywords,
			Source:   docs[i].SourceCitation,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling corpus: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentResource returns the body of a specific reference document.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract documentId from URI: lessonsmith://corpus/{documentId}
	docID, ok := extractDocumentID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Corpus.Get(ctx, docID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     doc.Body,
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like lessonsmith://corpus/{documentId}.
func extractDocumentID(uri string) (int, bool) {
	const prefix = uriScheme + "corpus/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	id, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return 0, false
	}

	return id, true
}
