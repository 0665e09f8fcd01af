package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

// RankInput is the input schema for the rank_references tool.
type RankInput struct {
	Topic    string   `json:"topic" jsonschema:"the lesson topic to match references against"`
	Grade    string   `json:"grade" jsonschema:"target grade: kindergarten or 1-6"`
	Subjects []string `json:"subjects,omitempty" jsonschema:"optional subject filter"`
}

// RankOutput is the output schema for the rank_references tool.
type RankOutput struct {
	References         []ReferenceOutput `json:"references"`
	AggregateRelevance float64           `json:"aggregate_relevance"`
	Count              int               `json:"count"`
}

// ReferenceOutput represents a single ranked reference document.
type ReferenceOutput struct {
	DocumentID     int      `json:"document_id"`
	Subject        string   `json:"subject"`
	Grades         []string `json:"grades"`
	SourceCitation string   `json:"source_citation,omitempty"`
	TotalScore     float64  `json:"total_score"`
	SubjectScore   float64  `json:"subject_score"`
	ThemeScore     float64  `json:"theme_score"`
	GradeScore     float64  `json:"grade_score"`
}

// GenerateInput is the input schema for the generate_lesson tool.
type GenerateInput struct {
	Topic    string   `json:"topic" jsonschema:"the lesson topic"`
	Grade    string   `json:"grade" jsonschema:"target grade: kindergarten or 1-6"`
	Subjects []string `json:"subjects,omitempty" jsonschema:"optional subject filter"`
	Notes    string   `json:"notes,omitempty" jsonschema:"optional free-text notes for the prompt"`
}

// GenerateOutput is the output schema for the generate_lesson tool.
type GenerateOutput struct {
	Lesson             string   `json:"lesson"`
	QualityScore       float64  `json:"quality_score"`
	Accepted           bool     `json:"accepted"`
	Attempts           int      `json:"attempts"`
	Issues             []string `json:"issues,omitempty"`
	AggregateRelevance float64  `json:"aggregate_relevance"`
	Model              string   `json:"model,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rank_references",
		Description: "Rank curriculum reference documents against a lesson request",
	}, s.handleRank)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_lesson",
		Description: "Generate a reference-grounded, rubric-validated lesson plan",
	}, s.handleGenerate)
}

// handleRank handles the rank_references tool invocation.
func (s *Server) handleRank(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RankInput,
) (*mcp.CallToolResult, RankOutput, error) {
	req := domain.LessonRequest{
		Topic:    input.Topic,
		Grade:    input.Grade,
		Subjects: input.Subjects,
	}

	result, err := s.ports.Ranking.Rank(ctx, req)
	if err != nil {
		return nil, RankOutput{}, err
	}

	output := RankOutput{
		References:         make([]ReferenceOutput, len(result.Documents)),
		AggregateRelevance: result.AggregateRelevance,
		Count:              len(result.Documents),
	}

	for i, scored := range result.Documents {
		output.References[i] = ReferenceOutput{
			DocumentID:     scored.Document.ID,
			Subject:        scored.Document.SubjectCategory,
			Grades:         scored.Document.ApplicableGrades,
			SourceCitation: scored.Document.SourceCitation,
			TotalScore:     scored.TotalScore,
			SubjectScore:   scored.SubjectScore,
			ThemeScore:     scored.ThemeScore,
			GradeScore:     scored.GradeScore,
		}
	}

	return nil, output, nil
}

// handleGenerate handles the generate_lesson tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	if s.ports.Lesson == nil {
		return nil, GenerateOutput{}, errors.New("lesson generation is not configured")
	}

	req := domain.LessonRequest{
		Topic:    input.Topic,
		Grade:    input.Grade,
		Subjects: input.Subjects,
		Notes:    input.Notes,
	}

	result, err := s.ports.Lesson.Generate(ctx, req)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	output := GenerateOutput{
		Lesson:             result.Text,
		QualityScore:       result.Score,
		Accepted:           result.Accepted,
		Attempts:           result.Attempts,
		Issues:             result.Issues,
		AggregateRelevance: result.AggregateRelevance,
		Model:              result.Model,
	}

	return nil, output, nil
}
