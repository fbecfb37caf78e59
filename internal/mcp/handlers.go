package mcp

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/learnhub/internal/catalog"
	"github.com/ziadkadry99/learnhub/internal/diagnostics"
	"github.com/ziadkadry99/learnhub/internal/lessons"
)

// maxTextLength bounds a passage handed to the assistant tools.
const maxTextLength = 2000

// handleSearchCourses filters the catalog with the given criteria.
func (s *Server) handleSearchCourses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	criteria := catalog.DefaultCriteria()
	criteria.Query = strings.TrimSpace(request.GetString("query", ""))
	if c := request.GetString("category", ""); c != "" {
		criteria.Category = c
	}
	if l := request.GetString("level", ""); l != "" {
		criteria.Level = l
	}

	results := s.catalog.Filter(criteria)
	if len(results) == 0 {
		return mcp.NewToolResultText("No courses found. Try adjusting your search or filters."), nil
	}

	return mcp.NewToolResultText(formatCourses(results, s.catalog.Len())), nil
}

// handleGetCourse returns a course's catalog record and lesson outline.
func (s *Server) handleGetCourse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("course_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: course_id"), nil
	}

	course, ok := s.catalog.Get(id)
	if !ok {
		s.record(ctx, diagnostics.KindCourseNotFound, id, "mcp")
		return mcp.NewToolResultError(fmt.Sprintf("No course found with id %q.", id)), nil
	}

	var detail *lessons.Course
	if s.lessons != nil {
		detail, _ = s.lessons.Get(id)
	}

	return mcp.NewToolResultText(formatCourse(course, detail)), nil
}

// handleExplainSelection runs the assistant over a passage.
func (s *Server) handleExplainSelection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, errResult := requireText(request, "text")
	if errResult != nil {
		return errResult, nil
	}

	resp := s.responder.Respond(text)
	s.record(ctx, diagnostics.KindAssistantExplain, resp.Rule, text)

	var sb strings.Builder
	sb.WriteString(resp.Explanation)
	sb.WriteString("\n\nFollow-up questions:\n")
	for _, f := range resp.FollowUps {
		sb.WriteString(fmt.Sprintf("- %s\n", f))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleFollowUp answers a follow-up label for a passage.
func (s *Server) handleFollowUp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	label, err := request.RequireString("label")
	if err != nil || strings.TrimSpace(label) == "" {
		return mcp.NewToolResultError("missing required parameter: label"), nil
	}
	text, errResult := requireText(request, "text")
	if errResult != nil {
		return errResult, nil
	}

	answer := s.responder.FollowUp(label, text)
	s.record(ctx, diagnostics.KindAssistantFollowUp, label, text)
	return mcp.NewToolResultText(answer), nil
}

// requireText reads a non-blank passage no longer than maxTextLength.
func requireText(request mcp.CallToolRequest, key string) (string, *mcp.CallToolResult) {
	text, err := request.RequireString(key)
	if err != nil || strings.TrimSpace(text) == "" {
		return "", mcp.NewToolResultError("missing required parameter: " + key)
	}
	if utf8.RuneCountInString(text) > maxTextLength {
		return "", mcp.NewToolResultError(fmt.Sprintf("%s must be at most %d characters", key, maxTextLength))
	}
	return text, nil
}

func (s *Server) record(ctx context.Context, kind diagnostics.Kind, subject, detail string) {
	// Diagnostics never fail a tool call.
	_ = s.recorder.Record(ctx, kind, subject, detail)
}

// formatCourses renders search results as plain text for agent consumption.
func formatCourses(courses []catalog.Course, total int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Showing %d of %d courses:\n", len(courses), total))

	for _, c := range courses {
		sb.WriteString(fmt.Sprintf("\n--- %s ---\n", c.Title))
		sb.WriteString(fmt.Sprintf("ID: %s\n", c.ID))
		sb.WriteString(fmt.Sprintf("Instructor: %s\n", c.Instructor))
		sb.WriteString(fmt.Sprintf("Category: %s | Level: %s\n", c.Category, c.Level))
		sb.WriteString(fmt.Sprintf("Duration: %s | Lessons: %d | Rating: %.1f | Students: %d\n",
			c.Duration, c.Lessons, c.Rating, c.Students))
		sb.WriteString(fmt.Sprintf("Price: %s\n", c.Price))
		sb.WriteString(c.Description)
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatCourse renders one course and, when present, its lesson titles.
func formatCourse(c catalog.Course, detail *lessons.Course) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", c.Title))
	sb.WriteString(c.Description)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Instructor: %s\n", c.Instructor))
	sb.WriteString(fmt.Sprintf("Category: %s | Level: %s\n", c.Category, c.Level))
	sb.WriteString(fmt.Sprintf("Duration: %s | Rating: %.1f | Students: %d | Price: %s\n",
		c.Duration, c.Rating, c.Students, c.Price))

	if detail == nil || len(detail.Lessons) == 0 {
		sb.WriteString("\nLesson content is not available yet.\n")
		return sb.String()
	}

	sb.WriteString("\n## Lessons\n")
	for i, l := range detail.Lessons {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, l.Title, l.Duration))
	}
	return sb.String()
}
