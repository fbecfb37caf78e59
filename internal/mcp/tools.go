package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchCoursesTool defines the search_courses MCP tool.
var searchCoursesTool = mcp.NewTool("search_courses",
	mcp.WithDescription("Search the course catalog by free text, category and level. Returns matching courses in catalog order."),
	mcp.WithString("query",
		mcp.Description("Case-insensitive text matched against title, description and instructor"),
	),
	mcp.WithString("category",
		mcp.Description("Exact category name, or All (default)"),
	),
	mcp.WithString("level",
		mcp.Description("Course level, or All (default)"),
		mcp.Enum("All", "Beginner", "Intermediate", "Advanced"),
	),
)

// getCourseTool defines the get_course MCP tool.
var getCourseTool = mcp.NewTool("get_course",
	mcp.WithDescription("Get a course's details and its lesson outline."),
	mcp.WithString("course_id",
		mcp.Required(),
		mcp.Description("Catalog id of the course"),
	),
)

// explainSelectionTool defines the explain_selection MCP tool.
var explainSelectionTool = mcp.NewTool("explain_selection",
	mcp.WithDescription("Explain a passage of course text the way the learning assistant overlay does, with suggested follow-up questions."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("The selected passage"),
	),
)

// followUpTool defines the follow_up MCP tool.
var followUpTool = mcp.NewTool("follow_up",
	mcp.WithDescription("Answer one of the suggested follow-up questions for a selected passage."),
	mcp.WithString("label",
		mcp.Required(),
		mcp.Description("The follow-up label, e.g. \"Show me examples\""),
	),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("The passage the follow-up refers to"),
	),
)
