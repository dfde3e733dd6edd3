package domain

import "slices"

// BoardTemplate is a predefined category set and layout for new topics.
type BoardTemplate struct {
	ID          string
	Name        string
	Description string
	Categories  []IdeaCategory
	Layout      string
}

var boardTemplates = []BoardTemplate{
	{
		ID:          "blank",
		Name:        "Blank Board",
		Description: "Start from scratch with an empty board",
		Categories: []IdeaCategory{
			{ID: "cat-default-1", Name: "General", Color: "#4F46E5"},
		},
		Layout: "blank",
	},
	{
		ID:          "brainstorm",
		Name:        "Brainstorming Session",
		Description: "Collaborative idea generation",
		Categories: []IdeaCategory{
			{ID: "cat-brain-1", Name: "Feature", Color: "#4F46E5"},
			{ID: "cat-brain-2", Name: "Improvement", Color: "#10B981"},
			{ID: "cat-brain-3", Name: "Problem", Color: "#F59E0B"},
		},
		Layout: "list",
	},
	{
		ID:          "teamplanning",
		Name:        "Team Planning",
		Description: "Organize tasks and projects with your team",
		Categories: []IdeaCategory{
			{ID: "cat-team-1", Name: "Task", Color: "#8B5CF6"},
			{ID: "cat-team-2", Name: "Project", Color: "#EC4899"},
			{ID: "cat-team-3", Name: "Goal", Color: "#06B6D4"},
		},
		Layout: "kanban",
	},
	{
		ID:          "swot",
		Name:        "SWOT Analysis",
		Description: "Strengths, Weaknesses, Opportunities, Threats",
		Categories: []IdeaCategory{
			{ID: "cat-swot-1", Name: "Strength", Color: "#10B981"},
			{ID: "cat-swot-2", Name: "Weakness", Color: "#F59E0B"},
			{ID: "cat-swot-3", Name: "Opportunity", Color: "#3B82F6"},
			{ID: "cat-swot-4", Name: "Threat", Color: "#EF4444"},
		},
		Layout: "grid-2x2",
	},
	{
		ID:          "retroboard",
		Name:        "Agile Retro Matrix",
		Description: "What went well, what needs improvement, action items",
		Categories: []IdeaCategory{
			{ID: "cat-retro-1", Name: "What Went Well", Color: "#10B981"},
			{ID: "cat-retro-2", Name: "What Needs Improvement", Color: "#F59E0B"},
			{ID: "cat-retro-3", Name: "Action Items", Color: "#3B82F6"},
		},
		Layout: "columns-3",
	},
	{
		ID:          "impact",
		Name:        "Impact/Effort Matrix",
		Description: "Prioritize ideas based on impact and effort",
		Categories: []IdeaCategory{
			{ID: "cat-impact-1", Name: "High Impact, Low Effort", Color: "#10B981"},
			{ID: "cat-impact-2", Name: "High Impact, High Effort", Color: "#3B82F6"},
			{ID: "cat-impact-3", Name: "Low Impact, Low Effort", Color: "#F59E0B"},
			{ID: "cat-impact-4", Name: "Low Impact, High Effort", Color: "#EF4444"},
		},
		Layout: "grid-2x2",
	},
}

// BoardTemplates returns the built-in templates in display order.
func BoardTemplates() []BoardTemplate {
	out := make([]BoardTemplate, len(boardTemplates))
	for i, tpl := range boardTemplates {
		tpl.Categories = slices.Clone(tpl.Categories)
		out[i] = tpl
	}
	return out
}

// FindBoardTemplate looks up a template by id.
func FindBoardTemplate(id string) (BoardTemplate, bool) {
	for _, tpl := range BoardTemplates() {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return BoardTemplate{}, false
}
