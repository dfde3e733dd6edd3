package domain

import (
	"slices"
	"time"
)

// IdeaCategory is a labeled grouping of ideas, owned by its topic.
type IdeaCategory struct {
	ID    string
	Name  string
	Color string
}

// Participant associates a user with a topic through a role.
type Participant struct {
	UserID string
	Role   UserRole
}

// Workflow is the topic's current stage and an optional deadline for it.
type Workflow struct {
	CurrentStage WorkflowStage
	StageEndDate *time.Time
}

// Clone returns a deep copy of w.
func (w Workflow) Clone() Workflow {
	w.StageEndDate = cloneTime(w.StageEndDate)
	return w
}

// Topic is a brainstorming board.
type Topic struct {
	ID            string
	Title         string
	Description   string
	OwnerID       string
	AccessCode    *string
	ScheduledDate *time.Time
	Categories    []IdeaCategory
	Admins        []string
	Participants  []Participant
	InvitedEmails []string
	Workflow      Workflow
	Layout        *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Clone returns a deep copy of t.
func (t Topic) Clone() Topic {
	t.AccessCode = cloneString(t.AccessCode)
	t.ScheduledDate = cloneTime(t.ScheduledDate)
	t.Layout = cloneString(t.Layout)
	t.Categories = slices.Clone(t.Categories)
	t.Admins = slices.Clone(t.Admins)
	t.Participants = slices.Clone(t.Participants)
	t.InvitedEmails = slices.Clone(t.InvitedEmails)
	t.Workflow = t.Workflow.Clone()
	return t
}

// Category returns the category with the given id.
func (t *Topic) Category(id string) (IdeaCategory, bool) {
	for _, c := range t.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return IdeaCategory{}, false
}

// HasCategory reports whether id names one of the topic's categories.
func (t *Topic) HasCategory(id string) bool {
	_, ok := t.Category(id)
	return ok
}

// Participant returns the participant entry for userID.
func (t *Topic) Participant(userID string) (Participant, bool) {
	for _, p := range t.Participants {
		if p.UserID == userID {
			return p, true
		}
	}
	return Participant{}, false
}

// IsAdmin reports whether userID is listed as an admin.
func (t *Topic) IsAdmin(userID string) bool {
	return slices.Contains(t.Admins, userID)
}

// TopicUpdateParams holds the optional fields of a topic update.
// nil = don't change.
type TopicUpdateParams struct {
	Title         *string
	Description   *string
	AccessCode    *string
	ScheduledDate *time.Time
	Layout        *string
	Workflow      *Workflow
	Participants  []Participant
	UpdatedAt     time.Time
}

// Apply writes the non-nil fields of p onto t and stamps UpdatedAt.
func (p TopicUpdateParams) Apply(t *Topic) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.AccessCode != nil {
		t.AccessCode = emptyToNil(*p.AccessCode)
	}
	if p.ScheduledDate != nil {
		t.ScheduledDate = cloneTime(p.ScheduledDate)
	}
	if p.Layout != nil {
		t.Layout = emptyToNil(*p.Layout)
	}
	if p.Workflow != nil {
		t.Workflow = p.Workflow.Clone()
	}
	if p.Participants != nil {
		t.Participants = slices.Clone(p.Participants)
	}
	t.UpdatedAt = p.UpdatedAt
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// emptyToNil maps "" to nil so updates can clear optional fields.
func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
