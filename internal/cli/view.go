package cli

import (
	"time"

	"github.com/heartmarshall/brainboard/internal/derive"
	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/internal/service/idea"
)

type userView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	IsOnline bool   `json:"is_online"`
}

func toUserView(u domain.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar, IsOnline: u.IsOnline}
}

type categoryView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func toCategoryViews(cs []domain.IdeaCategory) []categoryView {
	out := make([]categoryView, 0, len(cs))
	for _, c := range cs {
		out = append(out, categoryView{ID: c.ID, Name: c.Name, Color: c.Color})
	}
	return out
}

type participantView struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type topicView struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	OwnerID       string            `json:"owner_id"`
	AccessCode    *string           `json:"access_code,omitempty"`
	ScheduledDate *time.Time        `json:"scheduled_date,omitempty"`
	Categories    []categoryView    `json:"categories"`
	Admins        []string          `json:"admins"`
	Participants  []participantView `json:"participants"`
	InvitedEmails []string          `json:"invited_emails,omitempty"`
	Stage         string            `json:"stage"`
	StageEndDate  *time.Time        `json:"stage_end_date,omitempty"`
	Layout        *string           `json:"layout,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func toTopicView(t domain.Topic) topicView {
	participants := make([]participantView, 0, len(t.Participants))
	for _, p := range t.Participants {
		participants = append(participants, participantView{UserID: p.UserID, Role: p.Role.String()})
	}
	return topicView{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		OwnerID:       t.OwnerID,
		AccessCode:    t.AccessCode,
		ScheduledDate: t.ScheduledDate,
		Categories:    toCategoryViews(t.Categories),
		Admins:        t.Admins,
		Participants:  participants,
		InvitedEmails: t.InvitedEmails,
		Stage:         t.Workflow.CurrentStage.String(),
		StageEndDate:  t.Workflow.StageEndDate,
		Layout:        t.Layout,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type ideaView struct {
	ID           string    `json:"id"`
	TopicID      string    `json:"topic_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name,omitempty"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Tags         []string  `json:"tags"`
	Votes        []string  `json:"votes"`
	VoteCount    int       `json:"vote_count"`
	CommentCount *int      `json:"comment_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toIdeaView(i domain.Idea) ideaView {
	return ideaView{
		ID:         i.ID,
		TopicID:    i.TopicID,
		Title:      i.Title,
		Content:    i.Content,
		AuthorID:   i.AuthorID,
		CategoryID: i.CategoryID,
		Tags:       i.CustomTags,
		Votes:      i.Votes,
		VoteCount:  i.VoteCount(),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func toIdeaRowView(r idea.Row) ideaView {
	v := toIdeaView(r.Idea)
	v.AuthorName = r.AuthorName
	v.CategoryName = r.CategoryName
	n := r.CommentCount
	v.CommentCount = &n
	return v
}

type commentView struct {
	ID        string    `json:"id"`
	IdeaID    string    `json:"idea_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	ParentID  *string   `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toCommentView(c domain.Comment) commentView {
	return commentView{
		ID:        c.ID,
		IdeaID:    c.IdeaID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
	}
}

type threadView struct {
	commentView
	Replies []threadView `json:"replies"`
}

func toThreadViews(threads []derive.Thread) []threadView {
	out := make([]threadView, 0, len(threads))
	for _, t := range threads {
		out = append(out, threadView{
			commentView: toCommentView(t.Comment),
			Replies:     toThreadViews(t.Replies),
		})
	}
	return out
}

type categoryStatView struct {
	categoryView
	Ideas int `json:"ideas"`
	Votes int `json:"votes"`
}

type summaryView struct {
	TopicID           string             `json:"topic_id"`
	Categories        []categoryStatView `json:"categories"`
	TopIdeas          []ideaView         `json:"top_ideas"`
	TotalIdeas        int                `json:"total_ideas"`
	TotalVotes        int                `json:"total_votes"`
	UniqueVoters      int                `json:"unique_voters"`
	TotalUsers        int                `json:"total_users"`
	ParticipationRate float64            `json:"participation_rate"`
	MostVotedCategory *categoryView      `json:"most_voted_category"`
}

func toSummaryView(topicID string, s *derive.Summary) summaryView {
	v := summaryView{
		TopicID:           topicID,
		Categories:        make([]categoryStatView, 0, len(s.Categories)),
		TopIdeas:          make([]ideaView, 0, len(s.TopIdeas)),
		TotalIdeas:        s.TotalIdeas,
		TotalVotes:        s.TotalVotes,
		UniqueVoters:      s.UniqueVoters,
		TotalUsers:        s.TotalUsers,
		ParticipationRate: s.ParticipationRate,
	}
	for _, c := range s.Categories {
		v.Categories = append(v.Categories, categoryStatView{
			categoryView: categoryView{ID: c.Category.ID, Name: c.Category.Name, Color: c.Category.Color},
			Ideas:        c.Ideas,
			Votes:        c.Votes,
		})
	}
	for _, i := range s.TopIdeas {
		v.TopIdeas = append(v.TopIdeas, toIdeaView(i))
	}
	if c := s.MostVotedCategory; c != nil {
		v.MostVotedCategory = &categoryView{ID: c.ID, Name: c.Name, Color: c.Color}
	}
	return v
}

type activityView struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	TopicID    string         `json:"topic_id,omitempty"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Action     string         `json:"action"`
	Summary    string         `json:"summary"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toActivityView(r domain.ActivityRecord) activityView {
	return activityView{
		ID:         r.ID,
		UserID:     r.UserID,
		TopicID:    r.TopicID,
		EntityType: r.EntityType.String(),
		EntityID:   r.EntityID,
		Action:     r.Action.String(),
		Summary:    r.Summary,
		Changes:    r.Changes,
		CreatedAt:  r.CreatedAt,
	}
}

type templateView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Layout      string         `json:"layout"`
	Categories  []categoryView `json:"categories"`
}

func toTemplateView(t domain.BoardTemplate) templateView {
	return templateView{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Layout:      t.Layout,
		Categories:  toCategoryViews(t.Categories),
	}
}

// mapSlice converts every element of in with fn.
func mapSlice[T, V any](in []T, fn func(T) V) []V {
	out := make([]V, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
