package seeder

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/brainboard/internal/domain"
)

//go:embed fixture.yaml
var defaultFixture []byte

// Fixture is the YAML document describing a board's initial contents.
type Fixture struct {
	Users    []UserRecord    `yaml:"users"`
	Topics   []TopicRecord   `yaml:"topics"`
	Ideas    []IdeaRecord    `yaml:"ideas"`
	Comments []CommentRecord `yaml:"comments"`
}

// UserRecord is a seeded user.
type UserRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Avatar   string `yaml:"avatar"`
	Email    string `yaml:"email"`
	IsOnline bool   `yaml:"is_online"`
}

// CategoryRecord is a category of a seeded topic.
type CategoryRecord struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// ParticipantRecord is a topic membership.
type ParticipantRecord struct {
	UserID string `yaml:"user_id"`
	Role   string `yaml:"role"`
}

// TopicRecord is a seeded topic.
type TopicRecord struct {
	ID            string              `yaml:"id"`
	Title         string              `yaml:"title"`
	Description   string              `yaml:"description"`
	OwnerID       string              `yaml:"owner_id"`
	AccessCode    string              `yaml:"access_code"`
	ScheduledDate *time.Time          `yaml:"scheduled_date"`
	Categories    []CategoryRecord    `yaml:"categories"`
	Admins        []string            `yaml:"admins"`
	Participants  []ParticipantRecord `yaml:"participants"`
	InvitedEmails []string            `yaml:"invited_emails"`
	Stage         string              `yaml:"stage"`
	StageEndDate  *time.Time          `yaml:"stage_end_date"`
	Layout        string              `yaml:"layout"`
	CreatedAt     time.Time           `yaml:"created_at"`
	UpdatedAt     time.Time           `yaml:"updated_at"`
}

// IdeaRecord is a seeded idea.
type IdeaRecord struct {
	ID         string    `yaml:"id"`
	TopicID    string    `yaml:"topic_id"`
	Title      string    `yaml:"title"`
	Content    string    `yaml:"content"`
	AuthorID   string    `yaml:"author_id"`
	CategoryID string    `yaml:"category_id"`
	Tags       []string  `yaml:"tags"`
	Votes      []string  `yaml:"votes"`
	CreatedAt  time.Time `yaml:"created_at"`
	UpdatedAt  time.Time `yaml:"updated_at"`
}

// CommentRecord is a seeded comment.
type CommentRecord struct {
	ID        string    `yaml:"id"`
	IdeaID    string    `yaml:"idea_id"`
	AuthorID  string    `yaml:"author_id"`
	Content   string    `yaml:"content"`
	ParentID  string    `yaml:"parent_id"`
	CreatedAt time.Time `yaml:"created_at"`
}

// DefaultFixture returns the embedded board contents.
func DefaultFixture() (*Fixture, error) {
	return ParseFixture(bytes.NewReader(defaultFixture))
}

// LoadFixture reads a fixture from path. An empty path selects the embedded
// default.
func LoadFixture(path string) (*Fixture, error) {
	if path == "" {
		return DefaultFixture()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	fx, err := ParseFixture(f)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return fx, nil
}

// ParseFixture decodes and validates a YAML fixture. Unknown keys are errors.
func ParseFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := fx.Validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

// Validate checks required fields, email formats, id uniqueness and that
// every reference resolves within the fixture. All problems are collected
// into one *domain.ValidationError.
func (fx *Fixture) Validate() error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	users := make(map[string]bool, len(fx.Users))
	for n, u := range fx.Users {
		field := fmt.Sprintf("users[%d]", n)
		switch {
		case strings.TrimSpace(u.ID) == "":
			add(field+".id", "required")
		case users[u.ID]:
			add(field+".id", "duplicate id %q", u.ID)
		}
		users[u.ID] = true
		if strings.TrimSpace(u.Name) == "" {
			add(field+".name", "required")
		}
		if err := domain.ValidateEmail(u.Email); err != nil {
			add(field+".email", "%v", err)
		}
	}

	topics := make(map[string]map[string]bool, len(fx.Topics))
	for n, t := range fx.Topics {
		field := fmt.Sprintf("topics[%d]", n)
		switch {
		case strings.TrimSpace(t.ID) == "":
			add(field+".id", "required")
		case topics[t.ID] != nil:
			add(field+".id", "duplicate id %q", t.ID)
		}
		if strings.TrimSpace(t.Title) == "" {
			add(field+".title", "required")
		}
		if !users[t.OwnerID] {
			add(field+".owner_id", "unknown user %q", t.OwnerID)
		}
		if t.Stage != "" && !domain.WorkflowStage(t.Stage).IsValid() {
			add(field+".stage", "unknown stage %q", t.Stage)
		}
		categories := make(map[string]bool, len(t.Categories))
		for c, cat := range t.Categories {
			cf := fmt.Sprintf("%s.categories[%d]", field, c)
			switch {
			case strings.TrimSpace(cat.ID) == "":
				add(cf+".id", "required")
			case categories[cat.ID]:
				add(cf+".id", "duplicate id %q", cat.ID)
			}
			categories[cat.ID] = true
			if strings.TrimSpace(cat.Name) == "" {
				add(cf+".name", "required")
			}
		}
		for a, id := range t.Admins {
			if !users[id] {
				add(fmt.Sprintf("%s.admins[%d]", field, a), "unknown user %q", id)
			}
		}
		members := make(map[string]bool, len(t.Participants))
		owners := 0
		for p, part := range t.Participants {
			pf := fmt.Sprintf("%s.participants[%d]", field, p)
			if !users[part.UserID] {
				add(pf+".user_id", "unknown user %q", part.UserID)
			}
			if members[part.UserID] {
				add(pf+".user_id", "duplicate participant %q", part.UserID)
			}
			members[part.UserID] = true
			role := domain.UserRole(part.Role)
			if !role.IsValid() {
				add(pf+".role", "unknown role %q", part.Role)
			}
			if role == domain.UserRoleOwner {
				owners++
				if part.UserID != t.OwnerID {
					add(pf+".role", "owner must be %q", t.OwnerID)
				}
			}
		}
		if len(t.Participants) > 0 && owners != 1 {
			add(field+".participants", "exactly one owner required")
		}
		for e, email := range t.InvitedEmails {
			if err := domain.ValidateEmail(email); err != nil {
				add(fmt.Sprintf("%s.invited_emails[%d]", field, e), "%v", err)
			}
		}
		topics[t.ID] = categories
	}

	ideas := make(map[string]bool, len(fx.Ideas))
	for n, i := range fx.Ideas {
		field := fmt.Sprintf("ideas[%d]", n)
		switch {
		case strings.TrimSpace(i.ID) == "":
			add(field+".id", "required")
		case ideas[i.ID]:
			add(field+".id", "duplicate id %q", i.ID)
		}
		ideas[i.ID] = true
		if strings.TrimSpace(i.Title) == "" {
			add(field+".title", "required")
		}
		if strings.TrimSpace(i.Content) == "" {
			add(field+".content", "required")
		}
		categories, ok := topics[i.TopicID]
		if !ok {
			add(field+".topic_id", "unknown topic %q", i.TopicID)
		} else if !categories[i.CategoryID] {
			add(field+".category_id", "category %q not in topic %q", i.CategoryID, i.TopicID)
		}
		if !users[i.AuthorID] {
			add(field+".author_id", "unknown user %q", i.AuthorID)
		}
		voted := make(map[string]bool, len(i.Votes))
		for v, id := range i.Votes {
			vf := fmt.Sprintf("%s.votes[%d]", field, v)
			if !users[id] {
				add(vf, "unknown user %q", id)
			}
			if voted[id] {
				add(vf, "duplicate vote by %q", id)
			}
			voted[id] = true
		}
	}

	commentIdea := make(map[string]string, len(fx.Comments))
	for _, c := range fx.Comments {
		if _, dup := commentIdea[c.ID]; !dup {
			commentIdea[c.ID] = c.IdeaID
		}
	}
	seen := make(map[string]bool, len(fx.Comments))
	for n, c := range fx.Comments {
		field := fmt.Sprintf("comments[%d]", n)
		switch {
		case strings.TrimSpace(c.ID) == "":
			add(field+".id", "required")
		case seen[c.ID]:
			add(field+".id", "duplicate id %q", c.ID)
		}
		seen[c.ID] = true
		if strings.TrimSpace(c.Content) == "" {
			add(field+".content", "required")
		}
		if !ideas[c.IdeaID] {
			add(field+".idea_id", "unknown idea %q", c.IdeaID)
		}
		if !users[c.AuthorID] {
			add(field+".author_id", "unknown user %q", c.AuthorID)
		}
		if c.ParentID != "" {
			parentIdea, ok := commentIdea[c.ParentID]
			switch {
			case !ok:
				add(field+".parent_id", "unknown comment %q", c.ParentID)
			case parentIdea != c.IdeaID:
				add(field+".parent_id", "comment %q belongs to another idea", c.ParentID)
			case c.ParentID == c.ID:
				add(field+".parent_id", "comment cannot reply to itself")
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ToDomain converts the record to a domain user.
func (r UserRecord) ToDomain() domain.User {
	return domain.User{
		ID:       r.ID,
		Name:     r.Name,
		Avatar:   r.Avatar,
		Email:    r.Email,
		IsOnline: r.IsOnline,
	}
}

// ToDomain converts the record to a domain topic. A missing stage defaults to
// introduction and a missing UpdatedAt to CreatedAt.
func (r TopicRecord) ToDomain() domain.Topic {
	t := domain.Topic{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		OwnerID:       r.OwnerID,
		AccessCode:    optional(r.AccessCode),
		ScheduledDate: r.ScheduledDate,
		Categories:    make([]domain.IdeaCategory, 0, len(r.Categories)),
		Admins:        append([]string{}, r.Admins...),
		Participants:  make([]domain.Participant, 0, len(r.Participants)),
		InvitedEmails: append([]string{}, r.InvitedEmails...),
		Workflow: domain.Workflow{
			CurrentStage: domain.WorkflowStage(r.Stage),
			StageEndDate: r.StageEndDate,
		},
		Layout:    optional(r.Layout),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if t.Workflow.CurrentStage == "" {
		t.Workflow.CurrentStage = domain.StageIntroduction
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
	for _, c := range r.Categories {
		t.Categories = append(t.Categories, domain.IdeaCategory{ID: c.ID, Name: c.Name, Color: c.Color})
	}
	for _, p := range r.Participants {
		t.Participants = append(t.Participants, domain.Participant{UserID: p.UserID, Role: domain.UserRole(p.Role)})
	}
	if len(t.Participants) == 0 {
		t.Participants = append(t.Participants, domain.Participant{UserID: r.OwnerID, Role: domain.UserRoleOwner})
	}
	return t
}

// ToDomain converts the record to a domain idea.
func (r IdeaRecord) ToDomain() domain.Idea {
	i := domain.Idea{
		ID:         r.ID,
		TopicID:    r.TopicID,
		Title:      strings.TrimSpace(r.Title),
		Content:    strings.TrimSpace(r.Content),
		AuthorID:   r.AuthorID,
		CategoryID: r.CategoryID,
		CustomTags: domain.NormalizeTags(r.Tags),
		Votes:      append([]string{}, r.Votes...),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = i.CreatedAt
	}
	return i
}

// ToDomain converts the record to a domain comment.
func (r CommentRecord) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		IdeaID:    r.IdeaID,
		AuthorID:  r.AuthorID,
		Content:   strings.TrimSpace(r.Content),
		ParentID:  optional(r.ParentID),
		CreatedAt: r.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
