package topic

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// CategoryInput describes a category of a new topic. A blank ID is assigned
// from the category's position (1-based).
type CategoryInput struct {
	ID    string
	Name  string
	Color string
}

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Title         string
	Description   *string
	Categories    []CategoryInput
	AccessCode    *string
	ScheduledDate *time.Time
	Workflow      *domain.Workflow // nil = introduction, no deadline
	Admins        []string         // nil = the owner only
	InvitedEmails []string
	Layout        *string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, &i.Title)
	errs = validateDescription(errs, i.Description)
	errs = validateCategories(errs, i.Categories)
	errs = validateEmails(errs, i.InvitedEmails)

	if i.Workflow != nil && !i.Workflow.CurrentStage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "workflow.current_stage", Message: "invalid value"})
	}
	for n, id := range i.Admins {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("admins[%d]", n), Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// categories converts the input categories, assigning positional ids to
// those without one.
func (i CreateTopicInput) categories() []domain.IdeaCategory {
	return toCategories(i.Categories)
}

// CreateFromTemplateInput holds the parameters for creating a topic from one
// of the board templates.
type CreateFromTemplateInput struct {
	TemplateID    string
	Title         string
	Description   *string
	AccessCode    *string
	ScheduledDate *time.Time
	InvitedEmails []string
}

// Validate checks all fields and collects all errors.
func (i CreateFromTemplateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.TemplateID) == "" {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "required"})
	} else if _, ok := domain.FindBoardTemplate(i.TemplateID); !ok {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "unknown template"})
	}
	errs = validateTitle(errs, &i.Title)
	errs = validateDescription(errs, i.Description)
	errs = validateEmails(errs, i.InvitedEmails)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTopicInput holds the parameters for updating a topic.
type UpdateTopicInput struct {
	TopicID       string
	Title         *string
	Description   *string // nil = don't change; ptr("") = clear
	AccessCode    *string // nil = don't change; ptr("") = clear
	ScheduledDate *time.Time
	Layout        *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.TopicID) == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.AccessCode == nil && i.ScheduledDate == nil && i.Layout == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, i.Title)
	}
	errs = validateDescription(errs, i.Description)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// JoinTopicInput holds the parameters for joining a topic.
type JoinTopicInput struct {
	TopicID    string
	AccessCode string
}

// Validate checks all fields and collects all errors.
func (i JoinTopicInput) Validate() error {
	if strings.TrimSpace(i.TopicID) == "" {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title *string) []domain.FieldError {
	t := strings.TrimSpace(*title)
	if t == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, description *string) []domain.FieldError {
	if description != nil && utf8.RuneCountInString(strings.TrimSpace(*description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)})
	}
	return errs
}

func validateCategories(errs []domain.FieldError, categories []CategoryInput) []domain.FieldError {
	if len(categories) > MaxCategories {
		errs = append(errs, domain.FieldError{Field: "categories", Message: fmt.Sprintf("max %d categories", MaxCategories)})
	}
	seen := make(map[string]bool, len(categories))
	for n, c := range toCategories(categories) {
		if c.Name == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("categories[%d].name", n), Message: "required"})
		}
		if seen[c.ID] {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("categories[%d].id", n), Message: "duplicate id"})
		}
		seen[c.ID] = true
	}
	return errs
}

func validateEmails(errs []domain.FieldError, emails []string) []domain.FieldError {
	for n, email := range emails {
		if err := domain.ValidateEmail(strings.TrimSpace(email)); err != nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("invited_emails[%d]", n), Message: "invalid email"})
		}
	}
	return errs
}

func toCategories(in []CategoryInput) []domain.IdeaCategory {
	out := make([]domain.IdeaCategory, 0, len(in))
	for n, c := range in {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			id = strconv.Itoa(n + 1)
		}
		out = append(out, domain.IdeaCategory{
			ID:    id,
			Name:  domain.NormalizeText(c.Name),
			Color: strings.TrimSpace(c.Color),
		})
	}
	return out
}

// normalizeEmails trims addresses and drops duplicates, ignoring case.
func normalizeEmails(emails []string) []string {
	out := make([]string, 0, len(emails))
	seen := make(map[string]bool, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		key := domain.FoldText(e)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
