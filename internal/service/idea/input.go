package idea

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// CreateIdeaInput holds the parameters for submitting an idea. The author is
// the authenticated user.
type CreateIdeaInput struct {
	TopicID    string
	Title      string
	Content    string
	CategoryID string
	CustomTags []string // trimmed; blanks and duplicates dropped
}

// Validate checks all fields and collects all errors. Over-long fields are
// rejected, never truncated.
func (i CreateIdeaInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.TopicID) == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if strings.TrimSpace(i.CategoryID) == "" {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", MaxContentLength)})
	}

	tags := domain.NormalizeTags(i.CustomTags)
	if len(tags) > MaxTags {
		errs = append(errs, domain.FieldError{Field: "custom_tags", Message: fmt.Sprintf("max %d tags", MaxTags)})
	}
	for n, tag := range tags {
		if utf8.RuneCountInString(tag) > MaxTagLength {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("custom_tags[%d]", n), Message: fmt.Sprintf("max %d characters", MaxTagLength)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListIdeasInput selects and orders the ideas of a topic.
type ListIdeasInput struct {
	TopicID    string
	Query      string
	CategoryID string
	Sort       domain.IdeaSortKey // "" = configured default
	Order      domain.SortOrder   // "" = the key's natural direction
}

// Validate checks all fields and collects all errors.
func (i ListIdeasInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.TopicID) == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.Sort != "" && !i.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "invalid value"})
	}
	if i.Order != "" && !i.Order.IsValid() {
		errs = append(errs, domain.FieldError{Field: "order", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
