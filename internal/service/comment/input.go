package comment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// CreateCommentInput holds the parameters for commenting on an idea. The
// author is the authenticated user.
type CreateCommentInput struct {
	IdeaID   string
	Content  string
	ParentID *string // reply target; must be a comment on the same idea
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.IdeaID) == "" {
		errs = append(errs, domain.FieldError{Field: "idea_id", Message: "required"})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", MaxContentLength)})
	}

	if i.ParentID != nil && strings.TrimSpace(*i.ParentID) == "" {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
