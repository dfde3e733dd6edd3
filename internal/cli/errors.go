package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// Exit codes returned by PrintError.
const (
	ExitError           = 1
	ExitValidation      = 2
	ExitNotFound        = 3
	ExitUnauthenticated = 4
	ExitConflict        = 5
)

// Failure is the presentable form of a command error.
type Failure struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
	Exit    int          `json:"-"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Present maps err to a stable code and exit status.
func Present(err error) Failure {
	f := Failure{Code: "ERROR", Message: err.Error(), Exit: ExitError}

	switch {
	case errors.Is(err, domain.ErrValidation):
		f.Code, f.Exit = "VALIDATION", ExitValidation
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				f.Fields = append(f.Fields, fieldError{Field: fe.Field, Message: fe.Message})
			}
		}

	case errors.Is(err, domain.ErrNotFound):
		f.Code, f.Exit = "NOT_FOUND", ExitNotFound
		var re *domain.ReferenceError
		if errors.As(err, &re) {
			f.Fields = []fieldError{{Field: re.Field, Message: fmt.Sprintf("unknown %s %q", re.Entity, re.ID)}}
		}

	case errors.Is(err, domain.ErrAlreadyExists):
		f.Code, f.Exit = "ALREADY_EXISTS", ExitConflict

	case errors.Is(err, domain.ErrConflict):
		f.Code, f.Exit = "CONFLICT", ExitConflict

	case errors.Is(err, domain.ErrUnauthorized):
		f.Code, f.Exit = "UNAUTHENTICATED", ExitUnauthenticated
		f.Message = "no current user; pass --as <user-id>"

	case errors.Is(err, domain.ErrForbidden):
		f.Code, f.Exit = "FORBIDDEN", ExitError
	}

	return f
}

// PrintError writes err to w and returns the process exit code.
func PrintError(w io.Writer, err error) int {
	f := Present(err)
	fmt.Fprintf(w, "error [%s]: %s\n", f.Code, f.Message)
	for _, fe := range f.Fields {
		fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
	}
	return f.Exit
}
