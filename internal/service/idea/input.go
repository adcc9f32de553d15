package idea

import (
	"github.com/echospace/echospace-backend/internal/domain"
)

// CreateInput holds raw parameters for submitting an idea.
type CreateInput struct {
	Category    string
	Title       string
	Description string
	Anonymous   bool
}

// parsedCreate is a CreateInput after successful validation.
type parsedCreate struct {
	Category    domain.IdeaCategory
	Title       string
	Description string
	Anonymous   bool
}

// Validate checks presence and format of every field. All problems are
// reported at once.
func (i CreateInput) Validate() (parsedCreate, error) {
	var errs []domain.FieldError
	var out parsedCreate

	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	} else if c := domain.IdeaCategory(i.Category); !c.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of: TECHNICAL, COMMUNICATION, PROBLEM, ENVIRONMENT, OTHER"})
	} else {
		out.Category = c
	}

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else {
		out.Title = i.Title
	}

	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else {
		out.Description = i.Description
	}

	out.Anonymous = i.Anonymous

	if len(errs) > 0 {
		return parsedCreate{}, domain.NewValidationErrors(errs)
	}
	return out, nil
}

// CommentInput holds parameters for commenting on an idea.
type CommentInput struct {
	Comment string
}

// Validate checks the comment input.
func (i CommentInput) Validate() error {
	if i.Comment == "" {
		return domain.NewValidationError("comment", "required")
	}
	return nil
}
