package section

import (
	"time"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
)

// dateLayouts are accepted for the create and search date parameters.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// parseDate tries the accepted layouts in local time.
func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateInput holds raw parameters for scheduling a section. Field values
// arrive as strings from the HTTP layer and are validated here.
type CreateInput struct {
	UserID   string
	Category string
	Topic    string
	Date     string
}

// parsedCreate is a CreateInput after successful validation.
type parsedCreate struct {
	UserID   uuid.UUID
	Category domain.SectionCategory
	Topic    string
	Date     time.Time
}

// Validate checks presence and format of every field. All problems are
// reported at once.
func (i CreateInput) Validate() (parsedCreate, error) {
	var errs []domain.FieldError
	var out parsedCreate

	if i.UserID == "" {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	} else if id, err := uuid.Parse(i.UserID); err != nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "must be a UUID"})
	} else {
		out.UserID = id
	}

	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	} else if c := domain.SectionCategory(i.Category); !c.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of: SELF_INTRO, QUOTE, PRESENTATION"})
	} else {
		out.Category = c
	}

	if i.Topic == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	} else {
		out.Topic = i.Topic
	}

	if i.Date == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if d, ok := parseDate(i.Date); !ok {
		errs = append(errs, domain.FieldError{Field: "date", Message: "unparseable date"})
	} else {
		out.Date = d
	}

	if len(errs) > 0 {
		return parsedCreate{}, domain.NewValidationErrors(errs)
	}
	return out, nil
}

// SearchInput holds the optional search predicates as received from the
// HTTP layer. Nil means the predicate was not provided.
type SearchInput struct {
	Topic    *string
	Username *string
	Email    *string
	Category *string
	Date     *string
}

// FeedbackInput holds parameters for leaving feedback on a section.
type FeedbackInput struct {
	Comment   string
	Anonymous bool
}

// Validate checks the feedback input.
func (i FeedbackInput) Validate() error {
	if i.Comment == "" {
		return domain.NewValidationError("comment", "required")
	}
	return nil
}
