package section

import (
	"time"

	"github.com/Masterminds/squirrel"
)

// SearchFilter is the set of optional predicates for section search.
// Nil fields are structurally omitted from the generated SQL.
type SearchFilter struct {
	Topic    *string
	Username *string
	Email    *string
	Category *string
	Day      *time.Time
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildSearchQuery folds the provided predicates into a single SELECT.
// String predicates match as case-insensitive substrings; the day predicate
// covers the full local day from midnight to 23:59:59.999.
func buildSearchQuery(f SearchFilter) (string, []any, error) {
	qb := psql.Select(
		"s.id", "s.user_id", "s.category", "s.topic", "s.date", "s.created_at",
		"u.username", "u.email", "u.image", "u.role", "u.created_at",
		"(SELECT COUNT(*) FROM section_likes sl WHERE sl.section_id = s.id) AS like_count",
		"(SELECT COUNT(*) FROM feedback fb WHERE fb.section_id = s.id) AS feedback_count",
	).
		From("sections s").
		Join("users u ON u.id = s.user_id")

	if f.Topic != nil {
		qb = qb.Where(squirrel.ILike{"s.topic": contains(*f.Topic)})
	}
	if f.Category != nil {
		qb = qb.Where(squirrel.ILike{"s.category": contains(*f.Category)})
	}
	if f.Username != nil {
		qb = qb.Where(squirrel.ILike{"u.username": contains(*f.Username)})
	}
	if f.Email != nil {
		qb = qb.Where(squirrel.ILike{"u.email": contains(*f.Email)})
	}
	if f.Day != nil {
		start := time.Date(f.Day.Year(), f.Day.Month(), f.Day.Day(), 0, 0, 0, 0, f.Day.Location())
		end := start.Add(24*time.Hour - time.Millisecond)
		qb = qb.Where(squirrel.GtOrEq{"s.date": start}).Where(squirrel.LtOrEq{"s.date": end})
	}

	return qb.OrderBy("s.date ASC").ToSql()
}

func contains(v string) string {
	return "%" + v + "%"
}
