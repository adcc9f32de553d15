// Package seed populates the database with a deterministic demo dataset:
// a fixed roster of users, two months of sections with feedback and likes,
// and a month of improvement ideas with comments and likes. Running it
// twice replaces the previous demo data instead of duplicating it.
package seed

import (
	"strings"

	"github.com/echospace/echospace-backend/internal/domain"
)

// SeedUser describes one member of the demo roster. ExternalID doubles as
// the stable upsert key, so re-seeding never creates duplicate accounts.
type SeedUser struct {
	Username   string
	Email      string
	ExternalID string
	Image      string
	Role       domain.UserRole
}

// Roster returns the demo users in a fixed order. Plan generation indexes
// into this slice, so the order is part of the dataset's determinism.
func Roster() []SeedUser {
	names := []string{
		"Aarav", "Priya", "Rohan", "Kavya", "Ayaan", "Fatima",
		"Zoya", "Imran", "John", "Mary", "Joseph", "Anna",
	}
	users := make([]SeedUser, 0, len(names))
	for idx, name := range names {
		role := domain.UserRoleUser
		if idx == 0 {
			role = domain.UserRoleAdmin
		}
		users = append(users, SeedUser{
			Username:   name,
			Email:      strings.ToLower(name) + "@echospace.dev",
			ExternalID: "seed-" + strings.ToLower(name),
			Image:      "https://api.dicebear.com/9.x/initials/svg?seed=" + name,
			Role:       role,
		})
	}
	return users
}
