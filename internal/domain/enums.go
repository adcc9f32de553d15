package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// SectionCategory represents the kind of a scheduled session.
type SectionCategory string

const (
	SectionCategorySelfIntro    SectionCategory = "SELF_INTRO"
	SectionCategoryQuote        SectionCategory = "QUOTE"
	SectionCategoryPresentation SectionCategory = "PRESENTATION"
)

func (c SectionCategory) String() string { return string(c) }

func (c SectionCategory) IsValid() bool {
	switch c {
	case SectionCategorySelfIntro, SectionCategoryQuote, SectionCategoryPresentation:
		return true
	}
	return false
}

// SectionCategories lists all valid section categories in display order.
func SectionCategories() []SectionCategory {
	return []SectionCategory{
		SectionCategorySelfIntro,
		SectionCategoryQuote,
		SectionCategoryPresentation,
	}
}

// IdeaCategory represents the kind of an improvement idea.
type IdeaCategory string

const (
	IdeaCategoryTechnical     IdeaCategory = "TECHNICAL"
	IdeaCategoryCommunication IdeaCategory = "COMMUNICATION"
	IdeaCategoryProblem       IdeaCategory = "PROBLEM"
	IdeaCategoryEnvironment   IdeaCategory = "ENVIRONMENT"
	IdeaCategoryOther         IdeaCategory = "OTHER"
)

func (c IdeaCategory) String() string { return string(c) }

func (c IdeaCategory) IsValid() bool {
	switch c {
	case IdeaCategoryTechnical, IdeaCategoryCommunication, IdeaCategoryProblem,
		IdeaCategoryEnvironment, IdeaCategoryOther:
		return true
	}
	return false
}

// IdeaCategories lists all valid idea categories in display order.
func IdeaCategories() []IdeaCategory {
	return []IdeaCategory{
		IdeaCategoryTechnical,
		IdeaCategoryCommunication,
		IdeaCategoryProblem,
		IdeaCategoryEnvironment,
		IdeaCategoryOther,
	}
}
