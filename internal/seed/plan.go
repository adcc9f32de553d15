package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
)

// Plan is the full demo dataset, computed up front so the pipeline can
// write it in a handful of batches inside one transaction.
type Plan struct {
	Sections     []domain.Section
	Feedback     []domain.Feedback
	SectionLikes []domain.SectionLike
	Ideas        []domain.Idea
	IdeaLikes    []domain.IdeaLike
	IdeaComments []domain.IdeaComment
}

var sectionTopics = map[domain.SectionCategory][]string{
	domain.SectionCategorySelfIntro: {
		"Interview Intro Practice",
		"Self Improvement Plan",
		"First Day Introduction",
		"Career Story in 60 Seconds",
		"Strengths and Goals",
		"Confident Communication",
	},
	domain.SectionCategoryQuote: {
		"Motivation Quote of the Day",
		"Growth Mindset Quote",
		"Discipline Beats Talent",
		"1 Percent Better Every Day",
		"Quote for Interview Confidence",
		"Progress Over Perfection",
	},
	domain.SectionCategoryPresentation: {
		"Sleep and Productivity",
		"Coffee Habits and Focus",
		"Workout for Better Energy",
		"Self Improvement with Daily Routine",
		"Tech Trends for Developers",
		"Building Better Presentation Skills",
	},
}

var feedbackTemplates = map[domain.SectionCategory][]string{
	domain.SectionCategorySelfIntro: {
		"Clear intro. Good confidence and structure.",
		"Nice self-introduction flow. Keep eye contact.",
		"Strong profile summary. Add one project example.",
		"Great energy. The opening line was memorable.",
	},
	domain.SectionCategoryQuote: {
		"Very motivational. Loved the explanation.",
		"Quote selection was relevant and inspiring.",
		"Good delivery. Easy to understand the message.",
		"Strong takeaway for personal growth.",
	},
	domain.SectionCategoryPresentation: {
		"Excellent topic choice and practical points.",
		"Good pacing. Slides and examples were clear.",
		"Very useful session. The content was actionable.",
		"Great presentation. Loved the real-world angle.",
	},
}

type ideaTemplate struct {
	title       string
	description string
}

var ideaTemplates = map[domain.IdeaCategory][]ideaTemplate{
	domain.IdeaCategoryTechnical: {
		{"Tech Practice Hour", "Run a daily 30-minute coding sprint on core concepts like arrays, APIs, and debugging."},
		{"Mock Interview Track", "Schedule weekly mock interviews with peer feedback and scorecards."},
		{"System Design Basics", "Introduce beginner-friendly design sessions with examples from real products."},
	},
	domain.IdeaCategoryCommunication: {
		{"Self Intro Club", "Start short daily self-intro practice rounds to improve confidence for interviews."},
		{"Presentation Feedback Grid", "Use a simple rubric for voice clarity, structure, and audience engagement."},
		{"Quote Reflection Minute", "After each motivational quote, add one-minute reflection from participants."},
	},
	domain.IdeaCategoryProblem: {
		{"Attendance Drop Fix", "Send reminders with session highlights so people know why they should join."},
		{"Late Start Problem", "Keep a strict timekeeper role and auto-close registration at start time."},
		{"Topic Overlap Issue", "Track topics in a board to avoid repeating the same sessions too often."},
	},
	domain.IdeaCategoryEnvironment: {
		{"Focus Zone Rule", "Create distraction-free blocks where everyone keeps camera and mic discipline."},
		{"Healthy Routine Session", "Add weekly sleep, coffee, and workout talks for performance improvement."},
		{"Peer Support Pods", "Form small learning pods for accountability and motivation."},
	},
	domain.IdeaCategoryOther: {
		{"Motivation Wall", "Pin daily motivational quotes and allow quick reactions from everyone."},
		{"Weekly Wins Roundup", "Share one improvement win every Friday to build momentum."},
		{"Interview Day Checklist", "Maintain a shared checklist for intro, projects, and confidence tips."},
	},
}

// buildDate is local midnight of now shifted by dayOffset days, at hour.
func buildDate(now time.Time, dayOffset, hour int) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, dayOffset).Add(time.Duration(hour) * time.Hour)
}

// BuildPlan computes the demo dataset relative to now for the given roster
// user IDs, in roster order. The content is a pure function of the inputs:
// the same roster and day always yield the same schedule, authors, and
// like pairings. Sections cover 30 past and 30 upcoming days with one
// session per category per day; ideas cover the past 30 days.
func BuildPlan(now time.Time, userIDs []uuid.UUID) Plan {
	var plan Plan
	categories := domain.SectionCategories()

	for dayOffset := -30; dayOffset < 30; dayOffset++ {
		dayIndex := dayOffset + 30
		for catIdx, category := range categories {
			topics := sectionTopics[category]
			plan.Sections = append(plan.Sections, domain.Section{
				ID:        uuid.New(),
				UserID:    userIDs[(dayIndex+catIdx)%len(userIDs)],
				Category:  category,
				Topic:     topics[(dayIndex+catIdx)%len(topics)],
				Date:      buildDate(now, dayOffset, 9+catIdx*2),
				CreatedAt: now,
			})
		}
	}

	likeKeys := make(map[string]struct{})
	for i, section := range plan.Sections {
		feedbackCount := 2 + i%2
		likeCount := 2 + i%4
		templates := feedbackTemplates[section.Category]

		for j := 0; j < feedbackCount; j++ {
			plan.Feedback = append(plan.Feedback, domain.Feedback{
				ID:        uuid.New(),
				UserID:    userIDs[(i+j+1)%len(userIDs)],
				SectionID: section.ID,
				Comment:   fmt.Sprintf("%s (%s)", templates[(i+j)%len(templates)], section.Topic),
				Anonymous: (i+j)%3 == 0,
				CreatedAt: now,
			})
		}

		for k := 0; k < likeCount; k++ {
			likerID := userIDs[(i+k)%len(userIDs)]
			key := section.ID.String() + ":" + likerID.String()
			if _, seen := likeKeys[key]; seen {
				continue
			}
			likeKeys[key] = struct{}{}
			plan.SectionLikes = append(plan.SectionLikes, domain.SectionLike{
				ID:        uuid.New(),
				UserID:    likerID,
				SectionID: section.ID,
				CreatedAt: now,
			})
		}
	}

	ideaCategories := domain.IdeaCategories()
	ideaLikeKeys := make(map[string]struct{})
	for dayIndex := 0; dayIndex < 30; dayIndex++ {
		dayOffset := dayIndex - 29
		category := ideaCategories[dayIndex%len(ideaCategories)]
		templates := ideaTemplates[category]
		template := templates[dayIndex%len(templates)]

		idea := domain.Idea{
			ID:          uuid.New(),
			UserID:      userIDs[dayIndex%len(userIDs)],
			Category:    category,
			Title:       template.title,
			Description: template.description,
			Anonymous:   dayIndex%4 == 0,
			CreatedAt:   buildDate(now, dayOffset, 17),
		}
		plan.Ideas = append(plan.Ideas, idea)

		likeCount := 1 + dayIndex%4
		for i := 0; i < likeCount; i++ {
			likerID := userIDs[(dayIndex+i+1)%len(userIDs)]
			key := idea.ID.String() + ":" + likerID.String()
			if _, seen := ideaLikeKeys[key]; seen {
				continue
			}
			ideaLikeKeys[key] = struct{}{}
			plan.IdeaLikes = append(plan.IdeaLikes, domain.IdeaLike{
				ID:        uuid.New(),
				UserID:    likerID,
				IdeaID:    idea.ID,
				CreatedAt: now,
			})
		}

		commentCount := 1 + dayIndex%3
		for j := 0; j < commentCount; j++ {
			plan.IdeaComments = append(plan.IdeaComments, domain.IdeaComment{
				ID:        uuid.New(),
				UserID:    userIDs[(dayIndex+j+2)%len(userIDs)],
				IdeaID:    idea.ID,
				Comment:   fmt.Sprintf("Useful idea for interview prep and growth. (%s)", template.title),
				CreatedAt: now,
			})
		}
	}

	return plan
}
