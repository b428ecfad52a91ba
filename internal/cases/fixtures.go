package cases

import (
	"time"

	"github.com/aiharmwatch/harmwatch/internal/domain"
)

// InitialCases returns the illustrative records the registry starts with.
func InitialCases(now time.Time) []domain.Case {
	return []domain.Case{
		{
			ID:          "1",
			Title:       "AI hiring bias against minorities",
			Category:    "bias",
			Severity:    domain.SeverityHigh,
			Status:      domain.CaseStatusOpen,
			Description: "An AI hiring system showed bias against minority candidates.",
			Views:       123,
			Upvotes:     45,
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "Facial recognition privacy violation",
			Category:    "privacy",
			Severity:    domain.SeverityCritical,
			Status:      domain.CaseStatusInvestigating,
			Description: "Facial recognition used without user consent.",
			Views:       98,
			Upvotes:     60,
			CreatedAt:   now,
		},
	}
}
