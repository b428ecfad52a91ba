package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is a seeded account.
type User struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"passwordHash"`
	Role              string    `json:"role"`
	ContributionScore int       `json:"contributionScore"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CaseRecord is a seeded case with the extended fixture attributes.
type CaseRecord struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	DetailedDescription string    `json:"detailedDescription"`
	Category            string    `json:"category"`
	Severity            string    `json:"severity"`
	AISystem            string    `json:"aiSystem"`
	Company             string    `json:"company"`
	Country             string    `json:"country"`
	Status              string    `json:"status"`
	Views               int       `json:"views"`
	Upvotes             int       `json:"upvotes"`
	EvidenceCount       int       `json:"evidenceCount"`
	CreatedBy           string    `json:"createdBy"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Evidence is a seeded evidence item attached to a case.
type Evidence struct {
	ID                 string    `json:"id"`
	CaseID             string    `json:"caseId"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Type               string    `json:"type"`
	URL                string    `json:"url"`
	UploaderID         string    `json:"uploaderId"`
	VerificationStatus string    `json:"verificationStatus"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Dataset is the full set of generated fixtures.
type Dataset struct {
	Users    []User
	Cases    []CaseRecord
	Evidence []Evidence
}

// Seed account passwords.
const (
	AdminPassword      = "admin123"
	ResearcherPassword = "user123"
)

// Generate builds the fixture dataset. Passwords are hashed with the given bcrypt cost.
func Generate(now time.Time, cost int) (*Dataset, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	researcherHash, err := bcrypt.GenerateFromPassword([]byte(ResearcherPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("hash researcher password: %w", err)
	}

	admin := User{
		ID:                uuid.NewString(),
		Username:          "admin",
		Email:             "admin@aiharmwatch.org",
		PasswordHash:      string(adminHash),
		Role:              "admin",
		ContributionScore: 100,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	researcher := User{
		ID:                uuid.NewString(),
		Username:          "researcher",
		Email:             "research@aiharmwatch.org",
		PasswordHash:      string(researcherHash),
		Role:              "contributor",
		ContributionScore: 50,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	cases := []CaseRecord{
		{
			ID:                  uuid.NewString(),
			Title:               "Algorithmic Bias in Hiring Tools",
			Description:         "Major corporations using AI hiring software found to systematically discriminate against women and minorities.",
			DetailedDescription: "A study revealed that AI-powered hiring tools used by Fortune 500 companies were rejecting female candidates at a rate 30% higher than male candidates with similar qualifications. The algorithm was trained on historical hiring data that reflected existing biases.",
			Category:            "bias",
			Severity:            "high",
			AISystem:            "Resume screening AI",
			Company:             "Multiple tech companies",
			Country:             "Global",
			Status:              "verified",
			Views:               1243,
			Upvotes:             89,
			EvidenceCount:       5,
			CreatedBy:           researcher.ID,
			CreatedAt:           fixedTime("2024-01-15T10:30:00Z"),
			UpdatedAt:           fixedTime("2024-01-20T14:20:00Z"),
		},
		{
			ID:                  uuid.NewString(),
			Title:               "Deepfake Political Manipulation",
			Description:         "State-sponsored deepfake campaigns targeting elections in multiple countries.",
			DetailedDescription: "Government-backed actors used AI-generated videos to spread misinformation during elections. The deepfakes were so convincing that they influenced voter behavior and caused political unrest.",
			Category:            "deepfakes",
			Severity:            "critical",
			AISystem:            "Generative Adversarial Networks",
			Company:             "State-sponsored groups",
			Country:             "Multiple",
			Status:              "verified",
			Views:               2156,
			Upvotes:             156,
			EvidenceCount:       8,
			CreatedBy:           admin.ID,
			CreatedAt:           fixedTime("2024-02-01T09:15:00Z"),
			UpdatedAt:           fixedTime("2024-02-10T11:45:00Z"),
		},
		{
			ID:                  uuid.NewString(),
			Title:               "Autonomous Drone Strikes",
			Description:         "Documented cases of civilian casualties from AI-powered autonomous weapons systems.",
			DetailedDescription: "Military drones equipped with AI target recognition systems misidentified civilians as combatants, resulting in multiple civilian casualties. The AI system had a 15% false positive rate in combat zones.",
			Category:            "weapons",
			Severity:            "critical",
			AISystem:            "Computer vision AI",
			Company:             "Defense contractors",
			Country:             "Conflict zones",
			Status:              "verified",
			Views:               1872,
			Upvotes:             203,
			EvidenceCount:       12,
			CreatedBy:           researcher.ID,
			CreatedAt:           fixedTime("2024-01-25T14:30:00Z"),
			UpdatedAt:           fixedTime("2024-02-05T16:20:00Z"),
		},
		{
			ID:                  uuid.NewString(),
			Title:               "Surveillance Overreach in Smart Cities",
			Description:         "Facial recognition systems used for mass surveillance without public consent.",
			DetailedDescription: "Cities implementing \"smart city\" technology are using facial recognition to track citizens movements without proper oversight or consent. The data is being shared with private companies and used for predictive policing.",
			Category:            "surveillance",
			Severity:            "high",
			AISystem:            "Facial recognition AI",
			Company:             "Multiple surveillance tech firms",
			Country:             "Various",
			Status:              "pending",
			Views:               932,
			Upvotes:             67,
			EvidenceCount:       3,
			CreatedBy:           admin.ID,
			CreatedAt:           fixedTime("2024-02-15T08:45:00Z"),
			UpdatedAt:           fixedTime("2024-02-15T08:45:00Z"),
		},
	}

	evidence := []Evidence{
		{
			ID:                 uuid.NewString(),
			CaseID:             cases[0].ID,
			Title:              "Research paper on hiring bias",
			Description:        "Academic study demonstrating systematic bias in AI hiring tools",
			Type:               "document",
			URL:                "https://example.com/research-paper.pdf",
			UploaderID:         researcher.ID,
			VerificationStatus: "verified",
			CreatedAt:          fixedTime("2024-01-16T11:20:00Z"),
		},
		{
			ID:                 uuid.NewString(),
			CaseID:             cases[1].ID,
			Title:              "Deepfake analysis report",
			Description:        "Technical analysis of the deepfake videos used in elections",
			Type:               "analysis",
			URL:                "https://example.com/deepfake-analysis.pdf",
			UploaderID:         admin.ID,
			VerificationStatus: "verified",
			CreatedAt:          fixedTime("2024-02-02T10:15:00Z"),
		},
	}

	return &Dataset{
		Users:    []User{admin, researcher},
		Cases:    cases,
		Evidence: evidence,
	}, nil
}

func fixedTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(fmt.Sprintf("seed: bad fixture timestamp %q: %v", s, err))
	}
	return t
}
