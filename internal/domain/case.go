package domain

import "time"

// Severity represents how harmful a reported case is.
type Severity string

// Case severities.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// CaseStatus represents the review state of a case.
type CaseStatus string

// Case statuses.
const (
	CaseStatusOpen          CaseStatus = "open"
	CaseStatusInvestigating CaseStatus = "investigating"
	CaseStatusVerified      CaseStatus = "verified"
)

// Case represents a reported AI harm incident.
type Case struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Severity    Severity   `json:"severity"`
	Status      CaseStatus `json:"status"`
	Description string     `json:"description"`
	Views       int        `json:"views"`
	Upvotes     int        `json:"upvotes"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Stats is the aggregate summary served by the stats endpoint.
type Stats struct {
	TotalCases           int            `json:"totalCases"`
	TotalUsers           int            `json:"totalUsers"`
	TotalEvidence        int            `json:"totalEvidence"`
	CategoryDistribution map[string]int `json:"categoryDistribution"`
}
