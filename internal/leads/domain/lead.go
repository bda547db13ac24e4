// Package domain provides core business rules for the leads bounded context.
package domain

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a lead. No transition table is enforced:
// any status may be set from any other. Archived functions as a soft delete.
type Status string

const (
	StatusNew       Status = "New"
	StatusContacted Status = "Contacted"
	StatusInProcess Status = "In Process"
	StatusQualified Status = "Qualified"
	StatusFinalized Status = "Finalized"
	StatusArchived  Status = "Archived"
	StatusConverted Status = "Converted"
	StatusLost      Status = "Lost"
)

var knownStatuses = map[Status]struct{}{
	StatusNew:       {},
	StatusContacted: {},
	StatusInProcess: {},
	StatusQualified: {},
	StatusFinalized: {},
	StatusArchived:  {},
	StatusConverted: {},
	StatusLost:      {},
}

// IsKnownStatus reports whether s is one of the enumerated lifecycle states.
func IsKnownStatus(s Status) bool {
	_, ok := knownStatuses[s]
	return ok
}

// Grade is the banded classification derived from the lead score.
type Grade string

const (
	GradeHot    Grade = "Hot"
	GradeWarm   Grade = "Warm"
	GradeCold   Grade = "Cold"
	GradeFrozen Grade = "Frozen"
)

var knownGrades = map[Grade]struct{}{
	GradeHot:    {},
	GradeWarm:   {},
	GradeCold:   {},
	GradeFrozen: {},
}

// IsKnownGrade reports whether g is one of the enumerated grade bands.
func IsKnownGrade(g Grade) bool {
	_, ok := knownGrades[g]
	return ok
}

// Source identifies the origin system a lead was ingested from.
// It is stamped exactly once at normalization time and never changed.
type Source string

const (
	SourceContactForm     Source = "ContactForm"
	SourceChatbot         Source = "Chatbot"
	SourceScheduleMeeting Source = "ScheduleMeeting"
	SourceSDR             Source = "SDR"
	SourceLeadScoring     Source = "LeadScoring"
)

// Lead is the canonical record every origin shape is normalized into.
type Lead struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	CompanyName    string
	CompanySize    string
	LeadScore      int
	LeadGrade      Grade
	Status         Status
	Source         Source
	SourceLabel    string
	CreatedAt      time.Time
	LastActivityAt time.Time
	LastEmailSent  *time.Time
}

// FullName joins first and last name, tolerating either being empty.
func (l Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

// ClampScore forces a raw origin score into the valid [0,100] range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
